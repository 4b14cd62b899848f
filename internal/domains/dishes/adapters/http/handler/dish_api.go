package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	dishmapper "github.com/melvan27/GrubDash/internal/domains/dishes/adapters/http/mapper"
	dishports "github.com/melvan27/GrubDash/internal/domains/dishes/ports"
	apierrors "github.com/melvan27/GrubDash/internal/shared/errors"
	"github.com/melvan27/GrubDash/internal/shared/httpx"
)

// RouteParam names the path parameter carrying a dish id.
const RouteParam = "dishId"

// DishAPI exposes the dish service over HTTP.
type DishAPI struct {
	service   dishports.Service
	responder *apierrors.Responder
}

// NewDishAPI wires dependencies.
func NewDishAPI(service dishports.Service, responder *apierrors.Responder) DishAPI {
	if responder == nil {
		responder = apierrors.DefaultResponder
	}
	return DishAPI{service: service, responder: responder}
}

// Register mounts the dish routes on r.
func (api DishAPI) Register(r gin.IRouter) {
	r.GET("/dishes", api.ListDishes)
	r.POST("/dishes", api.CreateDish)
	r.GET("/dishes/:"+RouteParam, api.GetDish)
	r.PUT("/dishes/:"+RouteParam, api.UpdateDish)
}

// Get /dishes
func (api DishAPI) ListDishes(c *gin.Context) {
	dishes, err := api.service.ListDishes(c.Request.Context())
	if err != nil {
		api.responder.RespondError(c, err)
		return
	}
	httpx.RespondData(c, http.StatusOK, dishmapper.FromDomainDishes(dishes))
}

// Post /dishes
func (api DishAPI) CreateDish(c *gin.Context) {
	dish, err := api.service.CreateDish(c.Request.Context(), httpx.BindData(c))
	if err != nil {
		api.responder.RespondError(c, err)
		return
	}
	httpx.RespondData(c, http.StatusCreated, dishmapper.FromDomainDish(dish))
}

// Get /dishes/:dishId
func (api DishAPI) GetDish(c *gin.Context) {
	dish, err := api.service.GetDish(c.Request.Context(), c.Param(RouteParam))
	if err != nil {
		api.responder.RespondError(c, err)
		return
	}
	httpx.RespondData(c, http.StatusOK, dishmapper.FromDomainDish(dish))
}

// Put /dishes/:dishId
func (api DishAPI) UpdateDish(c *gin.Context) {
	dish, err := api.service.UpdateDish(c.Request.Context(), c.Param(RouteParam), httpx.BindData(c))
	if err != nil {
		api.responder.RespondError(c, err)
		return
	}
	httpx.RespondData(c, http.StatusOK, dishmapper.FromDomainDish(dish))
}
