package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	ordermapper "github.com/melvan27/GrubDash/internal/domains/orders/adapters/http/mapper"
	orderports "github.com/melvan27/GrubDash/internal/domains/orders/ports"
	apierrors "github.com/melvan27/GrubDash/internal/shared/errors"
	"github.com/melvan27/GrubDash/internal/shared/httpx"
)

// RouteParam names the path parameter carrying an order id.
const RouteParam = "orderId"

// OrderAPI exposes the order service over HTTP.
type OrderAPI struct {
	service   orderports.Service
	responder *apierrors.Responder
}

// NewOrderAPI wires dependencies.
func NewOrderAPI(service orderports.Service, responder *apierrors.Responder) OrderAPI {
	if responder == nil {
		responder = apierrors.DefaultResponder
	}
	return OrderAPI{service: service, responder: responder}
}

// Register mounts the order routes on r.
func (api OrderAPI) Register(r gin.IRouter) {
	r.GET("/orders", api.ListOrders)
	r.POST("/orders", api.CreateOrder)
	r.GET("/orders/:"+RouteParam, api.GetOrder)
	r.PUT("/orders/:"+RouteParam, api.UpdateOrder)
	r.DELETE("/orders/:"+RouteParam, api.DeleteOrder)
}

// Get /orders
func (api OrderAPI) ListOrders(c *gin.Context) {
	orders, err := api.service.ListOrders(c.Request.Context())
	if err != nil {
		api.responder.RespondError(c, err)
		return
	}
	httpx.RespondData(c, http.StatusOK, ordermapper.FromDomainOrders(orders))
}

// Post /orders
func (api OrderAPI) CreateOrder(c *gin.Context) {
	order, err := api.service.CreateOrder(c.Request.Context(), httpx.BindData(c))
	if err != nil {
		api.responder.RespondError(c, err)
		return
	}
	httpx.RespondData(c, http.StatusCreated, ordermapper.FromDomainOrder(order))
}

// Get /orders/:orderId
func (api OrderAPI) GetOrder(c *gin.Context) {
	order, err := api.service.GetOrder(c.Request.Context(), c.Param(RouteParam))
	if err != nil {
		api.responder.RespondError(c, err)
		return
	}
	httpx.RespondData(c, http.StatusOK, ordermapper.FromDomainOrder(order))
}

// Put /orders/:orderId
func (api OrderAPI) UpdateOrder(c *gin.Context) {
	order, err := api.service.UpdateOrder(c.Request.Context(), c.Param(RouteParam), httpx.BindData(c))
	if err != nil {
		api.responder.RespondError(c, err)
		return
	}
	httpx.RespondData(c, http.StatusOK, ordermapper.FromDomainOrder(order))
}

// Delete /orders/:orderId
func (api OrderAPI) DeleteOrder(c *gin.Context) {
	if err := api.service.DeleteOrder(c.Request.Context(), c.Param(RouteParam)); err != nil {
		api.responder.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
