package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/trace"

	dishhandler "github.com/melvan27/GrubDash/internal/domains/dishes/adapters/http/handler"
	dishports "github.com/melvan27/GrubDash/internal/domains/dishes/ports"
	orderhandler "github.com/melvan27/GrubDash/internal/domains/orders/adapters/http/handler"
	orderports "github.com/melvan27/GrubDash/internal/domains/orders/ports"
	apierrors "github.com/melvan27/GrubDash/internal/shared/errors"
)

// RouterDeps lists what the HTTP surface needs.
type RouterDeps struct {
	ServiceName string
	Logger      *slog.Logger
	// TracerProvider enables otelgin spans when set.
	TracerProvider trace.TracerProvider

	Dishes dishports.Service
	Orders orderports.Service
}

// NewRouter builds the gin engine serving the dish and order routes.
func NewRouter(deps RouterDeps) *gin.Engine {
	responder := apierrors.NewResponder(deps.Logger)

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(responder.Recovery())
	if deps.TracerProvider != nil {
		router.Use(otelgin.Middleware(deps.ServiceName, otelgin.WithTracerProvider(deps.TracerProvider)))
	}
	if deps.Logger != nil {
		router.Use(accessLog(deps.Logger))
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	dishhandler.NewDishAPI(deps.Dishes, responder).Register(router)
	orderhandler.NewOrderAPI(deps.Orders, responder).Register(router)

	router.NoRoute(responder.NoRoute)
	router.NoMethod(responder.NoMethod)
	return router
}

func accessLog(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		level := slog.LevelInfo
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.LogAttrs(c.Request.Context(), level, "request completed",
			slog.String("http.method", c.Request.Method),
			slog.String("http.path", c.Request.URL.Path),
			slog.String("http.route", c.FullPath()),
			slog.Int("http.status", status),
			slog.Duration("latency", time.Since(start)),
		)
	}
}
