package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	dishmemory "github.com/melvan27/GrubDash/internal/domains/dishes/adapters/memory"
	dishobs "github.com/melvan27/GrubDash/internal/domains/dishes/adapters/observability"
	dishapp "github.com/melvan27/GrubDash/internal/domains/dishes/application"
	ordermemory "github.com/melvan27/GrubDash/internal/domains/orders/adapters/memory"
	orderobs "github.com/melvan27/GrubDash/internal/domains/orders/adapters/observability"
	orderapp "github.com/melvan27/GrubDash/internal/domains/orders/application"
	platformobservability "github.com/melvan27/GrubDash/internal/platform/observability"
	"github.com/melvan27/GrubDash/internal/platform/seed"
)

const serviceName = "grubdash-api"

// App holds the wired application services over their memory stores.
type App struct {
	Dishes *dishapp.Service
	Orders *orderapp.Service

	dishStore  *dishmemory.Repository
	orderStore *ordermemory.Repository
}

// NewApp creates empty stores and the services over them.
func NewApp() *App {
	dishStore := dishmemory.NewRepository()
	orderStore := ordermemory.NewRepository()
	return &App{
		Dishes:     dishapp.NewService(dishStore),
		Orders:     orderapp.NewService(orderStore),
		dishStore:  dishStore,
		orderStore: orderStore,
	}
}

// Reset empties both stores.
func (a *App) Reset() {
	a.dishStore.Reset()
	a.orderStore.Reset()
}

// Seed loads fixtures into the stores.
func (a *App) Seed(ctx context.Context, fixtures *seed.Fixtures) error {
	if fixtures == nil {
		return nil
	}
	if _, err := a.Dishes.Import(ctx, fixtures.Dishes); err != nil {
		return err
	}
	if _, err := a.Orders.Import(ctx, fixtures.Orders); err != nil {
		return err
	}
	return nil
}

// Router decorates the services with instruments and builds the HTTP engine.
func (a *App) Router(instruments *platformobservability.Instruments) *gin.Engine {
	deps := RouterDeps{ServiceName: serviceName}
	if instruments == nil {
		deps.Dishes = dishobs.New(a.Dishes)
		deps.Orders = orderobs.New(a.Orders)
		return NewRouter(deps)
	}
	deps.Logger = instruments.Logger
	deps.TracerProvider = instruments.TracerProvider
	deps.Dishes = dishobs.New(
		a.Dishes,
		dishobs.WithLogger(instruments.Logger),
		dishobs.WithTracer(instruments.Tracer("internal.dishes.application")),
		dishobs.WithMeter(instruments.Meter("internal.dishes.application")),
	)
	deps.Orders = orderobs.New(
		a.Orders,
		orderobs.WithLogger(instruments.Logger),
		orderobs.WithTracer(instruments.Tracer("internal.orders.application")),
		orderobs.WithMeter(instruments.Meter("internal.orders.application")),
	)
	return NewRouter(deps)
}

// Run boots the GrubDash HTTP API and blocks until ctx is cancelled or the
// process receives SIGINT or SIGTERM.
func Run(ctx context.Context, cfg Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	instruments, shutdown, err := platformobservability.Init(ctx, platformobservability.Options{
		ServiceName:    serviceName,
		Environment:    cfg.Environment,
		OTLPEndpoint:   cfg.OTLPEndpoint,
		OTLPInsecure:   cfg.OTLPInsecure,
		TracesDisabled: cfg.TracesDisabled,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	logger := instruments.Logger
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()

	app := NewApp()
	if cfg.SeedFile != "" {
		fixtures, err := seed.Load(cfg.SeedFile)
		if err != nil {
			return err
		}
		if err := app.Seed(ctx, fixtures); err != nil {
			return fmt.Errorf("seed stores: %w", err)
		}
		logger.Info("stores seeded",
			slog.String("file", cfg.SeedFile),
			slog.Int("dishes", len(fixtures.Dishes)),
			slog.Int("orders", len(fixtures.Orders)),
		)
	}

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           app.Router(instruments),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("GrubDash API listening", slog.String("addr", server.Addr))
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		logger.Error("GrubDash API server exited", slog.String("addr", server.Addr), slog.String("error", err.Error()))
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down GrubDash API", slog.Duration("timeout", cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}
