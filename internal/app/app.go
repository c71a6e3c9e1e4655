package app

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/ashokan1984/CorporatePassBookingReactApp/internal/apiclient"
	"github.com/ashokan1984/CorporatePassBookingReactApp/internal/config"
	"github.com/ashokan1984/CorporatePassBookingReactApp/internal/handler"
	"github.com/ashokan1984/CorporatePassBookingReactApp/internal/middleware"
	"github.com/ashokan1984/CorporatePassBookingReactApp/internal/notification"
	"github.com/ashokan1984/CorporatePassBookingReactApp/internal/obs"
	"github.com/ashokan1984/CorporatePassBookingReactApp/internal/repository"
	"github.com/ashokan1984/CorporatePassBookingReactApp/internal/router"
	"github.com/ashokan1984/CorporatePassBookingReactApp/internal/scheduler"
	"github.com/ashokan1984/CorporatePassBookingReactApp/internal/service"
	"github.com/ashokan1984/CorporatePassBookingReactApp/internal/view"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

type App struct {
	cfg            *config.Config
	log            logger.Logger
	api            *apiclient.Client
	httpServer     *http.Server
	scheduler      *scheduler.Scheduler
	shutdownTracer func(context.Context) error

	Facilities *service.FacilityService
	Visitors   *service.VisitorService
	Bookings   *service.BookingService
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"CorporatePassBooking",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.initTracing(); err != nil {
		return nil, fmt.Errorf("init tracing: %w", err)
	}

	if err = app.initAPI(); err != nil {
		return nil, fmt.Errorf("init api client: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initTracing() error {
	shutdown, err := obs.InitTracer(context.Background(), obs.Config{
		Endpoint:    a.cfg.Tracing.Endpoint,
		ServiceName: a.cfg.Tracing.ServiceName,
		Environment: a.cfg.Tracing.Environment,
	})
	if err != nil {
		return err
	}
	a.shutdownTracer = shutdown

	if a.cfg.Tracing.Endpoint != "" {
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "tracing enabled",
			logger.String("endpoint", a.cfg.Tracing.Endpoint),
		)
	}
	return nil
}

func (a *App) initAPI() error {
	api, err := apiclient.New(apiclient.Config{
		BaseURL: a.cfg.API.BaseURL,
		Timeout: a.cfg.API.Timeout,
	}, a.log)
	if err != nil {
		return err
	}
	a.api = api

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "booking api configured",
		logger.String("base_url", api.BaseURL()),
		logger.Duration("timeout", a.cfg.API.Timeout),
	)
	return nil
}

func (a *App) initServices() error {
	facilityRepo := repository.NewFacilityRepo(a.api)
	visitorRepo := repository.NewVisitorRepo(a.api)
	bookingRepo := repository.NewBookingRepo(a.api)

	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.cfg.Telegram.ChatID, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	a.Facilities = service.NewFacilityService(facilityRepo, a.log)
	a.Visitors = service.NewVisitorService(visitorRepo, bookingRepo, a.log)
	a.Bookings = service.NewBookingService(bookingRepo, facilityRepo, visitorRepo, n, a.log)

	strategy, err := view.ParseStrategy(a.cfg.View.Strategy)
	if err != nil {
		return err
	}

	opts := handler.Options{
		PageSize: a.cfg.View.PageSize,
		Strategy: strategy,
	}
	if a.cfg.Scheduler.ProbeInterval > 0 {
		a.scheduler = scheduler.New(facilityRepo, a.cfg.Scheduler.ProbeInterval, a.log)
		opts.API = a.scheduler
	}

	h := handler.NewHandler(a.Facilities, a.Visitors, a.Bookings, opts, a.log)

	var limit ginext.HandlerFunc
	if a.cfg.RateLimit.RPS > 0 {
		limit = middleware.NewRateLimiter(a.cfg.RateLimit.RPS, a.cfg.RateLimit.Burst, a.cfg.RateLimit.TTL).Limit()
	}

	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		limit,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Logger() logger.Logger {
	return a.log
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if a.scheduler != nil {
		go a.scheduler.Start(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.Close(shutdownCtx); err != nil {
		return err
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

// Close releases what New acquired besides the HTTP server.
func (a *App) Close(ctx context.Context) error {
	if a.shutdownTracer == nil {
		return nil
	}
	if err := a.shutdownTracer(ctx); err != nil {
		return fmt.Errorf("tracer shutdown: %w", err)
	}
	return nil
}
