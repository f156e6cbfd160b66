package app

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/stpnv0/TicketBooker/internal/config"
	"github.com/stpnv0/TicketBooker/internal/facade"
	"github.com/stpnv0/TicketBooker/internal/handler"
	"github.com/stpnv0/TicketBooker/internal/middleware"
	"github.com/stpnv0/TicketBooker/internal/preloader"
	"github.com/stpnv0/TicketBooker/internal/repository"
	"github.com/stpnv0/TicketBooker/internal/router"
	"github.com/stpnv0/TicketBooker/internal/service"
	"github.com/wb-go/wbf/logger"
)

type App struct {
	cfg        *config.Config
	log        logger.Logger
	httpServer *http.Server
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"TicketBooker",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initServices() error {
	userRepo := repository.NewUserRepo(a.log)
	eventRepo := repository.NewEventRepo(a.log)
	ticketRepo := repository.NewTicketRepo(userRepo, eventRepo, a.log)

	userService := service.NewUserService(userRepo)
	eventService := service.NewEventService(eventRepo)
	ticketService := service.NewTicketService(ticketRepo)

	var preloaders []facade.DataPreloader
	if path := a.cfg.Preload.UsersFile; path != "" {
		preloaders = append(preloaders, preloader.NewUserPreloader(path, userRepo, a.log))
	}
	if path := a.cfg.Preload.EventsFile; path != "" {
		preloaders = append(preloaders, preloader.NewEventPreloader(path, eventRepo, a.log))
	}
	if path := a.cfg.Preload.TicketsFile; path != "" {
		preloaders = append(preloaders, preloader.NewTicketPreloader(path, ticketRepo, a.log))
	}

	bookingFacade := facade.New(userService, eventService, ticketService, preloaders, a.log)

	if err := bookingFacade.PreloadData(); err != nil {
		return err
	}

	h := handler.NewHandler(bookingFacade, bookingFacade, bookingFacade)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
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

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

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

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}
