package app

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/buscaminas/internal/config"
	"github.com/vancomm/buscaminas/internal/middleware"
)

type App struct {
	log    *logrus.Logger
	cfg    config.Config
	router *http.ServeMux
}

func New(log *logrus.Logger, cfg config.Config) *App {
	app := &App{
		log:    log,
		cfg:    cfg,
		router: http.NewServeMux(),
	}
	app.loadRoutes()
	return app
}

func (a *App) Handler() http.Handler {
	return middleware.Wrap(
		a.router,
		middleware.Logging(a.log),
		middleware.Cors(),
	)
}

// Start serves until ctx is cancelled, then shuts down gracefully within
// the configured timeout.
func (a *App) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:    a.cfg.Addr,
		Handler: a.Handler(),
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.log.WithField("addr", a.cfg.Addr).Info("ready to serve")
		err := server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-gCtx.Done()
		sCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout.Duration)
		defer cancel()
		a.log.Info("shutting down")
		return server.Shutdown(sCtx)
	})

	return g.Wait()
}
