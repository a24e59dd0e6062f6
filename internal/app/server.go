package app

import (
	"context"

	"github.com/pboachie/pi-lotto/internal/http"
	"github.com/pboachie/pi-lotto/internal/http/handlers"
	"github.com/pboachie/pi-lotto/internal/http/middleware"
	"github.com/pboachie/pi-lotto/internal/infrastructure/auth"
	"github.com/pboachie/pi-lotto/internal/infrastructure/logger"
	"github.com/pboachie/pi-lotto/internal/jobs"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// InitHTTPServer initializes the HTTP server with all dependencies
func (a *application) InitHTTPServer(
	jwtService auth.JWTService,
	userHandler *handlers.UserHandler,
	paymentHandler *handlers.PaymentHandler,
	gameHandler *handlers.GameHandler,
	errorHandler *middleware.ErrorHandler,
	log *logger.Logger,
) *http.Server {
	addr := a.config.GetServerAddress()
	if addr == ":" {
		addr = ":8080" // default port
	}

	return http.NewServer(jwtService, userHandler, paymentHandler, gameHandler, errorHandler, log, addr)
}

// registerHooks wires the HTTP server and the job scheduler into the fx
// lifecycle
func (a *application) registerHooks(lc fx.Lifecycle, server *http.Server, scheduler *jobs.Scheduler, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			scheduler.Start()
			go func() {
				if err := server.Start(); err != nil {
					log.Fatal("HTTP server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			scheduler.Stop()
			return log.Sync()
		},
	})
}
