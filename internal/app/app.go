package app

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/pboachie/pi-lotto/internal/config"
	"go.uber.org/fx"
)

// Application provides application level setup
type Application interface {
	Setup()
	GetContext() context.Context
}

// application represents context and configure file
type application struct {
	ctx    context.Context
	config *config.Config
}

// NewApplication creates a new application
func NewApplication(ctx context.Context) Application {
	return &application{ctx: ctx}
}

// GetContext returns application context
func (a *application) GetContext() context.Context {
	return a.ctx
}

// Setup creates a new fx application with all modules
func (a *application) Setup() {
	fmt.Println("[x] Starting Pi-Lotto Service...")

	path := flag.String("e", "./config", "env file directory")
	flag.Parse()

	err := a.setupViper(*path)
	if err != nil {
		log.Panic(err.Error())
	}

	app := fx.New(
		fx.Provide(
			a.InitConfig,
			a.InitLogger,
			a.InitDatabase,
			a.InitRepository,
			a.InitJWTService,
			a.InitUserLockManager,
			a.InitPaymentService,
			a.InitTransactionEngine,
			a.InitUserUseCase,
			a.InitSettlementUseCase,
			a.InitMaintenanceJobs,
			a.InitScheduler,
			a.InitErrorHandler,
			a.InitUserHandler,
			a.InitPaymentHandler,
			a.InitGameHandler,
			a.InitHTTPServer,
		),
		fx.Invoke(a.registerHooks),
	)

	app.Run()
}

// InitConfig exposes the loaded configuration to the fx graph
func (a *application) InitConfig() *config.Config {
	return a.config
}
