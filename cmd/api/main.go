// Package main Pi-Lotto API
//
// Pi-Lotto is a pay-to-play lottery service settling entry fees, deposits
// and withdrawals against the Pi Network payment platform. The service owns
// the ledger of user balances and guarantees that every provider callback
// settles a transaction exactly once.
//
//	Schemes: http, https
//	Host: localhost:8080
//	BasePath: /api/v1
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
//	Security:
//	- bearer
package main

import (
	"context"

	"github.com/joho/godotenv"
	_ "github.com/pboachie/pi-lotto/docs"
	"github.com/pboachie/pi-lotto/internal/app"
)

// @title Pi-Lotto API Service
// @version 1.0
// @description Pi-Lotto is a pay-to-play lottery service settling entry fees, deposits and withdrawals against the Pi Network payment platform.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Missing .env is fine, config falls back to yml + environment
	_ = godotenv.Load()

	ctx := context.Background()
	application := app.NewApplication(ctx)
	application.Setup()
}
