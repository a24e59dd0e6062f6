package app

import (
	"github.com/pboachie/pi-lotto/internal/http/middleware"
	"github.com/pboachie/pi-lotto/internal/infrastructure/logger"
)

func (a *application) InitErrorHandler(log *logger.Logger) *middleware.ErrorHandler {
	return middleware.NewErrorHandler(log)
}
