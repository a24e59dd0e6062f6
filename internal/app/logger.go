package app

import (
	"github.com/pboachie/pi-lotto/internal/config"
	"github.com/pboachie/pi-lotto/internal/infrastructure/logger"
)

// InitLogger creates a new logger instance
func (a *application) InitLogger() *logger.Logger {
	return logger.NewLogger(config.GetEnvironment(), a.config.Log.Level)
}
