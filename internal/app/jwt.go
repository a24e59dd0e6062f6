package app

import (
	"github.com/pboachie/pi-lotto/internal/config"
	"github.com/pboachie/pi-lotto/internal/infrastructure/auth"
)

func (a *application) InitJWTService() auth.JWTService {
	cfg := &config.JWTConfig{
		Secret:        a.config.JWT.Secret,
		Expiry:        a.config.JWT.Expiry,
		RefreshExpiry: a.config.JWT.RefreshExpiry,
	}
	return auth.NewJWTService(cfg)
}
