package app

import (
	"github.com/pboachie/pi-lotto/internal/domain"
	"github.com/pboachie/pi-lotto/internal/infrastructure/external/pinet"
)

func (a *application) InitPaymentService() domain.PaymentService {
	return pinet.NewPaymentService(
		a.config.PiNet.BaseURL,
		a.config.PiNet.ServerAPIKey,
		a.config.PiNet.Timeout,
	)
}
