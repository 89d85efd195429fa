package app

import (
	"github.com/jhoicas/invoice-core/internal/application/billing"
	"github.com/jhoicas/invoice-core/pkg/config"
	"github.com/jhoicas/invoice-core/pkg/logger"
)

// NewTotalsService arma el logger según la configuración y devuelve el caso de uso de totales.
func NewTotalsService(cfg *config.Config) *billing.CalculateTotalsUseCase {
	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Debug().Str("app", cfg.App.Name).Str("env", cfg.App.Env).Msg("servicio de totales listo")
	return billing.NewCalculateTotalsUseCase(log)
}
