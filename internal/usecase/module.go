package usecase

import (
	"go.uber.org/fx"

	"github.com/petaline/storefront/internal/config"
)

// Module provides core business use cases to the fx container.
var Module = fx.Options(
	fx.Provide(
		NewCatalogUseCase,
		NewCartUseCase,
		NewAuthUseCase,
		NewOrderUseCase,
	),
	fx.Provide(func(cfg *config.Config) OrderOptions {
		return OrderOptions{
			RestoreStockOnCancel: cfg.RestoreStockOnCancel,
			DefaultCancelReason:  cfg.DefaultCancelReason,
		}
	}),
)
