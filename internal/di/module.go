package di

import (
	"go.uber.org/fx"

	"github.com/petaline/storefront/internal/app"
	"github.com/petaline/storefront/internal/config"
	"github.com/petaline/storefront/internal/logger"
	"github.com/petaline/storefront/internal/session"
	"github.com/petaline/storefront/internal/storage/memory"
	"github.com/petaline/storefront/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		memory.Module,
		session.Module,
		usecase.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
