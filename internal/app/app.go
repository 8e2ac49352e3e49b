package app

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"github.com/petaline/storefront/internal/cli"
	"github.com/petaline/storefront/internal/config"
	"github.com/petaline/storefront/internal/worker"
)

// Module wires application services, runtime components, and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		NewStorefrontFacade,
		newConfirmRedirect,
		newLoop,
	),
	fx.Invoke(registerLifecycle),
)

type redirectParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newConfirmRedirect(p redirectParams) *worker.ConfirmRedirect {
	return worker.NewConfirmRedirect(p.Config.ConfirmRedirectDelay, p.Logger)
}

type loopParams struct {
	fx.In

	Facade   *StorefrontFacade
	Redirect *worker.ConfirmRedirect
	Logger   *slog.Logger
}

func newLoop(p loopParams) *cli.Loop {
	return cli.NewLoop(p.Facade, p.Redirect, p.Logger, os.Stdin, os.Stdout)
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Loop       *cli.Loop
	Redirect   *worker.ConfirmRedirect
	Ctx        context.Context
}

func registerLifecycle(p lifecycleParams) {
	runCtx, cancel := context.WithCancel(p.Ctx)

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			p.Logger.Info("starting storefront")
			go func() {
				if err := p.Loop.Run(runCtx); err != nil && !errors.Is(err, context.Canceled) {
					p.Logger.Error("cli terminated", slog.String("error", err.Error()))
				}
				_ = p.Shutdowner.Shutdown()
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			p.Redirect.Stop()
			p.Logger.Info("storefront stopped")
			return nil
		},
	})
}
