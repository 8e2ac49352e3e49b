package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/petaline/storefront/internal/app"
	"github.com/petaline/storefront/internal/config"
	"github.com/petaline/storefront/internal/domain/repository"
	"github.com/petaline/storefront/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		AdminLogin:           "admin",
		AdminPassword:        "admin",
		DefaultCancelReason:  "reason not specified",
		ConfirmRedirectDelay: time.Millisecond,
		ShutdownTimeout:      time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	productRepo := test.NewProductRepositoryStub()
	cartRepo := test.NewCartRepositoryStub()
	orderRepo := &test.OrderRepositoryStub{}
	userRepo := test.NewUserRepositoryStub()

	var facade *app.StorefrontFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Provide(func() context.Context { return context.Background() }),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(repository.ProductRepository(productRepo)),
			fx.Replace(repository.CartRepository(cartRepo)),
			fx.Replace(repository.OrderRepository(orderRepo)),
			fx.Replace(repository.UserRepository(userRepo)),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected storefront facade instance")
	}
}
