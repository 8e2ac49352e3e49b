package memory

import (
	"go.uber.org/fx"

	"github.com/petaline/storefront/internal/config"
	"github.com/petaline/storefront/internal/domain/model"
	"github.com/petaline/storefront/internal/domain/repository"
)

// Module wires in-memory storage and repository adapters.
var Module = fx.Options(
	fx.Provide(newStorage),
	fx.Provide(
		func(s *Storage) repository.ProductRepository { return s.Products() },
		func(s *Storage) repository.CartRepository { return s.Carts() },
		func(s *Storage) repository.OrderRepository { return s.Orders() },
		func(s *Storage) repository.UserRepository { return s.Users() },
	),
)

func newStorage(cfg *config.Config) *Storage {
	storage := New()
	storage.Seed(DefaultCatalog(), []model.User{{
		Login:    cfg.AdminLogin,
		Password: cfg.AdminPassword,
		Name:     "Admin",
		Phone:    "+7(000)-000-00-00",
		Email:    "admin@example.com",
		IsAdmin:  true,
	}})
	return storage
}
