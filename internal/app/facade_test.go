package app

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/petaline/storefront/internal/domain/errors"
	"github.com/petaline/storefront/internal/domain/model"
	"github.com/petaline/storefront/internal/session"
	"github.com/petaline/storefront/internal/storage/memory"
	testhelpers "github.com/petaline/storefront/internal/test"
	"github.com/petaline/storefront/internal/usecase"
)

func newFacade(t *testing.T) *StorefrontFacade {
	t.Helper()

	storage := memory.New()
	storage.Seed(
		[]model.Product{testhelpers.Rose(), testhelpers.Tulip(), testhelpers.Wrap()},
		[]model.User{testhelpers.Admin(), testhelpers.Customer()},
	)

	products := storage.Products()
	carts := storage.Carts()
	orders := storage.Orders()
	users := storage.Users()

	return NewStorefrontFacade(
		usecase.NewCatalogUseCase(products),
		usecase.NewCartUseCase(products, carts),
		usecase.NewOrderUseCase(orders, products, carts, usecase.OrderOptions{}),
		usecase.NewAuthUseCase(users),
		session.NewHolder(),
	)
}

func loginCustomer(t *testing.T, f *StorefrontFacade) {
	t.Helper()
	if _, err := f.Login(context.Background(), "daisy", "secret1"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
}

func TestBrowseAndCart(t *testing.T) {
	f := newFacade(t)
	ctx := context.Background()

	products, err := f.Products(ctx, "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 3 {
		t.Fatalf("expected 3 products, got %d", len(products))
	}

	if err := f.AddToCart(ctx, 1, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snapshot, err := f.Cart(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snapshot.Lines) != 1 || snapshot.Lines[0].Quantity != 2 {
		t.Fatalf("unexpected snapshot: %+v", snapshot)
	}
}

func TestCheckoutRequiresLogin(t *testing.T) {
	f := newFacade(t)
	ctx := context.Background()

	if err := f.AddToCart(ctx, 1, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := f.Checkout(ctx); !errors.Is(err, domainErrors.ErrNotAuthenticated) {
		t.Fatalf("expected not authenticated, got %v", err)
	}
	if _, err := f.SubmitOrder(ctx, testhelpers.Delivery()); !errors.Is(err, domainErrors.ErrNotAuthenticated) {
		t.Fatalf("expected not authenticated, got %v", err)
	}
}

func TestSubmitOrderEndToEnd(t *testing.T) {
	f := newFacade(t)
	ctx := context.Background()

	if err := f.AddToCart(ctx, 1, 4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	loginCustomer(t, f)

	if err := f.Checkout(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	order, err := f.SubmitOrder(ctx, testhelpers.Delivery())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != model.OrderStatusNew || order.UserLogin != "daisy" {
		t.Fatalf("unexpected order: %+v", order)
	}

	product, _ := f.Product(ctx, 1)
	if product.InStock != 6 {
		t.Fatalf("expected stock 6 after placement, got %d", product.InStock)
	}
	snapshot, _ := f.Cart(ctx)
	if len(snapshot.Lines) != 0 {
		t.Fatal("expected an empty cart after placement")
	}

	mine, err := f.MyOrders(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mine) != 1 || mine[0].ID != order.ID {
		t.Fatalf("unexpected order list: %+v", mine)
	}
}

func TestCartSurvivesLoginAndLogout(t *testing.T) {
	f := newFacade(t)
	ctx := context.Background()

	if err := f.AddToCart(ctx, 2, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	loginCustomer(t, f)
	f.Logout()

	if f.CurrentUser() != nil {
		t.Fatal("expected an anonymous session after logout")
	}
	snapshot, _ := f.Cart(ctx)
	if len(snapshot.Lines) != 1 {
		t.Fatal("cart must survive login and logout")
	}
}

func TestAdminGating(t *testing.T) {
	f := newFacade(t)
	ctx := context.Background()

	if _, err := f.AllOrders(ctx, ""); !errors.Is(err, domainErrors.ErrNotAuthenticated) {
		t.Fatalf("expected not authenticated, got %v", err)
	}
	if err := f.SetOrderStatus(ctx, 1, model.OrderStatusConfirmed, ""); !errors.Is(err, domainErrors.ErrNotAuthenticated) {
		t.Fatalf("expected not authenticated, got %v", err)
	}

	loginCustomer(t, f)
	if _, err := f.AllOrders(ctx, ""); !errors.Is(err, domainErrors.ErrNotPermitted) {
		t.Fatalf("expected not permitted, got %v", err)
	}
	if err := f.SetOrderStatus(ctx, 1, model.OrderStatusConfirmed, ""); !errors.Is(err, domainErrors.ErrNotPermitted) {
		t.Fatalf("expected not permitted, got %v", err)
	}
}

func TestAdminManagesOrders(t *testing.T) {
	f := newFacade(t)
	ctx := context.Background()

	if err := f.AddToCart(ctx, 1, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	loginCustomer(t, f)
	order, err := f.SubmitOrder(ctx, testhelpers.Delivery())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f.Logout()

	if _, err := f.Login(ctx, "admin", "admin"); err != nil {
		t.Fatalf("admin login failed: %v", err)
	}

	all, err := f.AllOrders(ctx, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 order, got %d", len(all))
	}

	if err := f.SetOrderStatus(ctx, order.ID, model.OrderStatusProcessing, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	confirmed, err := f.AllOrders(ctx, model.OrderStatusProcessing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(confirmed) != 1 || confirmed[0].Status != model.OrderStatusProcessing {
		t.Fatalf("unexpected filtered list: %+v", confirmed)
	}
}

func TestRegisterLogsUserIn(t *testing.T) {
	f := newFacade(t)

	user, err := f.Register(context.Background(), usecase.RegisterInput{
		Login:    "rose",
		Password: "petals1",
		Name:     "Rose Gardener",
		Phone:    "+7(912)-345-67-89",
		Email:    "rose@example.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.IsAdmin {
		t.Fatal("self registration must not grant admin")
	}
	current := f.CurrentUser()
	if current == nil || current.Login != "rose" {
		t.Fatalf("expected registered user attached, got %+v", current)
	}
}

func TestDeleteMyOrder(t *testing.T) {
	f := newFacade(t)
	ctx := context.Background()

	loginCustomer(t, f)
	if err := f.AddToCart(ctx, 3, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	order, err := f.SubmitOrder(ctx, testhelpers.Delivery())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := f.DeleteMyOrder(ctx, order.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mine, _ := f.MyOrders(ctx)
	if len(mine) != 0 {
		t.Fatal("expected no orders after deletion")
	}

	product, _ := f.Product(ctx, 3)
	if product.InStock != 18 {
		t.Fatalf("deletion must not restore stock, got %d", product.InStock)
	}
}
