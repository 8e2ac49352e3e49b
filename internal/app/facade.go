package app

import (
	"context"

	domainErrors "github.com/petaline/storefront/internal/domain/errors"
	"github.com/petaline/storefront/internal/domain/model"
	"github.com/petaline/storefront/internal/session"
	"github.com/petaline/storefront/internal/usecase"
)

// StorefrontFacade is the boundary the presentation layer talks to. It joins
// the session holder with the catalog, cart, order and auth use cases and
// applies identity gating; every failure comes back as a domain error value.
type StorefrontFacade struct {
	catalog  *usecase.CatalogUseCase
	cart     *usecase.CartUseCase
	orders   *usecase.OrderUseCase
	auth     *usecase.AuthUseCase
	sessions *session.Holder
}

// NewStorefrontFacade constructs StorefrontFacade.
func NewStorefrontFacade(catalog *usecase.CatalogUseCase, cart *usecase.CartUseCase, orders *usecase.OrderUseCase, auth *usecase.AuthUseCase, sessions *session.Holder) *StorefrontFacade {
	return &StorefrontFacade{catalog: catalog, cart: cart, orders: orders, auth: auth, sessions: sessions}
}

// Products lists in-stock products, filtered and sorted for display.
func (f *StorefrontFacade) Products(ctx context.Context, category model.Category, key model.SortKey) ([]model.Product, error) {
	return f.catalog.ListAvailable(ctx, category, key)
}

// Product fetches one product by id.
func (f *StorefrontFacade) Product(ctx context.Context, id int64) (*model.Product, error) {
	return f.catalog.Get(ctx, id)
}

// AddToCart adds qty of the product to the session cart.
func (f *StorefrontFacade) AddToCart(ctx context.Context, productID int64, qty int) error {
	return f.cart.Add(ctx, f.sessions.Current().ID, productID, qty)
}

// SetCartQuantity sets the product's cart line to qty.
func (f *StorefrontFacade) SetCartQuantity(ctx context.Context, productID int64, qty int) error {
	return f.cart.SetQuantity(ctx, f.sessions.Current().ID, productID, qty)
}

// RemoveFromCart deletes the product's cart line.
func (f *StorefrontFacade) RemoveFromCart(ctx context.Context, productID int64) error {
	return f.cart.Remove(ctx, f.sessions.Current().ID, productID)
}

// Cart returns the current cart snapshot with its running total.
func (f *StorefrontFacade) Cart(ctx context.Context) (*model.CartSnapshot, error) {
	return f.cart.Snapshot(ctx, f.sessions.Current().ID)
}

// Checkout is the read-only gate before order submission: the caller must be
// logged in and every cart line must fit current stock.
func (f *StorefrontFacade) Checkout(ctx context.Context) error {
	if _, ok := f.sessions.UserLogin(); !ok {
		return domainErrors.ErrNotAuthenticated
	}
	return f.cart.ValidateCheckout(ctx, f.sessions.Current().ID)
}

// SubmitOrder places an order from the session cart.
func (f *StorefrontFacade) SubmitOrder(ctx context.Context, delivery model.DeliveryDetails) (*model.Order, error) {
	login, ok := f.sessions.UserLogin()
	if !ok {
		return nil, domainErrors.ErrNotAuthenticated
	}
	return f.orders.Place(ctx, login, f.sessions.Current().ID, delivery)
}

// MyOrders returns the logged-in user's orders, newest first.
func (f *StorefrontFacade) MyOrders(ctx context.Context) ([]model.Order, error) {
	login, ok := f.sessions.UserLogin()
	if !ok {
		return nil, domainErrors.ErrNotAuthenticated
	}
	return f.orders.ListByUser(ctx, login)
}

// DeleteMyOrder removes the logged-in user's own order while it is new.
func (f *StorefrontFacade) DeleteMyOrder(ctx context.Context, orderID int64) error {
	login, ok := f.sessions.UserLogin()
	if !ok {
		return domainErrors.ErrNotAuthenticated
	}
	return f.orders.Delete(ctx, orderID, login)
}

// AllOrders returns every order for the administrative view.
func (f *StorefrontFacade) AllOrders(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	if err := f.requireAdmin(); err != nil {
		return nil, err
	}
	return f.orders.ListAll(ctx, status)
}

// SetOrderStatus moves an order along the lifecycle graph.
func (f *StorefrontFacade) SetOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus, reason string) error {
	if err := f.requireAdmin(); err != nil {
		return err
	}
	return f.orders.Transition(ctx, orderID, status, reason)
}

// Register creates an account and logs it in.
func (f *StorefrontFacade) Register(ctx context.Context, in usecase.RegisterInput) (*model.User, error) {
	user, err := f.auth.Register(ctx, in)
	if err != nil {
		return nil, err
	}
	f.sessions.Attach(user)
	return user, nil
}

// Login authenticates and binds the user to the session.
func (f *StorefrontFacade) Login(ctx context.Context, login, password string) (*model.User, error) {
	user, err := f.auth.Authenticate(ctx, login, password)
	if err != nil {
		return nil, err
	}
	f.sessions.Attach(user)
	return user, nil
}

// Logout detaches the current user, keeping the cart.
func (f *StorefrontFacade) Logout() {
	f.sessions.Detach()
}

// CurrentUser returns the logged-in user, nil when anonymous.
func (f *StorefrontFacade) CurrentUser() *model.User {
	return f.sessions.Current().User
}

func (f *StorefrontFacade) requireAdmin() error {
	if _, ok := f.sessions.UserLogin(); !ok {
		return domainErrors.ErrNotAuthenticated
	}
	if !f.sessions.IsAdmin() {
		return domainErrors.ErrNotPermitted
	}
	return nil
}
