package test

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainErrors "github.com/petaline/storefront/internal/domain/errors"
	"github.com/petaline/storefront/internal/domain/model"
)

// ProductRepositoryStub stores products in-memory for tests and lets a test
// inject failures per operation.
type ProductRepositoryStub struct {
	ProductsByID map[int64]*model.Product
	IDs          []int64
	Err          error
	DecrementFn  func(ctx context.Context, id int64, qty int) (*model.Product, error)

	Decrements []StockCall
	Restores   []StockCall
}

// StockCall records a stock mutation request.
type StockCall struct {
	ProductID int64
	Qty       int
}

// NewProductRepositoryStub constructs a stub seeded with the given products.
func NewProductRepositoryStub(products ...model.Product) *ProductRepositoryStub {
	s := &ProductRepositoryStub{ProductsByID: make(map[int64]*model.Product)}
	for _, p := range products {
		p := p
		s.ProductsByID[p.ID] = &p
		s.IDs = append(s.IDs, p.ID)
	}
	return s
}

func (s *ProductRepositoryStub) List(ctx context.Context) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	products := make([]model.Product, 0, len(s.IDs))
	for _, id := range s.IDs {
		products = append(products, *s.ProductsByID[id])
	}
	return products, nil
}

func (s *ProductRepositoryStub) Get(ctx context.Context, id int64) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	product, ok := s.ProductsByID[id]
	if !ok {
		return nil, domainErrors.ErrProductNotFound
	}
	copied := *product
	return &copied, nil
}

func (s *ProductRepositoryStub) DecrementStock(ctx context.Context, id int64, qty int) (*model.Product, error) {
	s.Decrements = append(s.Decrements, StockCall{ProductID: id, Qty: qty})
	if s.DecrementFn != nil {
		return s.DecrementFn(ctx, id, qty)
	}
	product, ok := s.ProductsByID[id]
	if !ok {
		return nil, domainErrors.ErrProductNotFound
	}
	if qty > product.InStock {
		return nil, &domainErrors.InsufficientStockError{ProductID: id, Available: product.InStock}
	}
	product.InStock -= qty
	copied := *product
	return &copied, nil
}

func (s *ProductRepositoryStub) RestoreStock(ctx context.Context, id int64, qty int) (*model.Product, error) {
	s.Restores = append(s.Restores, StockCall{ProductID: id, Qty: qty})
	product, ok := s.ProductsByID[id]
	if !ok {
		return nil, domainErrors.ErrProductNotFound
	}
	product.InStock += qty
	copied := *product
	return &copied, nil
}

func (s *ProductRepositoryStub) UpdatePrice(ctx context.Context, id int64, price decimal.Decimal) error {
	product, ok := s.ProductsByID[id]
	if !ok {
		return domainErrors.ErrProductNotFound
	}
	product.Price = price
	return nil
}

// CartRepositoryStub stores session carts in-memory for tests.
type CartRepositoryStub struct {
	Carts map[uuid.UUID]*model.Cart
	Err   error
}

// NewCartRepositoryStub constructs a stub with initialized maps.
func NewCartRepositoryStub() *CartRepositoryStub {
	return &CartRepositoryStub{Carts: make(map[uuid.UUID]*model.Cart)}
}

func (s *CartRepositoryStub) Get(ctx context.Context, sessionID uuid.UUID) (*model.Cart, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	cart, ok := s.Carts[sessionID]
	if !ok {
		return &model.Cart{}, nil
	}
	return &model.Cart{Lines: append([]model.CartLine(nil), cart.Lines...)}, nil
}

func (s *CartRepositoryStub) SetLine(ctx context.Context, sessionID uuid.UUID, productID int64, qty int) error {
	if s.Err != nil {
		return s.Err
	}
	if qty <= 0 {
		return s.RemoveLine(ctx, sessionID, productID)
	}
	cart, ok := s.Carts[sessionID]
	if !ok {
		cart = &model.Cart{}
		s.Carts[sessionID] = cart
	}
	for i := range cart.Lines {
		if cart.Lines[i].ProductID == productID {
			cart.Lines[i].Quantity = qty
			return nil
		}
	}
	cart.Lines = append(cart.Lines, model.CartLine{ProductID: productID, Quantity: qty})
	return nil
}

func (s *CartRepositoryStub) RemoveLine(ctx context.Context, sessionID uuid.UUID, productID int64) error {
	cart, ok := s.Carts[sessionID]
	if !ok {
		return nil
	}
	for i := range cart.Lines {
		if cart.Lines[i].ProductID == productID {
			cart.Lines = append(cart.Lines[:i], cart.Lines[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *CartRepositoryStub) Clear(ctx context.Context, sessionID uuid.UUID) error {
	delete(s.Carts, sessionID)
	return nil
}

// OrderRepositoryStub stores orders in-memory and allows tests to customize
// behaviour through function hooks.
type OrderRepositoryStub struct {
	CreateFn func(context.Context, model.Order) (*model.Order, error)

	Orders []model.Order
	NextID int64
}

func (s *OrderRepositoryStub) Create(ctx context.Context, order model.Order) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	s.NextID++
	order.ID = s.NextID
	s.Orders = append(s.Orders, order)
	return &order, nil
}

func (s *OrderRepositoryStub) Get(ctx context.Context, id int64) (*model.Order, error) {
	for i := range s.Orders {
		if s.Orders[i].ID == id {
			copied := s.Orders[i]
			return &copied, nil
		}
	}
	return nil, domainErrors.ErrOrderNotFound
}

func (s *OrderRepositoryStub) ListByUser(ctx context.Context, login string) ([]model.Order, error) {
	var orders []model.Order
	for i := len(s.Orders) - 1; i >= 0; i-- {
		if s.Orders[i].UserLogin == login {
			orders = append(orders, s.Orders[i])
		}
	}
	return orders, nil
}

func (s *OrderRepositoryStub) ListAll(ctx context.Context) ([]model.Order, error) {
	orders := make([]model.Order, 0, len(s.Orders))
	for i := len(s.Orders) - 1; i >= 0; i-- {
		orders = append(orders, s.Orders[i])
	}
	return orders, nil
}

func (s *OrderRepositoryStub) Delete(ctx context.Context, id int64) error {
	for i := range s.Orders {
		if s.Orders[i].ID == id {
			s.Orders = append(s.Orders[:i], s.Orders[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrOrderNotFound
}

func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus, cancelReason string) error {
	for i := range s.Orders {
		if s.Orders[i].ID == id {
			s.Orders[i].Status = status
			s.Orders[i].CancelReason = cancelReason
			return nil
		}
	}
	return domainErrors.ErrOrderNotFound
}

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub(users ...model.User) *UserRepositoryStub {
	s := &UserRepositoryStub{Users: make(map[string]*model.User)}
	for _, u := range users {
		u := u
		s.Users[u.Login] = &u
	}
	return s
}

func (s *UserRepositoryStub) Create(ctx context.Context, user model.User) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.Users[user.Login]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	for _, existing := range s.Users {
		if existing.Email == user.Email {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	stored := user
	s.Users[user.Login] = &stored
	copied := user
	return &copied, nil
}

func (s *UserRepositoryStub) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	user, ok := s.Users[login]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	copied := *user
	return &copied, nil
}
