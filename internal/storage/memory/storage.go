package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainErrors "github.com/petaline/storefront/internal/domain/errors"
	"github.com/petaline/storefront/internal/domain/model"
	"github.com/petaline/storefront/internal/domain/repository"
)

// Storage acts as repository facade backed by process memory. All state lives
// for the lifetime of the process; there is no persistence.
type Storage struct {
	mu sync.Mutex

	products     map[int64]*model.Product
	productOrder []int64
	carts        map[uuid.UUID]*model.Cart
	orders       map[int64]*model.Order
	lastOrderID  int64
	users        map[string]*model.User
}

type productRepository struct {
	storage *Storage
}

type cartRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

type userRepository struct {
	storage *Storage
}

var _ repository.Factory = (*Storage)(nil)

// New creates empty storage.
func New() *Storage {
	return &Storage{
		products: make(map[int64]*model.Product),
		carts:    make(map[uuid.UUID]*model.Cart),
		orders:   make(map[int64]*model.Order),
		users:    make(map[string]*model.User),
	}
}

// Seed loads products and users into storage, replacing any existing entries
// with the same identity.
func (s *Storage) Seed(products []model.Product, users []model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range products {
		p := p
		if _, exists := s.products[p.ID]; !exists {
			s.productOrder = append(s.productOrder, p.ID)
		}
		s.products[p.ID] = &p
	}
	for _, u := range users {
		u := u
		s.users[u.Login] = &u
	}
}

// Factory methods for domain repositories.
func (s *Storage) Products() repository.ProductRepository {
	return &productRepository{storage: s}
}

func (s *Storage) Carts() repository.CartRepository {
	return &cartRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

// --- ProductRepository implementation ---

func (r *productRepository) List(ctx context.Context) ([]model.Product, error) {
	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()

	products := make([]model.Product, 0, len(r.storage.productOrder))
	for _, id := range r.storage.productOrder {
		products = append(products, *r.storage.products[id])
	}
	return products, nil
}

func (r *productRepository) Get(ctx context.Context, id int64) (*model.Product, error) {
	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()

	product, ok := r.storage.products[id]
	if !ok {
		return nil, domainErrors.ErrProductNotFound
	}
	copied := *product
	return &copied, nil
}

func (r *productRepository) DecrementStock(ctx context.Context, id int64, qty int) (*model.Product, error) {
	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()

	product, ok := r.storage.products[id]
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

func (r *productRepository) RestoreStock(ctx context.Context, id int64, qty int) (*model.Product, error) {
	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()

	product, ok := r.storage.products[id]
	if !ok {
		return nil, domainErrors.ErrProductNotFound
	}
	product.InStock += qty
	copied := *product
	return &copied, nil
}

func (r *productRepository) UpdatePrice(ctx context.Context, id int64, price decimal.Decimal) error {
	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()

	product, ok := r.storage.products[id]
	if !ok {
		return domainErrors.ErrProductNotFound
	}
	product.Price = price
	return nil
}

// --- CartRepository implementation ---

func (r *cartRepository) Get(ctx context.Context, sessionID uuid.UUID) (*model.Cart, error) {
	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()

	cart, ok := r.storage.carts[sessionID]
	if !ok {
		return &model.Cart{}, nil
	}
	copied := model.Cart{Lines: append([]model.CartLine(nil), cart.Lines...)}
	return &copied, nil
}

func (r *cartRepository) SetLine(ctx context.Context, sessionID uuid.UUID, productID int64, qty int) error {
	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()

	if qty <= 0 {
		r.removeLineLocked(sessionID, productID)
		return nil
	}

	cart, ok := r.storage.carts[sessionID]
	if !ok {
		cart = &model.Cart{}
		r.storage.carts[sessionID] = cart
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

func (r *cartRepository) RemoveLine(ctx context.Context, sessionID uuid.UUID, productID int64) error {
	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()

	r.removeLineLocked(sessionID, productID)
	return nil
}

func (r *cartRepository) removeLineLocked(sessionID uuid.UUID, productID int64) {
	cart, ok := r.storage.carts[sessionID]
	if !ok {
		return
	}
	for i := range cart.Lines {
		if cart.Lines[i].ProductID == productID {
			cart.Lines = append(cart.Lines[:i], cart.Lines[i+1:]...)
			return
		}
	}
}

func (r *cartRepository) Clear(ctx context.Context, sessionID uuid.UUID) error {
	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()

	delete(r.storage.carts, sessionID)
	return nil
}

// --- OrderRepository implementation ---

func (r *orderRepository) Create(ctx context.Context, order model.Order) (*model.Order, error) {
	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()

	r.storage.lastOrderID++
	order.ID = r.storage.lastOrderID
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	order.Lines = append([]model.OrderLine(nil), order.Lines...)

	stored := order
	r.storage.orders[order.ID] = &stored
	return &order, nil
}

func (r *orderRepository) Get(ctx context.Context, id int64) (*model.Order, error) {
	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()

	order, ok := r.storage.orders[id]
	if !ok {
		return nil, domainErrors.ErrOrderNotFound
	}
	copied := copyOrder(order)
	return &copied, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, login string) ([]model.Order, error) {
	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()

	var orders []model.Order
	for _, order := range r.storage.orders {
		if order.UserLogin == login {
			orders = append(orders, copyOrder(order))
		}
	}
	sortNewestFirst(orders)
	return orders, nil
}

func (r *orderRepository) ListAll(ctx context.Context) ([]model.Order, error) {
	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()

	orders := make([]model.Order, 0, len(r.storage.orders))
	for _, order := range r.storage.orders {
		orders = append(orders, copyOrder(order))
	}
	sortNewestFirst(orders)
	return orders, nil
}

func (r *orderRepository) Delete(ctx context.Context, id int64) error {
	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()

	if _, ok := r.storage.orders[id]; !ok {
		return domainErrors.ErrOrderNotFound
	}
	delete(r.storage.orders, id)
	return nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus, cancelReason string) error {
	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()

	order, ok := r.storage.orders[id]
	if !ok {
		return domainErrors.ErrOrderNotFound
	}
	order.Status = status
	order.CancelReason = cancelReason
	return nil
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, user model.User) (*model.User, error) {
	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()

	if _, exists := r.storage.users[user.Login]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	for _, existing := range r.storage.users {
		if existing.Email == user.Email {
			return nil, domainErrors.ErrAlreadyExists
		}
	}

	stored := user
	r.storage.users[user.Login] = &stored
	copied := user
	return &copied, nil
}

func (r *userRepository) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()

	user, ok := r.storage.users[login]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func copyOrder(order *model.Order) model.Order {
	copied := *order
	copied.Lines = append([]model.OrderLine(nil), order.Lines...)
	return copied
}

func sortNewestFirst(orders []model.Order) {
	sort.Slice(orders, func(i, j int) bool {
		if orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].ID > orders[j].ID
		}
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}
