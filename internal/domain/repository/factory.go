package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Products() ProductRepository
	Carts() CartRepository
	Orders() OrderRepository
	Users() UserRepository
}
