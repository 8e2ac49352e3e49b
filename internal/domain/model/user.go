package model

// User represents a registered customer of the shop.
type User struct {
	Login    string
	Password string
	Name     string
	Phone    string
	Email    string
	IsAdmin  bool
}
