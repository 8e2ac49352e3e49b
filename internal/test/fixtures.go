package test

import (
	"github.com/shopspring/decimal"

	"github.com/petaline/storefront/internal/domain/model"
)

// Rose, Tulip and Wrap are small catalog fixtures shared across tests.
func Rose() model.Product {
	return model.Product{
		ID: 1, Name: "Rose", Price: decimal.NewFromInt(150),
		Category: model.CategoryFlowers, Country: "Netherlands", Color: "Red",
		InStock: 10, IsNew: true,
	}
}

func Tulip() model.Product {
	return model.Product{
		ID: 2, Name: "Tulip", Price: decimal.NewFromInt(80),
		Category: model.CategoryFlowers, Country: "Netherlands", Color: "Yellow",
		InStock: 5,
	}
}

func Wrap() model.Product {
	return model.Product{
		ID: 3, Name: "Kraft wrap", Price: decimal.NewFromInt(100),
		Category: model.CategoryPackaging, Country: "Russia", Color: "Brown",
		InStock: 20,
	}
}

// Customer returns a registered non-admin user fixture.
func Customer() model.User {
	return model.User{
		Login: "daisy", Password: "secret1", Name: "Daisy Flowers",
		Phone: "+7(999)-111-22-33", Email: "daisy@example.com",
	}
}

// Admin returns an administrator fixture.
func Admin() model.User {
	return model.User{
		Login: "admin", Password: "admin", Name: "Admin",
		Phone: "+7(000)-000-00-00", Email: "admin@example.com", IsAdmin: true,
	}
}

// Delivery returns a valid checkout form fixture.
func Delivery() model.DeliveryDetails {
	return model.DeliveryDetails{
		RecipientName: "Daisy Flowers",
		Phone:         "+7(999)-111-22-33",
		Address:       "1 Flower St",
		DeliveryDate:  "2026-09-01",
		DeliveryTime:  "12:00",
		Payment:       model.PaymentCard,
	}
}
