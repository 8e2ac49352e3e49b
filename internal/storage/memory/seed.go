package memory

import (
	"github.com/shopspring/decimal"

	"github.com/petaline/storefront/internal/domain/model"
)

// DefaultCatalog returns the stock catalog the shop opens with.
func DefaultCatalog() []model.Product {
	return []model.Product{
		{ID: 1, Name: `Rose "Red Naomi"`, Description: "Classic red rose with a large bud.", Price: decimal.NewFromInt(150), Category: model.CategoryFlowers, Country: "Netherlands", Color: "Red", InStock: 50, IsNew: true},
		{ID: 2, Name: `Bouquet "Tenderness"`, Description: "Delicate bouquet of pink roses and eustoma.", Price: decimal.NewFromInt(2500), Category: model.CategoryBouquets, Country: "Russia", Color: "Pink", InStock: 15, IsNew: true},
		{ID: 3, Name: `Tulip "Strong Gold"`, Description: "Bright yellow tulip.", Price: decimal.NewFromInt(80), Category: model.CategoryFlowers, Country: "Netherlands", Color: "Yellow", InStock: 100},
		{ID: 4, Name: "Kraft wrap", Description: "Eco-friendly kraft paper.", Price: decimal.NewFromInt(100), Category: model.CategoryPackaging, Country: "Russia", Color: "Brown", InStock: 200},
		{ID: 5, Name: `Bouquet "Spring Breeze"`, Description: "Vivid mix of spring flowers.", Price: decimal.NewFromInt(3200), Category: model.CategoryBouquets, Country: "Russia", Color: "Mixed", InStock: 10, IsNew: true},
		{ID: 6, Name: "Satin ribbon", Description: "Satin ribbon for decoration.", Price: decimal.NewFromInt(50), Category: model.CategoryPackaging, Country: "China", Color: "Violet", InStock: 150},
		{ID: 7, Name: `Chrysanthemum "Baccardi"`, Description: "White spray chrysanthemum.", Price: decimal.NewFromInt(120), Category: model.CategoryFlowers, Country: "Netherlands", Color: "White", InStock: 80},
	}
}
