package service

import (
	"github.com/auracraft/storefront/internal/core/domain"
	"github.com/auracraft/storefront/pkg/money"
)

const (
	DescriptionLimit = 60
	Ellipsis         = "..."
	PlaceholderImage = "/static/img/placeholder.svg"
)

// TruncateDescription caps s at limit characters and marks the cut.
func TruncateDescription(s string, limit int) string {
	rs := []rune(s)
	if len(rs) <= limit {
		return s
	}
	return string(rs[:limit]) + Ellipsis
}

func FormatPrice(amount float64) string {
	return money.FormatVND(amount)
}

// ProductCard is everything a catalog grid cell shows.
type ProductCard struct {
	ID          int
	Name        string
	Description string
	Price       string
	ImageURL    string
	Fallback    string
	InStock     bool
}

func NewProductCard(p domain.Product) ProductCard {
	img := p.ImageURL
	if img == "" {
		img = PlaceholderImage
	}
	return ProductCard{
		ID:          p.ID,
		Name:        p.Name,
		Description: TruncateDescription(p.Description, DescriptionLimit),
		Price:       FormatPrice(p.Price()),
		ImageURL:    img,
		Fallback:    PlaceholderImage,
		InStock:     p.InStock(),
	}
}

func NewProductCards(ps []domain.Product) []ProductCard {
	cards := make([]ProductCard, len(ps))
	for i := range ps {
		cards[i] = NewProductCard(ps[i])
	}
	return cards
}
