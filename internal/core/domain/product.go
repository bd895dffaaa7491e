package domain

import (
	"strconv"
	"strings"
)

const statusOutOfStock = "out of stock"

type (
	Product struct {
		ID           int
		Name         string
		Description  string
		CategoryID   int
		CategoryName string
		Status       string
		ImageURL     string
		Variants     []Variant
	}

	Variant struct {
		ID        int
		ProductID int
		Color     string
		Size      int
		Price     float64
		Amount    int
	}
)

// Category returns the value the catalog filter matches against.
//
// Backend revisions disagree on whether products carry a category name or
// only an id, so the name wins and the id is the fallback.
func (p Product) Category() string {
	if name := strings.TrimSpace(p.CategoryName); name != "" {
		return name
	}
	if p.CategoryID != 0 {
		return strconv.Itoa(p.CategoryID)
	}
	return ""
}

// Price is the price of the first listed variant.
func (p Product) Price() float64 {
	if len(p.Variants) == 0 {
		return 0
	}
	return p.Variants[0].Price
}

func (p Product) InStock() bool {
	return !strings.EqualFold(strings.TrimSpace(p.Status), statusOutOfStock)
}

const AllCategoryID = "all"

const allCategoryLabel = "Tất cả sản phẩm"

// A Category is derived from a product list. Its ID is positional and only
// valid within the fetch cycle that produced it.
type Category struct {
	ID    string
	Label string
	Value string
}

func AllCategory() Category {
	return Category{ID: AllCategoryID, Label: allCategoryLabel}
}

func (c Category) IsAll() bool {
	return c.ID == AllCategoryID
}
