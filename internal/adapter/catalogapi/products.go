package catalogapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/auracraft/storefront/internal/core/domain"
)

const productsPageLimit = "100"

func (c *Client) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	const op = "Client.FetchProducts"

	query := url.Values{
		"include_variants": {"true"},
		"limit":            {productsPageLimit},
	}
	return c.fetchProducts(ctx, op, "/products/", query)
}

func (c *Client) FetchProductsByCategory(
	ctx context.Context, categoryID int,
) ([]domain.Product, error) {
	const op = "Client.FetchProductsByCategory"

	path := "/products/category/" + strconv.Itoa(categoryID)
	query := url.Values{"include_variants": {"true"}}
	return c.fetchProducts(ctx, op, path, query)
}

func (c *Client) fetchProducts(
	ctx context.Context, op, path string, query url.Values,
) ([]domain.Product, error) {
	data, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ps, err := decodeCollection[product](data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return toDomainProducts(ps), nil
}

func toDomainProducts(ps []product) []domain.Product {
	out := make([]domain.Product, len(ps))
	for i, p := range ps {
		img := p.ImageURL
		if img == "" {
			img = p.Image
		}
		out[i] = domain.Product{
			ID:           p.ID,
			Name:         p.Name,
			Description:  deref(p.Description),
			CategoryID:   deref(p.CategoryID),
			CategoryName: deref(p.CategoryName),
			Status:       p.Status,
			ImageURL:     img,
			Variants:     toDomainVariants(p.Variants),
		}
	}
	return out
}

func toDomainVariants(vs []variant) []domain.Variant {
	if len(vs) == 0 {
		return nil
	}
	out := make([]domain.Variant, len(vs))
	for i, v := range vs {
		out[i] = domain.Variant{
			ID:        v.ID,
			ProductID: v.ProductID,
			Color:     v.Color,
			Size:      deref(v.Size),
			Price:     v.Price,
			Amount:    v.Amount,
		}
	}
	return out
}
