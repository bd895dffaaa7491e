package catalogapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/auracraft/storefront/internal/core/domain"
)

func (c *Client) SearchProducts(
	ctx context.Context, q string, k int,
) ([]domain.SearchResult, error) {
	const op = "Client.SearchProducts"

	query := url.Values{"q": {q}, "k": {strconv.Itoa(k)}}
	data, err := c.do(ctx, http.MethodGet, "/search/", query, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rs, err := decodeCollection[searchResult](data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]domain.SearchResult, len(rs))
	for i, r := range rs {
		out[i] = domain.SearchResult{
			ProductID:    productID(r.ProductID),
			Name:         r.Name,
			Description:  deref(r.Description),
			CategoryName: deref(r.CategoryName),
			Score:        r.Score,
		}
	}
	return out, nil
}

// productID accepts the id as a JSON number or a numeric string; the search
// index stores it as text.
func productID(v any) int {
	switch id := v.(type) {
	case float64:
		return int(id)
	case string:
		n, err := strconv.Atoi(id)
		if err == nil {
			return n
		}
	}
	return 0
}
