package catalogapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/auracraft/storefront/internal/core/domain"
)

func (c *Client) FetchReviews(ctx context.Context) ([]domain.Review, error) {
	const op = "Client.FetchReviews"

	data, err := c.do(ctx, http.MethodGet, "/reviews", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rs, err := decodeCollection[review](data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]domain.Review, len(rs))
	for i, r := range rs {
		out[i] = domain.Review{
			ID:           r.ID,
			ProductName:  deref(r.ProductName),
			CustomerName: deref(r.CustomerName),
			Content:      deref(r.Content),
			Rating:       r.Rating,
			Date:         deref(r.Date),
		}
	}
	return out, nil
}
