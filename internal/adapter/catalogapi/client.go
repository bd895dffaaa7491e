package catalogapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/auracraft/storefront/internal/core/domain"
	"github.com/auracraft/storefront/internal/core/port"
)

const maxBodySize = 4 << 20

var _ port.ProductsFetcher = (*Client)(nil)
var _ port.ReviewsFetcher = (*Client)(nil)
var _ port.Authenticator = (*Client)(nil)
var _ port.Registrar = (*Client)(nil)
var _ port.ProductSearcher = (*Client)(nil)

// A Client talks to the remote commerce API. It never retries: the user
// re-triggers the action instead.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

func New(baseURL string, timeout time.Duration) (*Client, error) {
	const op = "catalogapi.New"

	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%s: base url %q must be absolute", op, baseURL)
	}

	return &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = c.baseURL.Path + path
	if query != nil {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// do sends one request and returns the body of a success response. Non
// success statuses become *domain.RemoteError.
func (c *Client) do(
	ctx context.Context, method, path string, query url.Values, payload any,
) ([]byte, error) {
	const op = "Client.do"
	log := slog.With("op", op, "method", method, "path", path)

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to marshal request: %w", op, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(
		ctx, method, c.endpoint(path, query), body,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if s, ok := domain.SessionFrom(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn("request failed", "err", err)
		return nil, fmt.Errorf("%s: %w: %w", op, domain.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read response: %w", op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		remoteErr := &domain.RemoteError{
			Status: resp.StatusCode,
			Detail: errorDetail(data),
		}
		log.Warn("non success status", "status", resp.StatusCode)
		return nil, fmt.Errorf("%s: %w", op, remoteErr)
	}

	log.Debug("request succeeded", "status", resp.StatusCode)
	return data, nil
}
