package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/auracraft/storefront/internal/core/domain"
	"github.com/auracraft/storefront/internal/core/port"
)

// Categories derives the selectable categories of ps: the "all" sentinel
// first, then one entry per distinct category in first-seen order.
func Categories(ps []domain.Product) []domain.Category {
	cs := []domain.Category{domain.AllCategory()}
	seen := make(map[string]struct{}, len(ps))
	for _, p := range ps {
		v := p.Category()
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		cs = append(cs, domain.Category{
			ID:    strconv.Itoa(len(cs)),
			Label: v,
			Value: v,
		})
	}
	return cs
}

// FilterProducts returns the products of category value v. The empty value
// and the "all" sentinel match everything.
func FilterProducts(ps []domain.Product, v string) []domain.Product {
	if v == "" || v == domain.AllCategoryID {
		return ps
	}
	out := make([]domain.Product, 0, len(ps))
	for _, p := range ps {
		if p.Category() == v {
			out = append(out, p)
		}
	}
	return out
}

// ResolveCategory maps a selection to a category. Values win over derived
// ids: with id-only products a value like "1" is not the category at
// position 1. Anything unmatched is taken as a literal category value so that
// links naming a category stay valid across fetch cycles.
func ResolveCategory(cs []domain.Category, sel string) domain.Category {
	sel = strings.TrimSpace(sel)
	if sel == "" || sel == domain.AllCategoryID {
		return domain.AllCategory()
	}
	for _, c := range cs {
		if c.Value == sel {
			return c
		}
	}
	for _, c := range cs {
		if c.ID == sel {
			return c
		}
	}
	return domain.Category{ID: sel, Label: sel, Value: sel}
}

var _ port.CatalogView = (*CatalogView)(nil)

// A CatalogView is the product list of one catalog page.
type CatalogView struct {
	fetcher port.ProductsFetcher
	all     Loader[[]domain.Product]
	remote  Loader[[]domain.Product]

	mu         sync.Mutex
	categories []domain.Category
	active     domain.Category
	remoteMode bool
}

func NewCatalogView(fetcher port.ProductsFetcher) *CatalogView {
	return &CatalogView{
		fetcher:    fetcher,
		categories: []domain.Category{domain.AllCategory()},
		active:     domain.AllCategory(),
	}
}

// Load fetches the whole catalog once and selects "all".
func (v *CatalogView) Load(ctx context.Context) domain.FetchState[[]domain.Product] {
	const op = "CatalogView.Load"
	log := slog.With("op", op)

	state, applied := v.all.Run(ctx, v.fetcher.FetchProducts)
	if !applied {
		return state
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	v.remoteMode = false
	v.active = domain.AllCategory()
	if state.Status != domain.FetchReady {
		v.categories = []domain.Category{domain.AllCategory()}
		log.Error("failed to load products", "err", state.Err)
		return state
	}
	v.categories = Categories(state.Data)
	log.Debug("products loaded",
		"nProducts", len(state.Data), "nCategories", len(v.categories))
	return state
}

// Select switches the active category. Filtering happens over the already
// fetched products.
func (v *CatalogView) Select(sel string) domain.Category {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.remoteMode = false
	v.active = ResolveCategory(v.categories, sel)
	return v.active
}

// SelectRemote asks the backend for the products of one category id.
// Concurrent calls resolve to the most recently issued one.
func (v *CatalogView) SelectRemote(
	ctx context.Context, categoryID int,
) (domain.FetchState[[]domain.Product], error) {
	const op = "CatalogView.SelectRemote"

	v.mu.Lock()
	v.remoteMode = true
	v.active = domain.Category{
		ID:    strconv.Itoa(categoryID),
		Label: strconv.Itoa(categoryID),
		Value: strconv.Itoa(categoryID),
	}
	v.mu.Unlock()

	state, _ := v.remote.Run(ctx, func(ctx context.Context) ([]domain.Product, error) {
		return v.fetcher.FetchProductsByCategory(ctx, categoryID)
	})
	if state.Status == domain.FetchFailed {
		return state, fmt.Errorf("%s: %w", op, state.Err)
	}
	return state, nil
}

func (v *CatalogView) Categories() []domain.Category {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.categories
}

func (v *CatalogView) Active() domain.Category {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.active
}

// Products is the current filtered view.
func (v *CatalogView) Products() []domain.Product {
	v.mu.Lock()
	remoteMode, active := v.remoteMode, v.active
	v.mu.Unlock()

	if remoteMode {
		s := v.remote.State()
		if s.Status != domain.FetchReady {
			return nil
		}
		return s.Data
	}

	s := v.all.State()
	if s.Status != domain.FetchReady {
		return nil
	}
	return FilterProducts(s.Data, active.Value)
}

func (v *CatalogView) State() domain.FetchState[[]domain.Product] {
	v.mu.Lock()
	remoteMode := v.remoteMode
	v.mu.Unlock()

	if remoteMode {
		return v.remote.State()
	}
	return v.all.State()
}
