package port

import (
	"context"

	"github.com/auracraft/storefront/internal/core/domain"
)

type closer interface {
	Close()
}

// Outbound: the remote commerce API.

type ProductsFetcher interface {
	FetchProducts(context.Context) ([]domain.Product, error)
	FetchProductsByCategory(ctx context.Context, categoryID int) ([]domain.Product, error)
}

type ReviewsFetcher interface {
	FetchReviews(context.Context) ([]domain.Review, error)
}

type Authenticator interface {
	Login(context.Context, domain.Credentials) (domain.Session, error)
}

type Registrar interface {
	Signup(context.Context, domain.Registration) error
}

type ProductSearcher interface {
	SearchProducts(ctx context.Context, query string, k int) ([]domain.SearchResult, error)
}

// Outbound: analytics.

type ClientEventsProducer interface {
	ProduceEvent(context.Context, domain.ClientEvent) error
	closer
}

// Inbound: what page handlers need from the core.

type CatalogLoader interface {
	NewCatalogView() CatalogView
}

type CatalogView interface {
	Load(context.Context) domain.FetchState[[]domain.Product]
	Select(categoryID string) domain.Category
	SelectRemote(ctx context.Context, categoryID int) (domain.FetchState[[]domain.Product], error)
	Active() domain.Category
	Categories() []domain.Category
	Products() []domain.Product
	State() domain.FetchState[[]domain.Product]
}

type ReviewsLoader interface {
	LoadReviews(context.Context) []domain.Review
}

type Searcher interface {
	Search(ctx context.Context, query string) ([]domain.SearchResult, error)
}

type EventRecorder interface {
	Record(context.Context, domain.ClientEvent)
}

type AuthForms interface {
	NewAuthForm(domain.AuthMode, domain.AuthFormData) AuthForm
}

type AuthForm interface {
	Mode() domain.AuthMode
	Data() domain.AuthFormData
	Toggle()
	SetMode(domain.AuthMode)
	Submitting() bool
	Submit(context.Context) (domain.AuthOutcome, error)
}
