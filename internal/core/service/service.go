package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/auracraft/storefront/internal/core/domain"
	"github.com/auracraft/storefront/internal/core/port"
	"github.com/google/uuid"
)

const (
	searchLimit = 10
)

var _ port.CatalogLoader = (*Service)(nil)
var _ port.ReviewsLoader = (*Service)(nil)
var _ port.Searcher = (*Service)(nil)
var _ port.EventRecorder = (*Service)(nil)
var _ port.AuthForms = (*Service)(nil)

type Service struct {
	productsFetcher port.ProductsFetcher
	reviewsFetcher  port.ReviewsFetcher
	authenticator   port.Authenticator
	registrar       port.Registrar
	searcher        port.ProductSearcher
	eventsProducer  port.ClientEventsProducer
}

func New(
	productsFetcher port.ProductsFetcher,
	reviewsFetcher port.ReviewsFetcher,
	authenticator port.Authenticator,
	registrar port.Registrar,
	searcher port.ProductSearcher,
	eventsProducer port.ClientEventsProducer,
) Service {
	return Service{
		productsFetcher,
		reviewsFetcher,
		authenticator,
		registrar,
		searcher,
		eventsProducer,
	}
}

func (s Service) Close() {
	s.eventsProducer.Close()
}

func (s Service) NewCatalogView() port.CatalogView {
	return NewCatalogView(s.productsFetcher)
}

func (s Service) NewAuthForm(
	mode domain.AuthMode, data domain.AuthFormData,
) port.AuthForm {
	return NewAuthForm(s.authenticator, s.registrar, mode, data)
}

// LoadReviews never fails: any fetch problem degrades to no reviews.
func (s Service) LoadReviews(ctx context.Context) []domain.Review {
	const op = "Service.LoadReviews"
	log := slog.With("op", op)

	rs, err := s.reviewsFetcher.FetchReviews(ctx)
	if err != nil {
		log.Warn("failed to fetch reviews, showing none", "err", err)
		return nil
	}
	return rs
}

func (s Service) Search(
	ctx context.Context, query string,
) ([]domain.SearchResult, error) {
	const op = "Service.Search"

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rs, err := s.searcher.SearchProducts(ctx, query, searchLimit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return rs, nil
}

// Record produces a client event. It is best effort: failures are logged
// and never reach the page.
func (s Service) Record(ctx context.Context, evt domain.ClientEvent) {
	const op = "Service.Record"
	log := slog.With("op", op)

	if evt.ID == "" {
		evt.ID = uuid.NewString()
	}
	if evt.OccurredAt.IsZero() {
		evt.OccurredAt = time.Now().UTC()
	}

	if err := s.eventsProducer.ProduceEvent(context.WithoutCancel(ctx), evt); err != nil {
		log.Warn("failed to produce client event",
			"kind", evt.Kind, "err", err)
	}
}
