package service_test

import (
	"context"
	"testing"

	"github.com/auracraft/storefront/internal/core/domain"
	"github.com/stretchr/testify/mock"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type MockProductsFetcher struct {
	mock.Mock
}

func (m *MockProductsFetcher) FetchProducts(
	ctx context.Context,
) ([]domain.Product, error) {
	args := m.Called(ctx)
	if ps := args.Get(0); ps != nil {
		return ps.([]domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductsFetcher) FetchProductsByCategory(
	ctx context.Context, categoryID int,
) ([]domain.Product, error) {
	args := m.Called(ctx, categoryID)
	if ps := args.Get(0); ps != nil {
		return ps.([]domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockReviewsFetcher struct {
	mock.Mock
}

func (m *MockReviewsFetcher) FetchReviews(
	ctx context.Context,
) ([]domain.Review, error) {
	args := m.Called(ctx)
	if rs := args.Get(0); rs != nil {
		return rs.([]domain.Review), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockAuthenticator struct {
	mock.Mock
}

func (m *MockAuthenticator) Login(
	ctx context.Context, c domain.Credentials,
) (domain.Session, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(domain.Session), args.Error(1)
}

type MockRegistrar struct {
	mock.Mock
}

func (m *MockRegistrar) Signup(ctx context.Context, r domain.Registration) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

type MockProductSearcher struct {
	mock.Mock
}

func (m *MockProductSearcher) SearchProducts(
	ctx context.Context, query string, k int,
) ([]domain.SearchResult, error) {
	args := m.Called(ctx, query, k)
	if rs := args.Get(0); rs != nil {
		return rs.([]domain.SearchResult), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockEventsProducer struct {
	mock.Mock
}

func (m *MockEventsProducer) ProduceEvent(
	ctx context.Context, evt domain.ClientEvent,
) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

func (m *MockEventsProducer) Close() {
	m.Called()
}
