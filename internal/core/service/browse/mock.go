package browse

import (
	"context"
	"media-share/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockBrowseService is a mock implementation of BrowseService
type MockBrowseService struct {
	mock.Mock
}

// NewMockBrowseService creates a new MockBrowseService
func NewMockBrowseService() *MockBrowseService {
	return &MockBrowseService{}
}

func (m *MockBrowseService) Listing(ctx context.Context, relative string) (*domain.Listing, error) {
	args := m.Called(ctx, relative)
	return args.Get(0).(*domain.Listing), args.Error(1)
}

func (m *MockBrowseService) Watch(ctx context.Context, relative string) (*domain.WatchTarget, error) {
	args := m.Called(ctx, relative)
	return args.Get(0).(*domain.WatchTarget), args.Error(1)
}

func (m *MockBrowseService) Comic(ctx context.Context, relative string) (*domain.Gallery, error) {
	args := m.Called(ctx, relative)
	return args.Get(0).(*domain.Gallery), args.Error(1)
}

func (m *MockBrowseService) Audio(ctx context.Context, relative string) (*domain.Gallery, error) {
	args := m.Called(ctx, relative)
	return args.Get(0).(*domain.Gallery), args.Error(1)
}
