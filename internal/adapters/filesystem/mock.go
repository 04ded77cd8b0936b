package filesystem

import (
	"context"
	"media-share/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

type MockLister struct {
	mock.Mock
}

func NewMockLister() *MockLister {
	return &MockLister{}
}

func (m *MockLister) List(ctx context.Context, dir string) ([]domain.DirEntry, error) {
	args := m.Called(ctx, dir)
	return args.Get(0).([]domain.DirEntry), args.Error(1)
}
