package stream

import (
	"context"
	"io"
	"media-share/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockStreamService is a mock implementation of StreamService
type MockStreamService struct {
	mock.Mock
}

// NewMockStreamService creates a new MockStreamService
func NewMockStreamService() *MockStreamService {
	return &MockStreamService{}
}

func (m *MockStreamService) Locate(ctx context.Context, relative string) (*domain.ResolvedFile, error) {
	args := m.Called(ctx, relative)
	return args.Get(0).(*domain.ResolvedFile), args.Error(1)
}

func (m *MockStreamService) Plan(file domain.ResolvedFile, req domain.StreamRequest) domain.StreamPlan {
	args := m.Called(file, req)
	return args.Get(0).(domain.StreamPlan)
}

func (m *MockStreamService) Open(ctx context.Context, file domain.ResolvedFile, plan domain.StreamPlan) (io.ReadCloser, error) {
	args := m.Called(ctx, file, plan)
	var body io.ReadCloser
	if v := args.Get(0); v != nil {
		body = v.(io.ReadCloser)
	}
	return body, args.Error(1)
}
