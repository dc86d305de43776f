package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Mock for DescribeService
type mockDescribeService struct{ mock.Mock }

func (m *mockDescribeService) Describe(ctx context.Context, dir string) (string, error) {
	args := m.Called(ctx, dir)
	return args.String(0), args.Error(1)
}

// Mock for ToolVersionService
type mockToolVersionService struct{ mock.Mock }

func (m *mockToolVersionService) ToolVersion(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}
