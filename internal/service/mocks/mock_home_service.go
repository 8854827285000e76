package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"corpsite/internal/model"
	"corpsite/internal/service"
)

type MockHomeService struct {
	mock.Mock
}

func (m *MockHomeService) Home(ctx context.Context, user *model.User, requestPath string) (*service.HomePage, error) {
	args := m.Called(ctx, user, requestPath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.HomePage), args.Error(1)
}
