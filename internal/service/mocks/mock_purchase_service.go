package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"corpsite/internal/model"
)

type MockPurchaseService struct {
	mock.Mock
}

func (m *MockPurchaseService) Initiate(ctx context.Context, user *model.User, documentSlug string) (*model.DocumentPurchase, bool, error) {
	args := m.Called(ctx, user, documentSlug)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*model.DocumentPurchase), args.Bool(1), args.Error(2)
}

func (m *MockPurchaseService) Get(ctx context.Context, id string) (*model.DocumentPurchase, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DocumentPurchase), args.Error(1)
}

func (m *MockPurchaseService) MarkPaid(ctx context.Context, id string) (*model.DocumentPurchase, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DocumentPurchase), args.Error(1)
}

func (m *MockPurchaseService) SetStatus(ctx context.Context, id string, status model.PurchaseStatus) (*model.DocumentPurchase, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DocumentPurchase), args.Error(1)
}
