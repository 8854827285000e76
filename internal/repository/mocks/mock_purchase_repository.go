package mocks

import (
	"context"
	"time"

	"corpsite/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockPurchaseRepository struct {
	mock.Mock
}

func (m *MockPurchaseRepository) GetOrCreate(ctx context.Context, purchase *model.DocumentPurchase) (*model.DocumentPurchase, bool, error) {
	args := m.Called(ctx, purchase)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*model.DocumentPurchase), args.Bool(1), args.Error(2)
}

func (m *MockPurchaseRepository) FindByID(ctx context.Context, id string) (*model.DocumentPurchase, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DocumentPurchase), args.Error(1)
}

func (m *MockPurchaseRepository) MarkPaid(ctx context.Context, id string, paidAt time.Time) (*model.DocumentPurchase, error) {
	args := m.Called(ctx, id, paidAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DocumentPurchase), args.Error(1)
}

func (m *MockPurchaseRepository) SetStatus(ctx context.Context, id string, status model.PurchaseStatus) (*model.DocumentPurchase, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DocumentPurchase), args.Error(1)
}

func (m *MockPurchaseRepository) HasPaidPurchase(ctx context.Context, userID, documentID string) (bool, error) {
	args := m.Called(ctx, userID, documentID)
	return args.Bool(0), args.Error(1)
}
