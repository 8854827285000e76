package mocks

import (
	"context"

	"corpsite/internal/model"
	"corpsite/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) ActiveProfile(ctx context.Context) (*model.ContactProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContactProfile), args.Error(1)
}

func (m *MockContactRepository) ListItems(ctx context.Context, profileID string) ([]model.ContactItem, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ContactItem), args.Error(1)
}

func (m *MockContactRepository) CreateRequest(ctx context.Context, req *model.ContactRequest) (*model.ContactRequest, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContactRequest), args.Error(1)
}

func (m *MockContactRepository) ListRequests(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.ContactRequest], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.ContactRequest]), args.Error(1)
}

func (m *MockContactRepository) MarkProcessed(ctx context.Context, ids []string) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}
