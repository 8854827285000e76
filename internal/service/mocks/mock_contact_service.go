package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"corpsite/internal/model"
	"corpsite/internal/service"
)

type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) Page(ctx context.Context) (*service.ContactPage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ContactPage), args.Error(1)
}

func (m *MockContactService) Submit(ctx context.Context, in service.ContactSubmission) (*model.ContactRequest, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContactRequest), args.Error(1)
}

func (m *MockContactService) ListRequests(ctx context.Context, limit, offset int) (*service.ContactRequestListing, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ContactRequestListing), args.Error(1)
}

func (m *MockContactService) MarkProcessed(ctx context.Context, requestIDs []string) (int64, error) {
	args := m.Called(ctx, requestIDs)
	return args.Get(0).(int64), args.Error(1)
}
