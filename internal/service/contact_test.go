package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"corpsite/internal/model"
	repomocks "corpsite/internal/repository/mocks"
)

func TestContactSubmitTrimsFields(t *testing.T) {
	contacts := new(repomocks.MockContactRepository)
	svc := NewContactService(contacts)

	contacts.On("CreateRequest", mock.Anything, mock.MatchedBy(func(r *model.ContactRequest) bool {
		return r.FullName == "Alex" && r.Email == "alex@example.com" && r.ID != ""
	})).Return(&model.ContactRequest{ID: "r1", FullName: "Alex", Email: "alex@example.com"}, nil)

	req, err := svc.Submit(context.Background(), ContactSubmission{
		FullName: "  Alex  ",
		Email:    " alex@example.com ",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Alex", req.FullName)
}

func TestContactSubmitAcceptsEmptyPayload(t *testing.T) {
	contacts := new(repomocks.MockContactRepository)
	svc := NewContactService(contacts)

	contacts.On("CreateRequest", mock.Anything, mock.MatchedBy(func(r *model.ContactRequest) bool {
		return r.FullName == "" && r.Email == "" && r.Phone == "" && r.Message == ""
	})).Return(&model.ContactRequest{ID: "r1"}, nil)

	_, err := svc.Submit(context.Background(), ContactSubmission{})

	assert.NoError(t, err)
	contacts.AssertExpectations(t)
}

func TestContactPageWithoutActiveProfile(t *testing.T) {
	contacts := new(repomocks.MockContactRepository)
	svc := NewContactService(contacts)

	contacts.On("ActiveProfile", mock.Anything).Return(nil, sql.ErrNoRows)

	page, err := svc.Page(context.Background())

	assert.NoError(t, err)
	assert.Nil(t, page.Profile)
	assert.Empty(t, page.Items)
	contacts.AssertNotCalled(t, "ListItems", mock.Anything, mock.Anything)
}

func TestContactPageWithProfile(t *testing.T) {
	contacts := new(repomocks.MockContactRepository)
	svc := NewContactService(contacts)

	profile := &model.ContactProfile{ID: "cp1", Title: "Contacts", IsActive: true}
	contacts.On("ActiveProfile", mock.Anything).Return(profile, nil)
	contacts.On("ListItems", mock.Anything, "cp1").Return([]model.ContactItem{
		{ID: "i1", Kind: model.ContactPhone, Value: "+7 700 000 00 00"},
	}, nil)

	page, err := svc.Page(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "cp1", page.Profile.ID)
	assert.Len(t, page.Items, 1)
}

func TestContactMarkProcessed(t *testing.T) {
	contacts := new(repomocks.MockContactRepository)
	svc := NewContactService(contacts)

	contacts.On("MarkProcessed", mock.Anything, []string{"r1", "r2"}).Return(int64(2), nil)

	n, err := svc.MarkProcessed(context.Background(), []string{"r1", "r2"})

	assert.NoError(t, err)
	assert.Equal(t, int64(2), n)
}
