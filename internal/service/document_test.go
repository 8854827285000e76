package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"corpsite/internal/access"
	"corpsite/internal/model"
	repomocks "corpsite/internal/repository/mocks"
	"corpsite/internal/storage"
	storagemocks "corpsite/internal/storage/mocks"
)

func newTestEvaluator(purchases *repomocks.MockPurchaseRepository) *access.Evaluator {
	return access.NewEvaluator(purchases, "/login")
}

func paidDoc(slug string) *model.Document {
	price := decimal.NewFromInt(5000)
	return &model.Document{
		ID:          "d1",
		Title:       "Annual report",
		Slug:        slug,
		StorageKey:  "documents/d1.pdf",
		Filename:    "report.pdf",
		IsPublished: true,
		IsOpen:      true,
		AccessType:  model.AccessPaid,
		Price:       &price,
		Currency:    "KZT",
	}
}

func freeDoc(slug string) *model.Document {
	return &model.Document{
		ID:          "d2",
		Title:       "Price list",
		Slug:        slug,
		StorageKey:  "documents/d2.pdf",
		Filename:    "prices.pdf",
		IsPublished: true,
		IsOpen:      true,
		AccessType:  model.AccessFree,
	}
}

func TestDocumentUploadRollsBackStorageOnDBError(t *testing.T) {
	store := new(storagemocks.MockFileStore)
	docs := new(repomocks.MockDocumentRepository)
	purchases := new(repomocks.MockPurchaseRepository)
	svc := NewDocumentService(store, docs, newTestEvaluator(purchases))

	store.On("Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(storage.ObjectInfo{Key: "documents/x.pdf", Size: 42}, nil)
	docs.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))
	store.On("Delete", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Upload(context.Background(), UploadInput{
		Title:       "Doc",
		Slug:        "doc",
		AccessType:  model.AccessFree,
		Filename:    "x.pdf",
		ContentType: "application/pdf",
		Size:        42,
		Reader:      strings.NewReader("content"),
	})

	assert.Error(t, err)
	store.AssertCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDocumentUploadRejectsPaidWithoutPrice(t *testing.T) {
	store := new(storagemocks.MockFileStore)
	docs := new(repomocks.MockDocumentRepository)
	purchases := new(repomocks.MockPurchaseRepository)
	svc := NewDocumentService(store, docs, newTestEvaluator(purchases))

	_, err := svc.Upload(context.Background(), UploadInput{
		Title:       "Paid doc",
		Slug:        "paid-doc",
		AccessType:  model.AccessPaid,
		Filename:    "x.pdf",
		ContentType: "application/pdf",
		Size:        1,
		Reader:      strings.NewReader("content"),
	})

	assert.ErrorIs(t, err, model.ErrPaidPriceRequired)
	store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDocumentDownloadFreeAnonymous(t *testing.T) {
	store := new(storagemocks.MockFileStore)
	docs := new(repomocks.MockDocumentRepository)
	purchases := new(repomocks.MockPurchaseRepository)
	svc := NewDocumentService(store, docs, newTestEvaluator(purchases))

	docs.On("FindBySlug", mock.Anything, "prices", true).Return(freeDoc("prices"), nil)
	store.On("PresignGet", mock.Anything, "documents/d2.pdf", presignExpiry).
		Return("https://minio/prices?sig=abc", nil)

	grant, err := svc.Download(context.Background(), "prices", nil)

	assert.NoError(t, err)
	assert.Equal(t, "https://minio/prices?sig=abc", grant.URL)
	assert.Equal(t, "prices.pdf", grant.Filename)
	purchases.AssertNotCalled(t, "HasPaidPurchase", mock.Anything, mock.Anything, mock.Anything)
}

func TestDocumentDownloadPaidAnonymousNeedsLogin(t *testing.T) {
	store := new(storagemocks.MockFileStore)
	docs := new(repomocks.MockDocumentRepository)
	purchases := new(repomocks.MockPurchaseRepository)
	svc := NewDocumentService(store, docs, newTestEvaluator(purchases))

	docs.On("FindBySlug", mock.Anything, "report", true).Return(paidDoc("report"), nil)

	_, err := svc.Download(context.Background(), "report", nil)

	assert.ErrorIs(t, err, ErrLoginRequired)
	store.AssertNotCalled(t, "PresignGet", mock.Anything, mock.Anything, mock.Anything)
}

func TestDocumentDownloadPaidWithoutPurchase(t *testing.T) {
	store := new(storagemocks.MockFileStore)
	docs := new(repomocks.MockDocumentRepository)
	purchases := new(repomocks.MockPurchaseRepository)
	svc := NewDocumentService(store, docs, newTestEvaluator(purchases))

	docs.On("FindBySlug", mock.Anything, "report", true).Return(paidDoc("report"), nil)
	purchases.On("HasPaidPurchase", mock.Anything, "u1", "d1").Return(false, nil)

	_, err := svc.Download(context.Background(), "report", &model.User{ID: "u1"})

	assert.ErrorIs(t, err, ErrPaymentRequired)
}

func TestDocumentDownloadPaidWithPurchase(t *testing.T) {
	store := new(storagemocks.MockFileStore)
	docs := new(repomocks.MockDocumentRepository)
	purchases := new(repomocks.MockPurchaseRepository)
	svc := NewDocumentService(store, docs, newTestEvaluator(purchases))

	docs.On("FindBySlug", mock.Anything, "report", true).Return(paidDoc("report"), nil)
	purchases.On("HasPaidPurchase", mock.Anything, "u1", "d1").Return(true, nil)
	store.On("PresignGet", mock.Anything, "documents/d1.pdf", presignExpiry).
		Return("https://minio/report?sig=abc", nil)

	grant, err := svc.Download(context.Background(), "report", &model.User{ID: "u1"})

	assert.NoError(t, err)
	assert.Equal(t, "https://minio/report?sig=abc", grant.URL)
}

func TestDocumentDownloadStaffBypassesPurchase(t *testing.T) {
	store := new(storagemocks.MockFileStore)
	docs := new(repomocks.MockDocumentRepository)
	purchases := new(repomocks.MockPurchaseRepository)
	svc := NewDocumentService(store, docs, newTestEvaluator(purchases))

	docs.On("FindBySlug", mock.Anything, "report", true).Return(paidDoc("report"), nil)
	store.On("PresignGet", mock.Anything, "documents/d1.pdf", presignExpiry).
		Return("https://minio/report?sig=abc", nil)

	_, err := svc.Download(context.Background(), "report", &model.User{ID: "u1", IsStaff: true})

	assert.NoError(t, err)
	purchases.AssertNotCalled(t, "HasPaidPurchase", mock.Anything, mock.Anything, mock.Anything)
}

func TestDocumentDownloadClosed(t *testing.T) {
	store := new(storagemocks.MockFileStore)
	docs := new(repomocks.MockDocumentRepository)
	purchases := new(repomocks.MockPurchaseRepository)
	svc := NewDocumentService(store, docs, newTestEvaluator(purchases))

	doc := freeDoc("archived")
	doc.IsOpen = false
	docs.On("FindBySlug", mock.Anything, "archived", true).Return(doc, nil)

	_, err := svc.Download(context.Background(), "archived", &model.User{ID: "u1", IsSuperuser: true})

	assert.ErrorIs(t, err, ErrDocumentClosed)
}

func TestDocumentDownloadUnpublishedIsNotFound(t *testing.T) {
	store := new(storagemocks.MockFileStore)
	docs := new(repomocks.MockDocumentRepository)
	purchases := new(repomocks.MockPurchaseRepository)
	svc := NewDocumentService(store, docs, newTestEvaluator(purchases))

	docs.On("FindBySlug", mock.Anything, "draft", true).Return(nil, sql.ErrNoRows)

	_, err := svc.Download(context.Background(), "draft", &model.User{ID: "u1", IsSuperuser: true})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDocumentListUnknownCategory(t *testing.T) {
	store := new(storagemocks.MockFileStore)
	docs := new(repomocks.MockDocumentRepository)
	purchases := new(repomocks.MockPurchaseRepository)
	svc := NewDocumentService(store, docs, newTestEvaluator(purchases))

	docs.On("ListCategories", mock.Anything).Return([]model.DocumentCategory{}, nil)
	docs.On("FindCategoryBySlug", mock.Anything, "ghost").Return(nil, sql.ErrNoRows)

	_, err := svc.List(context.Background(), nil, "ghost", "/documents")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDocumentListProjectsForUser(t *testing.T) {
	store := new(storagemocks.MockFileStore)
	docs := new(repomocks.MockDocumentRepository)
	purchases := new(repomocks.MockPurchaseRepository)
	svc := NewDocumentService(store, docs, newTestEvaluator(purchases))

	docs.On("ListCategories", mock.Anything).Return([]model.DocumentCategory{}, nil)
	docs.On("ListPublished", mock.Anything).Return([]model.Document{*freeDoc("prices"), *paidDoc("report")}, nil)

	listing, err := svc.List(context.Background(), nil, "", "/documents")

	assert.NoError(t, err)
	assert.Len(t, listing.Items, 2)
	assert.True(t, listing.Items[0].CanAccess)
	assert.False(t, listing.Items[1].CanAccess)
	assert.Equal(t, "/login?next=%2Fdocuments", listing.Items[1].LoginURL)
}
