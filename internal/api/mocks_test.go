package api

import (
	"context"
	"io"
	"net/http"
	"time"

	"shareit/internal/config"
	"shareit/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
)

type mockBookingService struct {
	mock.Mock
}

func (m *mockBookingService) Create(ctx context.Context, bookerID, itemID int64, start, end time.Time) (*models.Booking, error) {
	args := m.Called(ctx, bookerID, itemID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}
func (m *mockBookingService) Approve(ctx context.Context, ownerID, bookingID int64, approved bool) (*models.Booking, error) {
	args := m.Called(ctx, ownerID, bookingID, approved)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}
func (m *mockBookingService) GetByID(ctx context.Context, userID, bookingID int64) (*models.Booking, error) {
	args := m.Called(ctx, userID, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}
func (m *mockBookingService) GetByBookerID(ctx context.Context, bookerID int64, state string, from, size int) ([]*models.Booking, error) {
	args := m.Called(ctx, bookerID, state, from, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Booking), args.Error(1)
}
func (m *mockBookingService) GetByOwnerID(ctx context.Context, ownerID int64, state string, from, size int) ([]*models.Booking, error) {
	args := m.Called(ctx, ownerID, state, from, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Booking), args.Error(1)
}

type mockItemService struct {
	mock.Mock
}

func (m *mockItemService) Create(ctx context.Context, ownerID int64, item models.Item) (*models.Item, error) {
	args := m.Called(ctx, ownerID, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Item), args.Error(1)
}
func (m *mockItemService) Update(ctx context.Context, ownerID, itemID int64, patch models.ItemPatch) (*models.Item, error) {
	args := m.Called(ctx, ownerID, itemID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Item), args.Error(1)
}
func (m *mockItemService) GetItem(ctx context.Context, itemID, viewerID int64) (*models.ItemDetails, error) {
	args := m.Called(ctx, itemID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ItemDetails), args.Error(1)
}
func (m *mockItemService) GetOwnItems(ctx context.Context, ownerID int64, from, size int) ([]*models.ItemDetails, error) {
	args := m.Called(ctx, ownerID, from, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ItemDetails), args.Error(1)
}
func (m *mockItemService) Search(ctx context.Context, text string, from, size int) ([]*models.Item, error) {
	args := m.Called(ctx, text, from, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Item), args.Error(1)
}
func (m *mockItemService) CreateComment(ctx context.Context, authorID, itemID int64, text string) (*models.Comment, error) {
	args := m.Called(ctx, authorID, itemID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) Create(ctx context.Context, user models.User) (*models.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
func (m *mockUserService) Get(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
func (m *mockUserService) Update(ctx context.Context, id int64, patch models.UserPatch) (*models.User, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
func (m *mockUserService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *mockUserService) GetAll(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

type mockRequestService struct {
	mock.Mock
}

func (m *mockRequestService) Create(ctx context.Context, requesterID int64, description string) (*models.ItemRequestDetails, error) {
	args := m.Called(ctx, requesterID, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ItemRequestDetails), args.Error(1)
}
func (m *mockRequestService) GetOwn(ctx context.Context, requesterID int64) ([]*models.ItemRequestDetails, error) {
	args := m.Called(ctx, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ItemRequestDetails), args.Error(1)
}
func (m *mockRequestService) GetAll(ctx context.Context, userID int64, from, size int) ([]*models.ItemRequestDetails, error) {
	args := m.Called(ctx, userID, from, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ItemRequestDetails), args.Error(1)
}
func (m *mockRequestService) GetByID(ctx context.Context, userID, requestID int64) (*models.ItemRequestDetails, error) {
	args := m.Called(ctx, userID, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ItemRequestDetails), args.Error(1)
}

type testServer struct {
	*Server
	bookings *mockBookingService
	items    *mockItemService
	users    *mockUserService
	requests *mockRequestService
}

func newTestServer() *testServer {
	logger := zerolog.New(io.Discard)
	ts := &testServer{
		bookings: new(mockBookingService),
		items:    new(mockItemService),
		users:    new(mockUserService),
		requests: new(mockRequestService),
	}
	ts.Server = NewServer(config.ServerConfig{Port: 0}, ts.bookings, ts.items, ts.users, ts.requests, nil, nil, &logger)
	return ts
}

func withUser(r *http.Request, id string) *http.Request {
	r.Header.Set(models.HeaderUserID, id)
	return r
}
