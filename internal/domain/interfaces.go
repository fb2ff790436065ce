package domain

import (
	"context"
	"time"

	"shareit/internal/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, id int64) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, id int64) error
	GetAllUsers(ctx context.Context) ([]*models.User, error)
}

type ItemRepository interface {
	CreateItem(ctx context.Context, item *models.Item) error
	GetItem(ctx context.Context, id int64) (*models.Item, error)
	GetItemByOwner(ctx context.Context, itemID, ownerID int64) (*models.Item, error)
	UpdateItem(ctx context.Context, item *models.Item) error
	GetItemsByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]*models.Item, error)
	SearchItems(ctx context.Context, text string, limit, offset int) ([]*models.Item, error)
	GetItemsByRequest(ctx context.Context, requestID int64) ([]*models.Item, error)
}

type RequestRepository interface {
	CreateRequest(ctx context.Context, request *models.ItemRequest) error
	GetRequest(ctx context.Context, id int64) (*models.ItemRequest, error)
	GetRequestsByRequester(ctx context.Context, requesterID int64) ([]*models.ItemRequest, error)
	GetOtherRequests(ctx context.Context, userID int64, limit, offset int) ([]*models.ItemRequest, error)
}

type BookingRepository interface {
	CreateBooking(ctx context.Context, booking *models.Booking) error
	GetBooking(ctx context.Context, id int64) (*models.Booking, error)
	UpdateBookingStatus(ctx context.Context, id int64, status string) error
	GetBookerBookings(ctx context.Context, bookerID int64, filter models.BookingFilter) ([]*models.Booking, error)
	GetOwnerBookings(ctx context.Context, ownerID int64, filter models.BookingFilter) ([]*models.Booking, error)
	GetLastBooking(ctx context.Context, itemID, ownerID int64, now time.Time) (*models.Booking, error)
	GetNextBooking(ctx context.Context, itemID, ownerID int64, now time.Time) (*models.Booking, error)
	FindPastBookingByBooker(ctx context.Context, bookerID int64, now time.Time) (*models.Booking, error)
	GetAllBookings(ctx context.Context) ([]*models.Booking, error)
}

type CommentRepository interface {
	CreateComment(ctx context.Context, comment *models.Comment) error
	GetCommentsByItem(ctx context.Context, itemID int64) ([]models.Comment, error)
}

type EventPublisher interface {
	PublishJSON(eventType string, payload interface{}) error
}

// RateLimiter считает запросы пользователя в скользящем окне шлюза.
type RateLimiter interface {
	CheckRateLimit(ctx context.Context, userID int64, limit int, window time.Duration) (bool, error)
}

type BookingService interface {
	Create(ctx context.Context, bookerID, itemID int64, start, end time.Time) (*models.Booking, error)
	Approve(ctx context.Context, ownerID, bookingID int64, approved bool) (*models.Booking, error)
	GetByID(ctx context.Context, userID, bookingID int64) (*models.Booking, error)
	GetByBookerID(ctx context.Context, bookerID int64, state string, from, size int) ([]*models.Booking, error)
	GetByOwnerID(ctx context.Context, ownerID int64, state string, from, size int) ([]*models.Booking, error)
}

type ItemService interface {
	Create(ctx context.Context, ownerID int64, item models.Item) (*models.Item, error)
	Update(ctx context.Context, ownerID, itemID int64, patch models.ItemPatch) (*models.Item, error)
	GetItem(ctx context.Context, itemID, viewerID int64) (*models.ItemDetails, error)
	GetOwnItems(ctx context.Context, ownerID int64, from, size int) ([]*models.ItemDetails, error)
	Search(ctx context.Context, text string, from, size int) ([]*models.Item, error)
	CreateComment(ctx context.Context, authorID, itemID int64, text string) (*models.Comment, error)
}

type UserService interface {
	Create(ctx context.Context, user models.User) (*models.User, error)
	Get(ctx context.Context, id int64) (*models.User, error)
	Update(ctx context.Context, id int64, patch models.UserPatch) (*models.User, error)
	Delete(ctx context.Context, id int64) error
	GetAll(ctx context.Context) ([]*models.User, error)
}

type RequestService interface {
	Create(ctx context.Context, requesterID int64, description string) (*models.ItemRequestDetails, error)
	GetOwn(ctx context.Context, requesterID int64) ([]*models.ItemRequestDetails, error)
	GetAll(ctx context.Context, userID int64, from, size int) ([]*models.ItemRequestDetails, error)
	GetByID(ctx context.Context, userID, requestID int64) (*models.ItemRequestDetails, error)
}
