package service

import (
	"context"
	"fmt"
	"time"

	"shareit/internal/domain"
	"shareit/internal/events"
	"shareit/internal/models"

	"github.com/rs/zerolog"
)

// BookingService реализует жизненный цикл бронирования:
// WAITING -> APPROVED | REJECTED, оба конечные для approve(true),
// но REJECTED остаётся переутверждаемым (блокируется только повторное
// изменение после APPROVED).
type BookingService struct {
	bookings domain.BookingRepository
	users    domain.UserRepository
	items    domain.ItemRepository
	eventBus domain.EventPublisher
	logger   *zerolog.Logger
}

func NewBookingService(
	bookings domain.BookingRepository,
	users domain.UserRepository,
	items domain.ItemRepository,
	eventBus domain.EventPublisher,
	logger *zerolog.Logger,
) *BookingService {
	return &BookingService{
		bookings: bookings,
		users:    users,
		items:    items,
		eventBus: eventBus,
		logger:   logger,
	}
}

func (s *BookingService) Create(ctx context.Context, bookerID, itemID int64, start, end time.Time) (*models.Booking, error) {
	if _, err := s.users.GetUser(ctx, bookerID); err != nil {
		return nil, err
	}

	item, err := s.items.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if item.OwnerID == bookerID {
		s.logger.Error().Int64("booker_id", bookerID).Int64("item_id", itemID).Msg("user can't book own item")
		return nil, fmt.Errorf("%w: user can't book own item", domain.ErrNotFound)
	}

	if !item.Available {
		return nil, fmt.Errorf("%w: the item is not available", domain.ErrBadRequest)
	}

	booking := &models.Booking{
		Start:    start,
		End:      end,
		Status:   models.StatusWaiting,
		ItemID:   item.ID,
		ItemName: item.Name,
		BookerID: bookerID,
		OwnerID:  item.OwnerID,
	}
	if err := s.bookings.CreateBooking(ctx, booking); err != nil {
		return nil, err
	}

	s.publishEvent(events.EventBookingCreated, booking)
	return booking, nil
}

func (s *BookingService) Approve(ctx context.Context, ownerID, bookingID int64, approved bool) (*models.Booking, error) {
	booking, err := s.bookings.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.Status == models.StatusApproved {
		s.logger.Error().Int64("booking_id", bookingID).Msg("booking status can't change after approval")
		return nil, fmt.Errorf("%w: booking status can't change after approval", domain.ErrBadRequest)
	}

	if booking.OwnerID != ownerID {
		s.logger.Error().Int64("owner_id", ownerID).Int64("booking_id", bookingID).Msg("approve by non-owner")
		return nil, fmt.Errorf("%w: item has not been added by user with id %d", domain.ErrNotFound, ownerID)
	}

	status := models.StatusRejected
	eventType := events.EventBookingRejected
	if approved {
		status = models.StatusApproved
		eventType = events.EventBookingApproved
	}

	if err := s.bookings.UpdateBookingStatus(ctx, booking.ID, status); err != nil {
		return nil, err
	}
	booking.Status = status

	s.publishEvent(eventType, booking)
	return booking, nil
}

func (s *BookingService) GetByID(ctx context.Context, userID, bookingID int64) (*models.Booking, error) {
	booking, err := s.bookings.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.BookerID != userID && booking.OwnerID != userID {
		s.logger.Error().Int64("user_id", userID).Int64("booking_id", bookingID).Msg("booking view by third party")
		return nil, fmt.Errorf("%w: only the item owner or the booker can view the booking", domain.ErrNotFound)
	}

	return booking, nil
}

func (s *BookingService) GetByBookerID(ctx context.Context, bookerID int64, state string, from, size int) ([]*models.Booking, error) {
	filter, err := s.stateFilter(state, from, size)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookings.GetBookerBookings(ctx, bookerID, filter)
	if err != nil {
		return nil, err
	}

	// ALL без результатов — ошибка, остальные состояния отдают пустой список
	if state == models.StateAll && len(bookings) == 0 {
		return nil, fmt.Errorf("%w: no bookings for booker with id %d", domain.ErrNotFound, bookerID)
	}

	return nonNil(bookings), nil
}

func (s *BookingService) GetByOwnerID(ctx context.Context, ownerID int64, state string, from, size int) ([]*models.Booking, error) {
	filter, err := s.stateFilter(state, from, size)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookings.GetOwnerBookings(ctx, ownerID, filter)
	if err != nil {
		return nil, err
	}

	if state == models.StateAll && len(bookings) == 0 {
		return nil, fmt.Errorf("%w: no bookings for owner with id %d", domain.ErrNotFound, ownerID)
	}

	return nonNil(bookings), nil
}

func (s *BookingService) stateFilter(state string, from, size int) (models.BookingFilter, error) {
	filter, err := models.FilterForState(state, time.Now())
	if err != nil {
		return models.BookingFilter{}, fmt.Errorf("%w: %s", domain.ErrBadRequest, err)
	}
	filter.Limit = size
	filter.Offset = models.PageOffset(from, size)
	return filter, nil
}

func (s *BookingService) publishEvent(eventType string, booking *models.Booking) {
	if s.eventBus == nil {
		return
	}

	payload := events.BookingEventPayload{
		BookingID: booking.ID,
		ItemID:    booking.ItemID,
		ItemName:  booking.ItemName,
		BookerID:  booking.BookerID,
		Status:    booking.Status,
		Start:     booking.Start,
		End:       booking.End,
	}

	if err := s.eventBus.PublishJSON(eventType, payload); err != nil {
		s.logger.Error().Err(err).Str("event_type", eventType).Int64("booking_id", booking.ID).Msg("publish event error")
	}
}

func nonNil(bookings []*models.Booking) []*models.Booking {
	if bookings == nil {
		return []*models.Booking{}
	}
	return bookings
}
