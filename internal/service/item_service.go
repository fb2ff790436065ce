package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"shareit/internal/domain"
	"shareit/internal/events"
	"shareit/internal/models"

	"github.com/rs/zerolog"
)

type ItemService struct {
	items    domain.ItemRepository
	users    domain.UserRepository
	requests domain.RequestRepository
	bookings domain.BookingRepository
	comments domain.CommentRepository
	eventBus domain.EventPublisher
	logger   *zerolog.Logger
}

func NewItemService(
	items domain.ItemRepository,
	users domain.UserRepository,
	requests domain.RequestRepository,
	bookings domain.BookingRepository,
	comments domain.CommentRepository,
	eventBus domain.EventPublisher,
	logger *zerolog.Logger,
) *ItemService {
	return &ItemService{
		items:    items,
		users:    users,
		requests: requests,
		bookings: bookings,
		comments: comments,
		eventBus: eventBus,
		logger:   logger,
	}
}

func (s *ItemService) Create(ctx context.Context, ownerID int64, item models.Item) (*models.Item, error) {
	if _, err := s.users.GetUser(ctx, ownerID); err != nil {
		return nil, err
	}

	// Ссылка на несуществующий запрос молча отбрасывается
	if item.RequestID != nil {
		if _, err := s.requests.GetRequest(ctx, *item.RequestID); err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				return nil, err
			}
			item.RequestID = nil
		}
	}

	item.OwnerID = ownerID
	if err := s.items.CreateItem(ctx, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Update применяет частичное обновление: nil-поле не трогает сохранённое
// значение. Владелец проверяется самим запросом к хранилищу.
func (s *ItemService) Update(ctx context.Context, ownerID, itemID int64, patch models.ItemPatch) (*models.Item, error) {
	item, err := s.items.GetItemByOwner(ctx, itemID, ownerID)
	if err != nil {
		s.logger.Error().Int64("item_id", itemID).Int64("owner_id", ownerID).Msg("item not found or user isn't owner")
		return nil, err
	}

	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.Available != nil {
		item.Available = *patch.Available
	}

	if err := s.items.UpdateItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *ItemService) GetItem(ctx context.Context, itemID, viewerID int64) (*models.ItemDetails, error) {
	item, err := s.items.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	return s.assembleDetails(ctx, item, viewerID)
}

func (s *ItemService) GetOwnItems(ctx context.Context, ownerID int64, from, size int) ([]*models.ItemDetails, error) {
	items, err := s.items.GetItemsByOwner(ctx, ownerID, size, models.PageOffset(from, size))
	if err != nil {
		return nil, err
	}

	details := make([]*models.ItemDetails, 0, len(items))
	for _, item := range items {
		d, err := s.assembleDetails(ctx, item, ownerID)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, nil
}

func (s *ItemService) Search(ctx context.Context, text string, from, size int) ([]*models.Item, error) {
	// Пустой текст — пустой результат без похода в хранилище
	if strings.TrimSpace(text) == "" {
		return []*models.Item{}, nil
	}

	items, err := s.items.SearchItems(ctx, text, size, models.PageOffset(from, size))
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*models.Item{}
	}
	return items, nil
}

// CreateComment гейтится любым завершившимся бронированием автора, без
// привязки к конкретной вещи. Окно намеренно шире, чем "эта вещь".
func (s *ItemService) CreateComment(ctx context.Context, authorID, itemID int64, text string) (*models.Comment, error) {
	if _, err := s.bookings.FindPastBookingByBooker(ctx, authorID, time.Now()); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.Error().Int64("author_id", authorID).Int64("item_id", itemID).Msg("no past booking for comment")
			return nil, fmt.Errorf("%w: item %d booked by user %d was not found", domain.ErrBadRequest, itemID, authorID)
		}
		return nil, err
	}

	author, err := s.users.GetUser(ctx, authorID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Text:       text,
		Created:    time.Now(),
		ItemID:     itemID,
		AuthorID:   authorID,
		AuthorName: author.Name,
	}
	if err := s.comments.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	if s.eventBus != nil {
		payload := events.CommentEventPayload{CommentID: comment.ID, ItemID: itemID, AuthorID: authorID}
		if err := s.eventBus.PublishJSON(events.EventCommentCreated, payload); err != nil {
			s.logger.Error().Err(err).Int64("comment_id", comment.ID).Msg("publish event error")
		}
	}

	return comment, nil
}

// assembleDetails дополняет вещь последним и ближайшим бронированием в
// области видимости владельца-просмотрщика и всеми комментариями.
func (s *ItemService) assembleDetails(ctx context.Context, item *models.Item, viewerID int64) (*models.ItemDetails, error) {
	details := &models.ItemDetails{Item: *item}
	now := time.Now()

	last, err := s.bookings.GetLastBooking(ctx, item.ID, viewerID, now)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if last != nil {
		details.LastBooking = &models.BookingRef{ID: last.ID, BookerID: last.BookerID}
	}

	next, err := s.bookings.GetNextBooking(ctx, item.ID, viewerID, now)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if next != nil {
		details.NextBooking = &models.BookingRef{ID: next.ID, BookerID: next.BookerID}
	}

	comments, err := s.comments.GetCommentsByItem(ctx, item.ID)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	details.Comments = comments

	return details, nil
}
