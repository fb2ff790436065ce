package service

import (
	"context"
	"time"

	"shareit/internal/domain"
	"shareit/internal/models"

	"github.com/rs/zerolog"
)

type RequestService struct {
	requests domain.RequestRepository
	users    domain.UserRepository
	items    domain.ItemRepository
	logger   *zerolog.Logger
}

func NewRequestService(
	requests domain.RequestRepository,
	users domain.UserRepository,
	items domain.ItemRepository,
	logger *zerolog.Logger,
) *RequestService {
	return &RequestService{requests: requests, users: users, items: items, logger: logger}
}

func (s *RequestService) Create(ctx context.Context, requesterID int64, description string) (*models.ItemRequestDetails, error) {
	if _, err := s.users.GetUser(ctx, requesterID); err != nil {
		return nil, err
	}

	request := &models.ItemRequest{
		Description: description,
		RequesterID: requesterID,
		Created:     time.Now(),
	}
	if err := s.requests.CreateRequest(ctx, request); err != nil {
		return nil, err
	}

	return s.withItems(ctx, request)
}

func (s *RequestService) GetOwn(ctx context.Context, requesterID int64) ([]*models.ItemRequestDetails, error) {
	if _, err := s.users.GetUser(ctx, requesterID); err != nil {
		return nil, err
	}

	requests, err := s.requests.GetRequestsByRequester(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	return s.allWithItems(ctx, requests)
}

// GetAll возвращает чужие запросы постранично, свежие первыми.
func (s *RequestService) GetAll(ctx context.Context, userID int64, from, size int) ([]*models.ItemRequestDetails, error) {
	if _, err := s.users.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	requests, err := s.requests.GetOtherRequests(ctx, userID, size, models.PageOffset(from, size))
	if err != nil {
		return nil, err
	}
	return s.allWithItems(ctx, requests)
}

func (s *RequestService) GetByID(ctx context.Context, userID, requestID int64) (*models.ItemRequestDetails, error) {
	if _, err := s.users.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	request, err := s.requests.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	return s.withItems(ctx, request)
}

func (s *RequestService) withItems(ctx context.Context, request *models.ItemRequest) (*models.ItemRequestDetails, error) {
	items, err := s.items.GetItemsByRequest(ctx, request.ID)
	if err != nil {
		return nil, err
	}

	details := &models.ItemRequestDetails{ItemRequest: *request, Items: []models.Item{}}
	for _, item := range items {
		details.Items = append(details.Items, *item)
	}
	return details, nil
}

func (s *RequestService) allWithItems(ctx context.Context, requests []*models.ItemRequest) ([]*models.ItemRequestDetails, error) {
	details := make([]*models.ItemRequestDetails, 0, len(requests))
	for _, r := range requests {
		d, err := s.withItems(ctx, r)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, nil
}
