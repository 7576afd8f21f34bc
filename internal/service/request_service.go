package service

import (
	"context"
	"time"

	"github.com/yossicon/shareit/internal/models"
	"github.com/yossicon/shareit/internal/repository"
)

// RequestView pairs an item request with the items offered in response.
type RequestView struct {
	Request *models.ItemRequest
	Items   []models.Item
}

type RequestService interface {
	AddRequest(ctx context.Context, requesterID uint, description string) (*models.ItemRequest, error)
	GetUserRequests(ctx context.Context, requesterID uint) ([]RequestView, error)
	GetOtherRequests(ctx context.Context, requesterID uint) ([]RequestView, error)
	GetRequest(ctx context.Context, requestID uint) (*RequestView, error)
}

type requestService struct {
	requestRepo repository.RequestRepository
	itemRepo    repository.ItemRepository
	userRepo    repository.UserRepository
}

func NewRequestService(
	requestRepo repository.RequestRepository,
	itemRepo repository.ItemRepository,
	userRepo repository.UserRepository,
) RequestService {
	return &requestService{
		requestRepo: requestRepo,
		itemRepo:    itemRepo,
		userRepo:    userRepo,
	}
}

func (s *requestService) AddRequest(ctx context.Context, requesterID uint, description string) (*models.ItemRequest, error) {
	if _, err := s.userRepo.FindByID(ctx, requesterID); err != nil {
		return nil, ErrUserNotFound
	}

	request := &models.ItemRequest{
		Description: description,
		RequesterID: requesterID,
		Created:     time.Now(),
	}
	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

func (s *requestService) GetUserRequests(ctx context.Context, requesterID uint) ([]RequestView, error) {
	requests, err := s.requestRepo.FindAllByRequesterID(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	return s.withResponses(ctx, requests)
}

func (s *requestService) GetOtherRequests(ctx context.Context, requesterID uint) ([]RequestView, error) {
	requests, err := s.requestRepo.FindAllByOtherRequesters(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	return s.withResponses(ctx, requests)
}

func (s *requestService) GetRequest(ctx context.Context, requestID uint) (*RequestView, error) {
	request, err := s.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		return nil, foldGormNotFound(err, ErrRequestNotFound)
	}
	items, err := s.itemRepo.FindAllByRequestID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	return &RequestView{Request: request, Items: items}, nil
}

// withResponses joins response items to their requests in one query,
// grouped by request id.
func (s *requestService) withResponses(ctx context.Context, requests []models.ItemRequest) ([]RequestView, error) {
	requestIDs := make([]uint, len(requests))
	for i, r := range requests {
		requestIDs[i] = r.ID
	}

	items, err := s.itemRepo.FindAllByRequestIDIn(ctx, requestIDs)
	if err != nil {
		return nil, err
	}
	itemsByRequest := make(map[uint][]models.Item)
	for _, item := range items {
		if item.RequestID == nil {
			continue
		}
		itemsByRequest[*item.RequestID] = append(itemsByRequest[*item.RequestID], item)
	}

	views := make([]RequestView, len(requests))
	for i := range requests {
		request := &requests[i]
		views[i] = RequestView{
			Request: request,
			Items:   itemsByRequest[request.ID],
		}
	}
	return views, nil
}
