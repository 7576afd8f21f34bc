package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/yossicon/shareit/internal/dto"
	"github.com/yossicon/shareit/internal/models"
	"github.com/yossicon/shareit/internal/repository"
	"gorm.io/gorm"
)

// ItemView is an item together with its booking neighbourhood: the most
// recent finished booking, the nearest upcoming one, and its comments.
type ItemView struct {
	Item        *models.Item
	LastBooking *models.Booking
	NextBooking *models.Booking
	Comments    []models.Comment
}

type ItemService interface {
	AddItem(ctx context.Context, ownerID uint, req dto.CreateItemRequest) (*models.Item, error)
	GetItem(ctx context.Context, userID, itemID uint) (*ItemView, error)
	GetUserItems(ctx context.Context, ownerID uint) ([]ItemView, error)
	SearchItems(ctx context.Context, text string) ([]models.Item, error)
	UpdateItem(ctx context.Context, ownerID, itemID uint, req dto.UpdateItemRequest) (*models.Item, error)
	AddComment(ctx context.Context, authorID, itemID uint, text string) (*models.Comment, error)
}

type itemService struct {
	itemRepo    repository.ItemRepository
	userRepo    repository.UserRepository
	bookingRepo repository.BookingRepository
	commentRepo repository.CommentRepository
	requestRepo repository.RequestRepository
}

func NewItemService(
	itemRepo repository.ItemRepository,
	userRepo repository.UserRepository,
	bookingRepo repository.BookingRepository,
	commentRepo repository.CommentRepository,
	requestRepo repository.RequestRepository,
) ItemService {
	return &itemService{
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		bookingRepo: bookingRepo,
		commentRepo: commentRepo,
		requestRepo: requestRepo,
	}
}

func (s *itemService) AddItem(ctx context.Context, ownerID uint, req dto.CreateItemRequest) (*models.Item, error) {
	item := &models.Item{
		Name:        req.Name,
		Description: req.Description,
		Available:   *req.Available,
		OwnerID:     ownerID,
		RequestID:   req.RequestID,
	}

	err := s.itemRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.userRepo.FindByID(ctx, ownerID); err != nil {
			return ErrUserNotFound
		}
		if req.RequestID != nil {
			if _, err := s.requestRepo.FindByID(ctx, *req.RequestID); err != nil {
				return ErrRequestNotFound
			}
		}
		return s.itemRepo.Create(ctx, tx, item)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemService) GetItem(ctx context.Context, userID, itemID uint) (*ItemView, error) {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, foldGormNotFound(err, ErrItemNotFound)
	}

	view := &ItemView{Item: item}

	// Booking details are the owner's business only
	if item.OwnerID == userID {
		now := time.Now()
		last, err := s.bookingRepo.FindLastForItem(ctx, itemID, now)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		next, err := s.bookingRepo.FindNextForItem(ctx, itemID, now)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		view.LastBooking = last
		view.NextBooking = next
	}

	comments, err := s.commentRepo.FindAllByItemID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	view.Comments = comments
	return view, nil
}

func (s *itemService) GetUserItems(ctx context.Context, ownerID uint) ([]ItemView, error) {
	if _, err := s.userRepo.FindByID(ctx, ownerID); err != nil {
		return nil, ErrUserNotFound
	}

	items, err := s.itemRepo.FindAllByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	itemIDs := make([]uint, len(items))
	for i, item := range items {
		itemIDs[i] = item.ID
	}

	bookings, err := s.bookingRepo.FindAllByItemIDIn(ctx, itemIDs, models.StateAll, time.Now())
	if err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.FindAllByItemIDIn(ctx, itemIDs)
	if err != nil {
		return nil, err
	}

	bookingsByItem := make(map[uint][]models.Booking)
	for _, b := range bookings {
		bookingsByItem[b.ItemID] = append(bookingsByItem[b.ItemID], b)
	}
	commentsByItem := make(map[uint][]models.Comment)
	for _, c := range comments {
		commentsByItem[c.ItemID] = append(commentsByItem[c.ItemID], c)
	}

	now := time.Now()
	views := make([]ItemView, len(items))
	for i := range items {
		item := &items[i]
		views[i] = ItemView{
			Item:        item,
			LastBooking: lastBooking(bookingsByItem[item.ID], now),
			NextBooking: nextBooking(bookingsByItem[item.ID], now),
			Comments:    commentsByItem[item.ID],
		}
	}
	return views, nil
}

// lastBooking picks the finished booking with the latest start.
func lastBooking(bookings []models.Booking, now time.Time) *models.Booking {
	var last *models.Booking
	for i := range bookings {
		b := &bookings[i]
		if !b.End.Before(now) {
			continue
		}
		if last == nil || b.Start.After(last.Start) {
			last = b
		}
	}
	return last
}

// nextBooking picks the upcoming booking with the earliest start.
func nextBooking(bookings []models.Booking, now time.Time) *models.Booking {
	var next *models.Booking
	for i := range bookings {
		b := &bookings[i]
		if !b.Start.After(now) {
			continue
		}
		if next == nil || b.Start.Before(next.Start) {
			next = b
		}
	}
	return next
}

func (s *itemService) SearchItems(ctx context.Context, text string) ([]models.Item, error) {
	if strings.TrimSpace(text) == "" {
		return []models.Item{}, nil
	}
	return s.itemRepo.Search(ctx, text)
}

func (s *itemService) UpdateItem(ctx context.Context, ownerID, itemID uint, req dto.UpdateItemRequest) (*models.Item, error) {
	var result *models.Item

	err := s.itemRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		item, err := s.itemRepo.FindByIDForUpdate(ctx, tx, itemID)
		if err != nil {
			return foldGormNotFound(err, ErrItemNotFound)
		}
		if _, err := s.userRepo.FindByID(ctx, ownerID); err != nil {
			return ErrUserNotFound
		}
		if item.OwnerID != ownerID {
			return ErrItemUpdateForbidden
		}

		// Blank fields are no-ops, not clears
		if strings.TrimSpace(req.Name) != "" {
			item.Name = req.Name
		}
		if strings.TrimSpace(req.Description) != "" {
			item.Description = req.Description
		}
		if req.Available != nil {
			item.Available = *req.Available
		}

		if err := s.itemRepo.Save(ctx, tx, item); err != nil {
			return err
		}
		result = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *itemService) AddComment(ctx context.Context, authorID, itemID uint, text string) (*models.Comment, error) {
	author, err := s.userRepo.FindByID(ctx, authorID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	if _, err := s.itemRepo.FindByID(ctx, itemID); err != nil {
		return nil, foldGormNotFound(err, ErrItemNotFound)
	}

	booking, err := s.bookingRepo.FindByItemAndBooker(ctx, itemID, authorID)
	if err != nil {
		return nil, foldGormNotFound(err, ErrBookingUnavailable)
	}
	if booking.Status != models.StatusApproved || !booking.End.Before(time.Now()) {
		return nil, ErrBookingUnavailable
	}

	comment := &models.Comment{
		Text:     text,
		ItemID:   itemID,
		AuthorID: authorID,
		Created:  time.Now(),
	}
	err = s.itemRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.commentRepo.Create(ctx, tx, comment)
	})
	if err != nil {
		return nil, err
	}

	comment.Author = author
	return comment, nil
}
