package service

import (
	"context"
	"errors"
	"time"

	"github.com/yossicon/shareit/internal/models"
	"github.com/yossicon/shareit/internal/repository"
	"github.com/yossicon/shareit/pkg/rabbitmq"
	"gorm.io/gorm"
)

type BookingService interface {
	AddBooking(ctx context.Context, bookerID, itemID uint, start, end time.Time) (*models.Booking, error)
	GetBooking(ctx context.Context, userID, bookingID uint) (*models.Booking, error)
	GetUserBookings(ctx context.Context, bookerID uint, state models.BookingState) ([]models.Booking, error)
	GetOwnerBookings(ctx context.Context, ownerID uint, state models.BookingState) ([]models.Booking, error)
	ApproveBooking(ctx context.Context, ownerID, bookingID uint, approved bool) (*models.Booking, error)
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	itemRepo    repository.ItemRepository
	userRepo    repository.UserRepository
	publisher   *rabbitmq.Publisher
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	itemRepo repository.ItemRepository,
	userRepo repository.UserRepository,
	publisher *rabbitmq.Publisher,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		publisher:   publisher,
	}
}

func (s *bookingService) AddBooking(ctx context.Context, bookerID, itemID uint, start, end time.Time) (*models.Booking, error) {
	var result *models.Booking

	err := s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		booker, err := s.userRepo.FindByID(ctx, bookerID)
		if err != nil {
			return ErrUserNotFound
		}

		// Lock the item row so availability cannot flip mid-booking
		item, err := s.itemRepo.FindByIDForUpdate(ctx, tx, itemID)
		if err != nil {
			return ErrItemNotFound
		}
		if !item.Available {
			return ErrItemUnavailable
		}

		booking := &models.Booking{
			ItemID:   itemID,
			BookerID: bookerID,
			Start:    start,
			End:      end,
			Status:   models.StatusWaiting,
		}
		if err := s.bookingRepo.Create(ctx, tx, booking); err != nil {
			return err
		}

		booking.Item = item
		booking.Booker = booker
		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish(rabbitmq.KeyBookingCreated, result)
	}

	return result, nil
}

func (s *bookingService) GetBooking(ctx context.Context, userID, bookingID uint) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, ErrBookingNotFound
	}
	if userID != booking.BookerID && userID != booking.Item.OwnerID {
		return nil, ErrBookingViewForbidden
	}
	return booking, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, bookerID uint, state models.BookingState) ([]models.Booking, error) {
	if _, err := s.userRepo.FindByID(ctx, bookerID); err != nil {
		return nil, ErrUserNotFound
	}
	return s.bookingRepo.FindAllByBookerID(ctx, bookerID, state, time.Now())
}

func (s *bookingService) GetOwnerBookings(ctx context.Context, ownerID uint, state models.BookingState) ([]models.Booking, error) {
	if _, err := s.userRepo.FindByID(ctx, ownerID); err != nil {
		return nil, ErrUserNotFound
	}

	items, err := s.itemRepo.FindAllByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrOwnerHasNoItems
	}

	itemIDs := make([]uint, len(items))
	for i, item := range items {
		itemIDs[i] = item.ID
	}
	return s.bookingRepo.FindAllByItemIDIn(ctx, itemIDs, state, time.Now())
}

func (s *bookingService) ApproveBooking(ctx context.Context, ownerID, bookingID uint, approved bool) (*models.Booking, error) {
	err := s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock the booking row — serializes concurrent approval attempts
		booking, err := s.bookingRepo.FindByIDForUpdate(ctx, tx, bookingID)
		if err != nil {
			return ErrBookingNotFound
		}

		item, err := s.itemRepo.FindByID(ctx, booking.ItemID)
		if err != nil {
			return err
		}
		if item.OwnerID != ownerID {
			return ErrApproveForbidden
		}

		// WAITING is the only state that may be decided
		if booking.Status != models.StatusWaiting {
			return ErrAlreadyDecided
		}

		status := models.StatusRejected
		if approved {
			status = models.StatusApproved
		}
		return s.bookingRepo.UpdateStatus(ctx, tx, bookingID, status)
	})
	if err != nil {
		return nil, err
	}

	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		key := rabbitmq.KeyBookingRejected
		if approved {
			key = rabbitmq.KeyBookingApproved
		}
		_ = s.publisher.Publish(key, booking)
	}

	return booking, nil
}

// foldGormNotFound collapses a record-not-found into the given domain error.
func foldGormNotFound(err, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return err
}
