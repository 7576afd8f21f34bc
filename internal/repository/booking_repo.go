package repository

import (
	"context"
	"time"

	"github.com/yossicon/shareit/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookingRepository interface {
	Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error
	FindByID(ctx context.Context, id uint) (*models.Booking, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Booking, error)
	FindAllByBookerID(ctx context.Context, bookerID uint, state models.BookingState, now time.Time) ([]models.Booking, error)
	FindAllByItemIDIn(ctx context.Context, itemIDs []uint, state models.BookingState, now time.Time) ([]models.Booking, error)
	FindByItemAndBooker(ctx context.Context, itemID, bookerID uint) (*models.Booking, error)
	FindLastForItem(ctx context.Context, itemID uint, now time.Time) (*models.Booking, error)
	FindNextForItem(ctx context.Context, itemID uint, now time.Time) (*models.Booking, error)
	UpdateStatus(ctx context.Context, tx *gorm.DB, bookingID uint, status models.BookingStatus) error
	GetDB() *gorm.DB
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *bookingRepository) Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error {
	return tx.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Item").
		Preload("Booker").
		First(&booking, id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// FindByIDForUpdate acquires a row-level lock on the booking within the
// given transaction so concurrent approvals serialize.
func (r *bookingRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&booking, id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// applyState narrows a booking query to one of the semantic buckets.
// Results are always newest-start first.
func applyState(q *gorm.DB, state models.BookingState, now time.Time) *gorm.DB {
	switch state {
	case models.StateCurrent:
		q = q.Where("start_date < ? AND end_date > ?", now, now)
	case models.StatePast:
		q = q.Where("end_date < ?", now)
	case models.StateFuture:
		q = q.Where("start_date > ?", now)
	case models.StateWaiting:
		q = q.Where("status = ?", models.StatusWaiting)
	case models.StateRejected:
		q = q.Where("status = ?", models.StatusRejected)
	}
	return q.Order("start_date DESC")
}

func (r *bookingRepository) FindAllByBookerID(ctx context.Context, bookerID uint, state models.BookingState, now time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	q := r.db.WithContext(ctx).
		Preload("Item").
		Preload("Booker").
		Where("booker_id = ?", bookerID)
	if err := applyState(q, state, now).Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) FindAllByItemIDIn(ctx context.Context, itemIDs []uint, state models.BookingState, now time.Time) ([]models.Booking, error) {
	if len(itemIDs) == 0 {
		return nil, nil
	}
	var bookings []models.Booking
	q := r.db.WithContext(ctx).
		Preload("Item").
		Preload("Booker").
		Where("item_id IN ?", itemIDs)
	if err := applyState(q, state, now).Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) FindByItemAndBooker(ctx context.Context, itemID, bookerID uint) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).
		Where("item_id = ? AND booker_id = ?", itemID, bookerID).
		First(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// FindLastForItem returns the most recent booking that already ended.
func (r *bookingRepository) FindLastForItem(ctx context.Context, itemID uint, now time.Time) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).
		Where("item_id = ? AND end_date < ?", itemID, now).
		Order("start_date DESC").
		First(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// FindNextForItem returns the nearest booking that has not started yet.
func (r *bookingRepository) FindNextForItem(ctx context.Context, itemID uint, now time.Time) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).
		Where("item_id = ? AND start_date > ?", itemID, now).
		Order("start_date ASC").
		First(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, tx *gorm.DB, bookingID uint, status models.BookingStatus) error {
	return tx.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", bookingID).
		Update("status", status).Error
}
