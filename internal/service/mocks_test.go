package service

import (
	"context"
	"time"

	"github.com/yossicon/shareit/internal/models"
	"gorm.io/gorm"
)

// --- Mock UserRepository ---

type mockUserRepo struct {
	findByIDFn    func(ctx context.Context, id uint) (*models.User, error)
	findByEmailFn func(ctx context.Context, email string) (*models.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, tx *gorm.DB, user *models.User) error { return nil }
func (m *mockUserRepo) FindByID(ctx context.Context, id uint) (*models.User, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockUserRepo) FindByEmail(ctx context.Context, tx *gorm.DB, email string) (*models.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockUserRepo) FindAll(ctx context.Context) ([]models.User, error)             { return nil, nil }
func (m *mockUserRepo) Save(ctx context.Context, tx *gorm.DB, user *models.User) error { return nil }
func (m *mockUserRepo) Delete(ctx context.Context, id uint) error                      { return nil }
func (m *mockUserRepo) GetDB() *gorm.DB                                                { return nil }

// --- Mock ItemRepository ---

type mockItemRepo struct {
	findByIDFn         func(ctx context.Context, id uint) (*models.Item, error)
	findAllByOwnerIDFn func(ctx context.Context, ownerID uint) ([]models.Item, error)
	searchFn           func(ctx context.Context, text string) ([]models.Item, error)
	findByRequestIDsFn func(ctx context.Context, requestIDs []uint) ([]models.Item, error)
}

func (m *mockItemRepo) Create(ctx context.Context, tx *gorm.DB, item *models.Item) error { return nil }
func (m *mockItemRepo) FindByID(ctx context.Context, id uint) (*models.Item, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockItemRepo) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Item, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockItemRepo) FindAllByOwnerID(ctx context.Context, ownerID uint) ([]models.Item, error) {
	return m.findAllByOwnerIDFn(ctx, ownerID)
}
func (m *mockItemRepo) Search(ctx context.Context, text string) ([]models.Item, error) {
	return m.searchFn(ctx, text)
}
func (m *mockItemRepo) FindAllByRequestID(ctx context.Context, requestID uint) ([]models.Item, error) {
	return nil, nil
}
func (m *mockItemRepo) FindAllByRequestIDIn(ctx context.Context, requestIDs []uint) ([]models.Item, error) {
	if m.findByRequestIDsFn != nil {
		return m.findByRequestIDsFn(ctx, requestIDs)
	}
	return nil, nil
}
func (m *mockItemRepo) Save(ctx context.Context, tx *gorm.DB, item *models.Item) error { return nil }
func (m *mockItemRepo) GetDB() *gorm.DB                                                { return nil }

// --- Mock BookingRepository ---

type mockBookingRepo struct {
	findByIDFn         func(ctx context.Context, id uint) (*models.Booking, error)
	findByBookerFn     func(ctx context.Context, bookerID uint, state models.BookingState, now time.Time) ([]models.Booking, error)
	findByItemsFn      func(ctx context.Context, itemIDs []uint, state models.BookingState, now time.Time) ([]models.Booking, error)
	findByItemBookerFn func(ctx context.Context, itemID, bookerID uint) (*models.Booking, error)
	findLastForItemFn  func(ctx context.Context, itemID uint, now time.Time) (*models.Booking, error)
	findNextForItemFn  func(ctx context.Context, itemID uint, now time.Time) (*models.Booking, error)
}

func (m *mockBookingRepo) Create(ctx context.Context, tx *gorm.DB, b *models.Booking) error {
	return nil
}
func (m *mockBookingRepo) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockBookingRepo) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Booking, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockBookingRepo) FindAllByBookerID(ctx context.Context, bookerID uint, state models.BookingState, now time.Time) ([]models.Booking, error) {
	return m.findByBookerFn(ctx, bookerID, state, now)
}
func (m *mockBookingRepo) FindAllByItemIDIn(ctx context.Context, itemIDs []uint, state models.BookingState, now time.Time) ([]models.Booking, error) {
	return m.findByItemsFn(ctx, itemIDs, state, now)
}
func (m *mockBookingRepo) FindByItemAndBooker(ctx context.Context, itemID, bookerID uint) (*models.Booking, error) {
	return m.findByItemBookerFn(ctx, itemID, bookerID)
}
func (m *mockBookingRepo) FindLastForItem(ctx context.Context, itemID uint, now time.Time) (*models.Booking, error) {
	if m.findLastForItemFn != nil {
		return m.findLastForItemFn(ctx, itemID, now)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockBookingRepo) FindNextForItem(ctx context.Context, itemID uint, now time.Time) (*models.Booking, error) {
	if m.findNextForItemFn != nil {
		return m.findNextForItemFn(ctx, itemID, now)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockBookingRepo) UpdateStatus(ctx context.Context, tx *gorm.DB, bookingID uint, status models.BookingStatus) error {
	return nil
}
func (m *mockBookingRepo) GetDB() *gorm.DB { return nil }

// --- Mock CommentRepository ---

type mockCommentRepo struct {
	findByItemIDFn  func(ctx context.Context, itemID uint) ([]models.Comment, error)
	findByItemIDsFn func(ctx context.Context, itemIDs []uint) ([]models.Comment, error)
}

func (m *mockCommentRepo) Create(ctx context.Context, tx *gorm.DB, c *models.Comment) error {
	return nil
}
func (m *mockCommentRepo) FindAllByItemID(ctx context.Context, itemID uint) ([]models.Comment, error) {
	if m.findByItemIDFn != nil {
		return m.findByItemIDFn(ctx, itemID)
	}
	return nil, nil
}
func (m *mockCommentRepo) FindAllByItemIDIn(ctx context.Context, itemIDs []uint) ([]models.Comment, error) {
	if m.findByItemIDsFn != nil {
		return m.findByItemIDsFn(ctx, itemIDs)
	}
	return nil, nil
}

// --- Mock RequestRepository ---

type mockRequestRepo struct {
	findByIDFn        func(ctx context.Context, id uint) (*models.ItemRequest, error)
	findByRequesterFn func(ctx context.Context, requesterID uint) ([]models.ItemRequest, error)
	findByOthersFn    func(ctx context.Context, requesterID uint) ([]models.ItemRequest, error)
}

func (m *mockRequestRepo) Create(ctx context.Context, request *models.ItemRequest) error { return nil }
func (m *mockRequestRepo) FindByID(ctx context.Context, id uint) (*models.ItemRequest, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockRequestRepo) FindAllByRequesterID(ctx context.Context, requesterID uint) ([]models.ItemRequest, error) {
	return m.findByRequesterFn(ctx, requesterID)
}
func (m *mockRequestRepo) FindAllByOtherRequesters(ctx context.Context, requesterID uint) ([]models.ItemRequest, error) {
	return m.findByOthersFn(ctx, requesterID)
}
