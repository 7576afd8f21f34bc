package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yossicon/shareit/internal/models"
	"gorm.io/gorm"
)

func TestSearchItems_BlankText(t *testing.T) {
	searched := false
	itemRepo := &mockItemRepo{
		searchFn: func(ctx context.Context, text string) ([]models.Item, error) {
			searched = true
			return nil, nil
		},
	}
	svc := NewItemService(itemRepo, userRepoWith(nil), &mockBookingRepo{}, &mockCommentRepo{}, &mockRequestRepo{})

	items, err := svc.SearchItems(context.Background(), "   ")
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.False(t, searched, "blank text should not reach the store")
}

func TestGetItem_BookingsOnlyForOwner(t *testing.T) {
	now := time.Now()
	item := &models.Item{ID: 10, Name: "Harp", OwnerID: 1, Available: true}
	last := &models.Booking{ID: 1, ItemID: 10, Start: now.Add(-48 * time.Hour), End: now.Add(-24 * time.Hour)}
	next := &models.Booking{ID: 2, ItemID: 10, Start: now.Add(24 * time.Hour), End: now.Add(48 * time.Hour)}

	itemRepo := &mockItemRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Item, error) { return item, nil },
	}
	bookingRepo := &mockBookingRepo{
		findLastForItemFn: func(ctx context.Context, itemID uint, now time.Time) (*models.Booking, error) {
			return last, nil
		},
		findNextForItemFn: func(ctx context.Context, itemID uint, now time.Time) (*models.Booking, error) {
			return next, nil
		},
	}
	svc := NewItemService(itemRepo, userRepoWith(nil), bookingRepo, &mockCommentRepo{}, &mockRequestRepo{})

	t.Run("owner sees bookings", func(t *testing.T) {
		view, err := svc.GetItem(context.Background(), 1, 10)
		require.NoError(t, err)
		require.NotNil(t, view.LastBooking)
		require.NotNil(t, view.NextBooking)
		assert.Equal(t, uint(1), view.LastBooking.ID)
		assert.Equal(t, uint(2), view.NextBooking.ID)
	})

	t.Run("other caller gets nil bookings", func(t *testing.T) {
		view, err := svc.GetItem(context.Background(), 2, 10)
		require.NoError(t, err)
		assert.Nil(t, view.LastBooking)
		assert.Nil(t, view.NextBooking)
	})
}

func TestGetUserItems_GroupsBookingsAndComments(t *testing.T) {
	now := time.Now()
	users := map[uint]*models.User{1: {ID: 1, Name: "owner"}}
	itemRepo := &mockItemRepo{
		findAllByOwnerIDFn: func(ctx context.Context, ownerID uint) ([]models.Item, error) {
			return []models.Item{
				{ID: 10, Name: "Harp", OwnerID: 1},
				{ID: 11, Name: "Drill", OwnerID: 1},
			}, nil
		},
	}
	bookingRepo := &mockBookingRepo{
		findByItemsFn: func(ctx context.Context, itemIDs []uint, state models.BookingState, _ time.Time) ([]models.Booking, error) {
			return []models.Booking{
				// item 10: one past, two future
				{ID: 1, ItemID: 10, Start: now.Add(-72 * time.Hour), End: now.Add(-48 * time.Hour)},
				{ID: 2, ItemID: 10, Start: now.Add(48 * time.Hour), End: now.Add(72 * time.Hour)},
				{ID: 3, ItemID: 10, Start: now.Add(24 * time.Hour), End: now.Add(36 * time.Hour)},
			}, nil
		},
	}
	commentRepo := &mockCommentRepo{
		findByItemIDsFn: func(ctx context.Context, itemIDs []uint) ([]models.Comment, error) {
			return []models.Comment{{ID: 5, ItemID: 10, Text: "great harp"}}, nil
		},
	}
	svc := NewItemService(itemRepo, userRepoWith(users), bookingRepo, commentRepo, &mockRequestRepo{})

	views, err := svc.GetUserItems(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, views, 2)

	harp := views[0]
	require.NotNil(t, harp.LastBooking)
	assert.Equal(t, uint(1), harp.LastBooking.ID)
	require.NotNil(t, harp.NextBooking, "nearest future booking expected")
	assert.Equal(t, uint(3), harp.NextBooking.ID)
	assert.Len(t, harp.Comments, 1)

	drill := views[1]
	assert.Nil(t, drill.LastBooking)
	assert.Nil(t, drill.NextBooking)
	assert.Empty(t, drill.Comments)
}

func TestAddComment_Eligibility(t *testing.T) {
	now := time.Now()
	users := map[uint]*models.User{2: {ID: 2, Name: "booker"}}
	item := &models.Item{ID: 10, Name: "Harp", OwnerID: 1, Available: true}
	itemRepo := &mockItemRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Item, error) { return item, nil },
	}

	newSvc := func(booking *models.Booking) ItemService {
		bookingRepo := &mockBookingRepo{
			findByItemBookerFn: func(ctx context.Context, itemID, bookerID uint) (*models.Booking, error) {
				if booking == nil {
					return nil, gorm.ErrRecordNotFound
				}
				return booking, nil
			},
		}
		return NewItemService(itemRepo, userRepoWith(users), bookingRepo, &mockCommentRepo{}, &mockRequestRepo{})
	}

	t.Run("no booking at all", func(t *testing.T) {
		_, err := newSvc(nil).AddComment(context.Background(), 2, 10, "nice")
		assert.ErrorIs(t, err, ErrBookingUnavailable)
	})

	t.Run("booking not yet ended", func(t *testing.T) {
		booking := &models.Booking{
			ID: 1, ItemID: 10, BookerID: 2,
			Start:  now.Add(-time.Hour),
			End:    now.Add(time.Hour),
			Status: models.StatusApproved,
		}
		_, err := newSvc(booking).AddComment(context.Background(), 2, 10, "nice")
		assert.ErrorIs(t, err, ErrBookingUnavailable)
	})

	t.Run("booking never approved", func(t *testing.T) {
		booking := &models.Booking{
			ID: 1, ItemID: 10, BookerID: 2,
			Start:  now.Add(-48 * time.Hour),
			End:    now.Add(-24 * time.Hour),
			Status: models.StatusWaiting,
		}
		_, err := newSvc(booking).AddComment(context.Background(), 2, 10, "nice")
		assert.ErrorIs(t, err, ErrBookingUnavailable)
	})

	t.Run("unknown author", func(t *testing.T) {
		_, err := newSvc(nil).AddComment(context.Background(), 99, 10, "nice")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
