package dto

import (
	"time"

	"github.com/yossicon/shareit/internal/models"
)

type UserResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ItemResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	OwnerID     uint   `json:"owner_id"`
	RequestID   *uint  `json:"request_id,omitempty"`
}

// UserBrief and ItemBrief are the nested shapes embedded in booking
// responses; the full entities would drag the owner's email along.
type UserBrief struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type ItemBrief struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type BookingResponse struct {
	ID     uint                 `json:"id"`
	Start  time.Time            `json:"start"`
	End    time.Time            `json:"end"`
	Status models.BookingStatus `json:"status"`
	Item   *ItemBrief           `json:"item,omitempty"`
	Booker *UserBrief           `json:"booker,omitempty"`
}

// BookingBrief is the last/next booking shape attached to an item view.
type BookingBrief struct {
	ID       uint      `json:"id"`
	BookerID uint      `json:"booker_id"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

type CommentResponse struct {
	ID         uint      `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"author_name"`
	Created    time.Time `json:"created"`
}

type ItemWithBookingsResponse struct {
	ID          uint              `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Available   bool              `json:"available"`
	RequestID   *uint             `json:"request_id,omitempty"`
	LastBooking *BookingBrief     `json:"last_booking"`
	NextBooking *BookingBrief     `json:"next_booking"`
	Comments    []CommentResponse `json:"comments"`
}

// ItemReply is an item listed as a response to an item request.
type ItemReply struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	OwnerID uint   `json:"owner_id"`
}

type ItemRequestResponse struct {
	ID          uint        `json:"id"`
	Description string      `json:"description"`
	Created     time.Time   `json:"created"`
	Items       []ItemReply `json:"items"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

func ToItemResponse(i *models.Item) ItemResponse {
	return ItemResponse{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		Available:   i.Available,
		OwnerID:     i.OwnerID,
		RequestID:   i.RequestID,
	}
}

// ToBookingResponse expects Item and Booker to be preloaded; either may
// still be nil on freshly created bookings.
func ToBookingResponse(b *models.Booking) BookingResponse {
	resp := BookingResponse{
		ID:     b.ID,
		Start:  b.Start,
		End:    b.End,
		Status: b.Status,
	}
	if b.Item != nil {
		resp.Item = &ItemBrief{ID: b.Item.ID, Name: b.Item.Name}
	}
	if b.Booker != nil {
		resp.Booker = &UserBrief{ID: b.Booker.ID, Name: b.Booker.Name}
	}
	return resp
}

func toBookingBrief(b *models.Booking) *BookingBrief {
	if b == nil {
		return nil
	}
	return &BookingBrief{
		ID:       b.ID,
		BookerID: b.BookerID,
		Start:    b.Start,
		End:      b.End,
	}
}

// ToCommentResponse expects Author to be preloaded.
func ToCommentResponse(c *models.Comment) CommentResponse {
	resp := CommentResponse{
		ID:      c.ID,
		Text:    c.Text,
		Created: c.Created,
	}
	if c.Author != nil {
		resp.AuthorName = c.Author.Name
	}
	return resp
}

func ToItemWithBookingsResponse(item *models.Item, last, next *models.Booking, comments []models.Comment) ItemWithBookingsResponse {
	commentResponses := make([]CommentResponse, len(comments))
	for i, c := range comments {
		commentResponses[i] = ToCommentResponse(&c)
	}
	return ItemWithBookingsResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Available:   item.Available,
		RequestID:   item.RequestID,
		LastBooking: toBookingBrief(last),
		NextBooking: toBookingBrief(next),
		Comments:    commentResponses,
	}
}

func ToItemRequestResponse(r *models.ItemRequest, items []models.Item) ItemRequestResponse {
	replies := make([]ItemReply, len(items))
	for i, item := range items {
		replies[i] = ItemReply{ID: item.ID, Name: item.Name, OwnerID: item.OwnerID}
	}
	return ItemRequestResponse{
		ID:          r.ID,
		Description: r.Description,
		Created:     r.Created,
		Items:       replies,
	}
}
