package models

import "time"

// ItemRequest is a user's posted need for an item nobody has listed yet.
// Items created in response carry the request's id in their RequestID.
type ItemRequest struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Description string    `gorm:"not null" json:"description"`
	RequesterID uint      `gorm:"not null;index" json:"requester_id"`
	Created     time.Time `gorm:"not null" json:"created"`

	Requester *User `gorm:"foreignKey:RequesterID" json:"requester,omitempty"`
}
