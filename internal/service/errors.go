package service

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrItemNotFound    = errors.New("item not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrRequestNotFound = errors.New("item request not found")
	ErrOwnerHasNoItems = errors.New("user has no items yet")

	ErrBookingViewForbidden = errors.New("only the item owner or the booker may view a booking")
	ErrApproveForbidden     = errors.New("only the item owner may approve or reject a booking")
	ErrItemUpdateForbidden  = errors.New("only the item owner may update an item")

	ErrItemUnavailable    = errors.New("item is not available for booking")
	ErrBookingUnavailable = errors.New("commenting requires a completed approved booking of the item")

	ErrEmailInUse     = errors.New("email is already in use")
	ErrAlreadyDecided = errors.New("booking has already been approved or rejected")
)
