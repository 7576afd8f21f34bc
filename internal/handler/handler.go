package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/yossicon/shareit/internal/service"
)

// UserIDHeader carries the caller's identity on every attributed request.
const UserIDHeader = "X-Sharer-User-Id"

func userID(c echo.Context) (uint, error) {
	raw := c.Request().Header.Get(UserIDHeader)
	if raw == "" {
		return 0, echo.NewHTTPError(http.StatusBadRequest, UserIDHeader+" header is required")
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+UserIDHeader+" header")
	}
	return uint(id), nil
}

func pathID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return uint(id), nil
}

// httpError maps domain errors onto HTTP statuses. Unclassified errors
// fall through to 500 with the message surfaced.
func httpError(err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrItemNotFound),
		errors.Is(err, service.ErrBookingNotFound),
		errors.Is(err, service.ErrRequestNotFound),
		errors.Is(err, service.ErrOwnerHasNoItems):
		code = http.StatusNotFound
	case errors.Is(err, service.ErrBookingViewForbidden),
		errors.Is(err, service.ErrApproveForbidden),
		errors.Is(err, service.ErrItemUpdateForbidden):
		code = http.StatusForbidden
	case errors.Is(err, service.ErrItemUnavailable),
		errors.Is(err, service.ErrBookingUnavailable):
		code = http.StatusBadRequest
	case errors.Is(err, service.ErrEmailInUse),
		errors.Is(err, service.ErrAlreadyDecided):
		code = http.StatusConflict
	}
	return echo.NewHTTPError(code, err.Error())
}
