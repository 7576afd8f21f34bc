package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/yossicon/shareit/internal/dto"
	"github.com/yossicon/shareit/internal/models"
	"github.com/yossicon/shareit/internal/service"
)

type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) RegisterRoutes(e *echo.Echo) {
	bookings := e.Group("/bookings")
	bookings.POST("", h.AddBooking)
	bookings.GET("", h.GetUserBookings)
	bookings.GET("/owner", h.GetOwnerBookings)
	bookings.GET("/:id", h.GetBooking)
	bookings.PATCH("/:id", h.ApproveBooking)
}

func (h *BookingHandler) AddBooking(c echo.Context) error {
	bookerID, err := userID(c)
	if err != nil {
		return err
	}

	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if !req.Start.Before(req.End) {
		return echo.NewHTTPError(http.StatusBadRequest, "start must be before end")
	}

	booking, err := h.svc.AddBooking(c.Request().Context(), bookerID, req.ItemID, req.Start, req.End)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) GetBooking(c echo.Context) error {
	callerID, err := userID(c)
	if err != nil {
		return err
	}
	bookingID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	booking, err := h.svc.GetBooking(c.Request().Context(), callerID, bookingID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) GetUserBookings(c echo.Context) error {
	bookerID, err := userID(c)
	if err != nil {
		return err
	}
	state, err := models.ParseBookingState(c.QueryParam("state"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	bookings, err := h.svc.GetUserBookings(c.Request().Context(), bookerID, state)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, toBookingResponses(bookings))
}

func (h *BookingHandler) GetOwnerBookings(c echo.Context) error {
	ownerID, err := userID(c)
	if err != nil {
		return err
	}
	state, err := models.ParseBookingState(c.QueryParam("state"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	bookings, err := h.svc.GetOwnerBookings(c.Request().Context(), ownerID, state)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, toBookingResponses(bookings))
}

func (h *BookingHandler) ApproveBooking(c echo.Context) error {
	ownerID, err := userID(c)
	if err != nil {
		return err
	}
	bookingID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	approved, err := strconv.ParseBool(c.QueryParam("approved"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "approved query parameter is required")
	}

	booking, err := h.svc.ApproveBooking(c.Request().Context(), ownerID, bookingID, approved)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func toBookingResponses(bookings []models.Booking) []dto.BookingResponse {
	resp := make([]dto.BookingResponse, len(bookings))
	for i, b := range bookings {
		resp[i] = dto.ToBookingResponse(&b)
	}
	return resp
}
