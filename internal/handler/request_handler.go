package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/yossicon/shareit/internal/dto"
	"github.com/yossicon/shareit/internal/service"
)

type RequestHandler struct {
	svc service.RequestService
}

func NewRequestHandler(svc service.RequestService) *RequestHandler {
	return &RequestHandler{svc: svc}
}

func (h *RequestHandler) RegisterRoutes(e *echo.Echo) {
	requests := e.Group("/requests")
	requests.POST("", h.AddRequest)
	requests.GET("", h.GetUserRequests)
	requests.GET("/all", h.GetOtherRequests)
	requests.GET("/:id", h.GetRequest)
}

func (h *RequestHandler) AddRequest(c echo.Context) error {
	requesterID, err := userID(c)
	if err != nil {
		return err
	}

	var req dto.CreateRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	request, err := h.svc.AddRequest(c.Request().Context(), requesterID, req.Description)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, dto.ToItemRequestResponse(request, nil))
}

func (h *RequestHandler) GetUserRequests(c echo.Context) error {
	requesterID, err := userID(c)
	if err != nil {
		return err
	}

	views, err := h.svc.GetUserRequests(c.Request().Context(), requesterID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, toRequestResponses(views))
}

func (h *RequestHandler) GetOtherRequests(c echo.Context) error {
	requesterID, err := userID(c)
	if err != nil {
		return err
	}

	views, err := h.svc.GetOtherRequests(c.Request().Context(), requesterID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, toRequestResponses(views))
}

func (h *RequestHandler) GetRequest(c echo.Context) error {
	requestID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	view, err := h.svc.GetRequest(c.Request().Context(), requestID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.ToItemRequestResponse(view.Request, view.Items))
}

func toRequestResponses(views []service.RequestView) []dto.ItemRequestResponse {
	resp := make([]dto.ItemRequestResponse, len(views))
	for i, v := range views {
		resp[i] = dto.ToItemRequestResponse(v.Request, v.Items)
	}
	return resp
}
