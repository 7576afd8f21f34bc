package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/yossicon/shareit/internal/dto"
	"github.com/yossicon/shareit/internal/service"
)

type ItemHandler struct {
	svc service.ItemService
}

func NewItemHandler(svc service.ItemService) *ItemHandler {
	return &ItemHandler{svc: svc}
}

func (h *ItemHandler) RegisterRoutes(e *echo.Echo) {
	items := e.Group("/items")
	items.POST("", h.AddItem)
	items.GET("", h.GetUserItems)
	items.GET("/search", h.SearchItems)
	items.GET("/:id", h.GetItem)
	items.PATCH("/:id", h.UpdateItem)
	items.POST("/:id/comment", h.AddComment)
}

func (h *ItemHandler) AddItem(c echo.Context) error {
	ownerID, err := userID(c)
	if err != nil {
		return err
	}

	var req dto.CreateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.svc.AddItem(c.Request().Context(), ownerID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, dto.ToItemResponse(item))
}

func (h *ItemHandler) GetUserItems(c echo.Context) error {
	ownerID, err := userID(c)
	if err != nil {
		return err
	}

	views, err := h.svc.GetUserItems(c.Request().Context(), ownerID)
	if err != nil {
		return httpError(err)
	}

	resp := make([]dto.ItemWithBookingsResponse, len(views))
	for i, v := range views {
		resp[i] = dto.ToItemWithBookingsResponse(v.Item, v.LastBooking, v.NextBooking, v.Comments)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *ItemHandler) GetItem(c echo.Context) error {
	callerID, err := userID(c)
	if err != nil {
		return err
	}
	itemID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	view, err := h.svc.GetItem(c.Request().Context(), callerID, itemID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.ToItemWithBookingsResponse(view.Item, view.LastBooking, view.NextBooking, view.Comments))
}

func (h *ItemHandler) SearchItems(c echo.Context) error {
	items, err := h.svc.SearchItems(c.Request().Context(), c.QueryParam("text"))
	if err != nil {
		return httpError(err)
	}

	resp := make([]dto.ItemResponse, len(items))
	for i, item := range items {
		resp[i] = dto.ToItemResponse(&item)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *ItemHandler) UpdateItem(c echo.Context) error {
	ownerID, err := userID(c)
	if err != nil {
		return err
	}
	itemID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	item, err := h.svc.UpdateItem(c.Request().Context(), ownerID, itemID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.ToItemResponse(item))
}

func (h *ItemHandler) AddComment(c echo.Context) error {
	authorID, err := userID(c)
	if err != nil {
		return err
	}
	itemID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req dto.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.svc.AddComment(c.Request().Context(), authorID, itemID, req.Text)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, dto.ToCommentResponse(comment))
}
