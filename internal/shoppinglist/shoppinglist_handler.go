package shoppinglist

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"quickybite-service/internal/middleware"
	"quickybite-service/pkg/response"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// @Summary Get the shopping list
// @Tags shopping-list
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ShoppingListItem
// @Router /shopping-list [get]
func (h *Handler) Get(c *gin.Context) {
	items, err := h.service.GetItems(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Add a shopping list item
// @Tags shopping-list
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddItemRequest true "Item"
// @Success 201 {array} ShoppingListItem
// @Failure 400 {object} map[string]string
// @Router /shopping-list/item [post]
func (h *Handler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	items, err := h.service.AddItem(c.Request.Context(), middleware.UserID(c), &req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusCreated, items)
}

// @Summary Toggle an item's completion
// @Tags shopping-list
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param itemId path string true "Item ID"
// @Param request body SetCompletedRequest true "Completion flag"
// @Success 200 {array} ShoppingListItem
// @Failure 404 {object} map[string]string
// @Router /shopping-list/item/{itemId} [put]
func (h *Handler) SetCompleted(c *gin.Context) {
	var req SetCompletedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	items, err := h.service.SetCompleted(c.Request.Context(), middleware.UserID(c), c.Param("itemId"), *req.IsCompleted)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Remove an item
// @Tags shopping-list
// @Produce json
// @Security BearerAuth
// @Param itemId path string true "Item ID"
// @Success 200 {array} ShoppingListItem
// @Failure 404 {object} map[string]string
// @Router /shopping-list/item/{itemId} [delete]
func (h *Handler) RemoveItem(c *gin.Context) {
	items, err := h.service.RemoveItem(c.Request.Context(), middleware.UserID(c), c.Param("itemId"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	if errors.Is(err, ErrItemNotFound) {
		response.Error(c, http.StatusNotFound, "Item not found")
		return
	}
	response.Error(c, http.StatusInternalServerError, err.Error())
}

// RegisterRoutes mounts the shopping list endpoints on an authenticated
// group.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	list := r.Group("/shopping-list")
	{
		list.GET("", h.Get)
		list.POST("/item", h.AddItem)
		list.PUT("/item/:itemId", h.SetCompleted)
		list.DELETE("/item/:itemId", h.RemoveItem)
	}
}
