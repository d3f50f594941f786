package friendship

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

// @Summary Send a friend request
// @Tags friends
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SendRequest true "Target user"
// @Success 201 {object} FriendEdge
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /friends/request [post]
func (h *Handler) SendRequest(c *gin.Context) {
	var req SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid input")
		return
	}

	edge, err := h.service.SendRequest(c.Request.Context(), middleware.UserID(c), req.FriendID)
	if err != nil {
		switch {
		case errors.Is(err, ErrSelfRequest):
			response.Error(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrDuplicateRequest):
			response.Error(c, http.StatusBadRequest, "Friend request already exists")
		case errors.Is(err, ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "User not found")
		default:
			response.Error(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusCreated, edge)
}

// @Summary List pending friend requests, received and sent
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Success 200 {object} RequestsResponse
// @Router /friends/requests [get]
func (h *Handler) ListRequests(c *gin.Context) {
	resp, err := h.service.ListRequests(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Accept or reject a friend request
// @Tags friends
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param requestId path string true "Request ID"
// @Param request body RespondRequest true "accepted or rejected"
// @Success 200 {object} FriendEdge
// @Failure 404 {object} map[string]string
// @Router /friends/request/{requestId} [put]
func (h *Handler) Respond(c *gin.Context) {
	var req RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid input")
		return
	}

	edge, err := h.service.Respond(c.Request.Context(), c.Param("requestId"), middleware.UserID(c), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidStatus):
			response.Error(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrRequestNotFound):
			response.Error(c, http.StatusNotFound, "Friend request not found")
		default:
			response.Error(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, edge)
}

// @Summary List friends
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Success 200 {array} FriendEntry
// @Router /friends/list [get]
func (h *Handler) ListFriends(c *gin.Context) {
	friends, err := h.service.ListFriends(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, friends)
}

// @Summary Remove a friend
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Param friendId path string true "Friend user ID"
// @Success 200 {object} map[string]string
// @Router /friends/remove/{friendId} [delete]
func (h *Handler) RemoveFriend(c *gin.Context) {
	if err := h.service.RemoveFriend(c.Request.Context(), middleware.UserID(c), c.Param("friendId")); err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.Message(c, http.StatusOK, "Friend removed successfully")
}

// RegisterRoutes mounts the friendship endpoints on an authenticated group.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	friends := r.Group("/friends")
	{
		friends.POST("/request", h.SendRequest)
		friends.GET("/requests", h.ListRequests)
		friends.PUT("/request/:requestId", h.Respond)
		friends.GET("/list", h.ListFriends)
		friends.DELETE("/remove/:friendId", h.RemoveFriend)
	}
}
