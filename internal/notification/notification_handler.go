package notification

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

// @Summary Share the app with another registered user
// @Tags notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ShareRequest true "Recipient email and optional message"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /notifications/share [post]
func (h *Handler) Share(c *gin.Context) {
	var req ShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Email is required")
		return
	}

	_, err := h.service.Share(c.Request.Context(), middleware.UserID(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrRecipientNotFound):
			response.Error(c, http.StatusNotFound, "User not found. Only registered users can receive notifications.")
		case errors.Is(err, ErrSelfShare):
			response.Error(c, http.StatusBadRequest, "Cannot share with yourself")
		default:
			response.Error(c, http.StatusInternalServerError, "Error sharing content")
		}
		return
	}

	response.Message(c, http.StatusOK, "Shared successfully")
}

// @Summary List notifications, newest first
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {array} Notification
// @Router /notifications [get]
func (h *Handler) List(c *gin.Context) {
	notifications, err := h.service.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Error fetching notifications")
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// @Summary Unread notification count
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UnreadCountResponse
// @Router /notifications/unread-count [get]
func (h *Handler) UnreadCount(c *gin.Context) {
	count, err := h.service.UnreadCount(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Error counting notifications")
		return
	}
	c.JSON(http.StatusOK, UnreadCountResponse{Unread: count})
}

// @Summary Mark a notification as read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 200 {object} Notification
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /notifications/{id}/read [put]
func (h *Handler) MarkRead(c *gin.Context) {
	n, err := h.service.MarkRead(c.Request.Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, n)
}

// @Summary Mark all notifications as read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Router /notifications/read-all [put]
func (h *Handler) MarkAllRead(c *gin.Context) {
	if err := h.service.MarkAllRead(c.Request.Context(), middleware.UserID(c)); err != nil {
		response.Error(c, http.StatusInternalServerError, "Error updating notifications")
		return
	}
	response.Message(c, http.StatusOK, "All notifications marked as read")
}

// @Summary Delete a notification
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /notifications/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id"), middleware.UserID(c)); err != nil {
		h.writeError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Notification deleted successfully")
}

// @Summary Delete all notifications
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Router /notifications/all [delete]
func (h *Handler) DeleteAll(c *gin.Context) {
	if err := h.service.DeleteAll(c.Request.Context(), middleware.UserID(c)); err != nil {
		response.Error(c, http.StatusInternalServerError, "Error deleting notifications")
		return
	}
	response.Message(c, http.StatusOK, "All notifications deleted successfully")
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotificationNotFound):
		response.Error(c, http.StatusNotFound, "Notification not found")
	case errors.Is(err, ErrNotRecipient):
		response.Error(c, http.StatusForbidden, "Not authorized")
	default:
		response.Error(c, http.StatusInternalServerError, "Error updating notification")
	}
}

// RegisterRoutes mounts the notification endpoints on an authenticated
// group. Fixed paths are registered before the :id routes so "all" and
// "read-all" never bind as ids.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	notifications := r.Group("/notifications")
	{
		notifications.GET("", h.List)
		notifications.GET("/unread-count", h.UnreadCount)
		notifications.POST("/share", h.Share)
		notifications.PUT("/read-all", h.MarkAllRead)
		notifications.PUT("/:id/read", h.MarkRead)
		notifications.DELETE("/all", h.DeleteAll)
		notifications.DELETE("/:id", h.Delete)
	}
}
