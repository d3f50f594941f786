package user

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"quickybite-service/internal/middleware"
	"quickybite-service/pkg/response"
)

// PictureUploader stores an uploaded image and returns its public URL.
type PictureUploader interface {
	UploadProfilePicture(ctx context.Context, userID string, file *multipart.FileHeader) (string, error)
}

type Handler struct {
	service  Service
	uploader PictureUploader
}

func NewHandler(service Service, uploader PictureUploader) *Handler {
	return &Handler{service: service, uploader: uploader}
}

// @Summary Register a new user
// @Description Create a new user account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Register Request"
// @Success 201 {object} UserResponse
// @Failure 400 {object} map[string]string
// @Router /auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	u, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrUserAlreadyExists) {
			response.Error(c, http.StatusBadRequest, "User already exists")
			return
		}
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusCreated, u)
}

// @Summary User login
// @Description Authenticate user and return JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login Request"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Get own profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UserResponse
// @Router /users/me [get]
func (h *Handler) GetProfile(c *gin.Context) {
	u, err := h.service.GetProfile(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.Error(c, http.StatusNotFound, "User not found")
		return
	}
	c.JSON(http.StatusOK, u)
}

// @Summary Update own profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "Profile fields"
// @Success 200 {object} UserResponse
// @Failure 400 {object} map[string]string
// @Router /users/me [put]
func (h *Handler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	u, err := h.service.UpdateProfile(c.Request.Context(), middleware.UserID(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "User not found")
		case errors.Is(err, ErrInvalidPronouns):
			response.Error(c, http.StatusBadRequest, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, u)
}

// @Summary Upload profile picture
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param profilePicture formData file true "Image file"
// @Success 200 {object} UserResponse
// @Failure 400 {object} map[string]string
// @Router /users/me/picture [post]
func (h *Handler) UploadProfilePicture(c *gin.Context) {
	file, err := c.FormFile("profilePicture")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "No file uploaded")
		return
	}

	userID := middleware.UserID(c)
	url, err := h.uploader.UploadProfilePicture(c.Request.Context(), userID, file)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to store image")
		return
	}

	u, err := h.service.SetProfilePicture(c.Request.Context(), userID, url)
	if err != nil {
		response.Error(c, http.StatusNotFound, "User not found")
		return
	}

	c.JSON(http.StatusOK, u)
}

// @Summary List users for friend suggestions
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} Profile
// @Router /users [get]
func (h *Handler) ListUsers(c *gin.Context) {
	profiles, err := h.service.ListUsers(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, profiles)
}

// @Summary Delete own account
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Router /users/me [delete]
func (h *Handler) DeleteAccount(c *gin.Context) {
	if err := h.service.DeleteAccount(c.Request.Context(), middleware.UserID(c)); err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.Message(c, http.StatusOK, "Account scheduled for deletion")
}
