package meal

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

// @Summary Add a meal entry
// @Tags meals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateMealRequest true "Meal fields"
// @Success 201 {object} Meal
// @Failure 400 {object} map[string]string
// @Router /meals [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	m, err := h.service.Create(c.Request.Context(), middleware.UserID(c), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

// @Summary Update a meal entry
// @Tags meals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Meal ID"
// @Param request body UpdateMealRequest true "Fields to change"
// @Success 200 {object} Meal
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /meals/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	var req UpdateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	m, err := h.service.Update(c.Request.Context(), c.Param("id"), middleware.UserID(c), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// @Summary Delete a meal entry
// @Tags meals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Meal ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /meals/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id"), middleware.UserID(c)); err != nil {
		h.writeError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Food entry deleted")
}

// @Summary Meals within an inclusive date range
// @Tags meals
// @Produce json
// @Security BearerAuth
// @Param start query string true "Start date (YYYY-MM-DD)"
// @Param end query string true "End date (YYYY-MM-DD)"
// @Success 200 {array} Meal
// @Failure 400 {object} map[string]string
// @Router /meals/range [get]
func (h *Handler) GetByRange(c *gin.Context) {
	meals, err := h.service.GetByRange(c.Request.Context(), middleware.UserID(c), c.Query("start"), c.Query("end"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, meals)
}

// @Summary Meals in the 7-day window from a start date
// @Tags meals
// @Produce json
// @Security BearerAuth
// @Param startDate path string true "Start date (YYYY-MM-DD)"
// @Success 200 {array} Meal
// @Failure 400 {object} map[string]string
// @Router /meals/week/{startDate} [get]
func (h *Handler) GetByWeek(c *gin.Context) {
	meals, err := h.service.GetByWeek(c.Request.Context(), middleware.UserID(c), c.Param("startDate"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, meals)
}

// @Summary All meals on a calendar day
// @Tags meals
// @Produce json
// @Security BearerAuth
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {array} Meal
// @Failure 400 {object} map[string]string
// @Router /meals/{date} [get]
func (h *Handler) GetByDay(c *gin.Context) {
	meals, err := h.service.GetByDay(c.Request.Context(), middleware.UserID(c), c.Param("date"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, meals)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrMealNotFound):
		response.Error(c, http.StatusNotFound, "Food entry not found")
	case errors.Is(err, ErrInvalidDate), errors.Is(err, ErrInvalidType), errors.Is(err, ErrSlotTaken):
		response.Error(c, http.StatusBadRequest, err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, err.Error())
	}
}

// RegisterRoutes mounts the meal endpoints on an authenticated group. The
// range route is registered before the :date route so "range" never binds
// as a date.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	meals := r.Group("/meals")
	{
		meals.POST("", h.Create)
		meals.GET("/range", h.GetByRange)
		meals.GET("/week/:startDate", h.GetByWeek)
		meals.GET("/:date", h.GetByDay)
		meals.PUT("/:id", h.Update)
		meals.DELETE("/:id", h.Delete)
	}
}
