package worker

import (
	"errors"
	"net/http"
	"strconv"

	"powerlink/internal/domain"
	"powerlink/internal/middleware"
	"powerlink/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes mounts the browsable directory.
func (h *Handler) RegisterPublicRoutes(r *gin.RouterGroup) {
	workers := r.Group("/workers")
	{
		workers.GET("", h.List)
		workers.GET("/:id", h.Get)
	}
}

// RegisterProtectedRoutes mounts the profile management endpoints, all
// restricted to the worker role.
func (h *Handler) RegisterProtectedRoutes(r *gin.RouterGroup) {
	workers := r.Group("/workers", middleware.RequireRole(string(domain.RoleWorker)))
	{
		workers.POST("", h.CreateProfile)
		workers.PUT("", h.UpdateProfile)
		workers.PUT("/availability", h.UpdateAvailability)
		workers.POST("/verification", h.SubmitVerification)
	}
}

// List returns the directory, optionally filtered by category, minimum rating
// and availability.
func (h *Handler) List(c *gin.Context) {
	filter := ListFilter{Category: c.Query("category")}
	if v := c.Query("rating"); v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "Invalid rating filter")
			return
		}
		filter.MinRating = r
	}
	if v := c.Query("available"); v != "" {
		filter.AvailableOnly = v == "true"
	}

	workers, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "Invalid service category")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Server error")
		return
	}

	response.List(c, http.StatusOK, len(workers), workers)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid worker ID")
		return
	}

	w, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Worker not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Server error")
		return
	}

	response.Success(c, http.StatusOK, w)
}

func (h *Handler) CreateProfile(c *gin.Context) {
	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid worker profile data")
		return
	}

	w, err := h.service.CreateProfile(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrProfileExists):
			response.Error(c, http.StatusBadRequest, "Worker profile already exists")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "Invalid service category")
		default:
			response.Error(c, http.StatusInternalServerError, "Server error")
		}
		return
	}

	response.Success(c, http.StatusCreated, w)
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid worker profile data")
		return
	}

	w, err := h.service.UpdateProfile(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoProfile):
			response.Error(c, http.StatusNotFound, "Worker profile not found")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "Invalid service category")
		default:
			response.Error(c, http.StatusInternalServerError, "Server error")
		}
		return
	}

	response.SuccessMessage(c, http.StatusOK, "Profile updated successfully", w)
}

func (h *Handler) UpdateAvailability(c *gin.Context) {
	var req UpdateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid availability data")
		return
	}

	w, err := h.service.UpdateAvailability(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		if errors.Is(err, ErrNoProfile) {
			response.Error(c, http.StatusNotFound, "Worker profile not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Server error")
		return
	}

	response.SuccessMessage(c, http.StatusOK, "Availability updated successfully", w)
}

func (h *Handler) SubmitVerification(c *gin.Context) {
	var req VerificationDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid verification document")
		return
	}

	w, err := h.service.SubmitVerification(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		if errors.Is(err, ErrNoProfile) {
			response.Error(c, http.StatusNotFound, "Worker profile not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Server error")
		return
	}

	response.SuccessMessage(c, http.StatusOK, "Verification documents submitted", w)
}
