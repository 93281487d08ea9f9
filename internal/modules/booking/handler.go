package booking

import (
	"errors"
	"fmt"
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

// RegisterRoutes mounts the lifecycle endpoints. Customer-side operations
// live under /services, worker-side under /workers, matching the public API.
func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	customer := middleware.RequireRole(string(domain.RoleCustomer))
	worker := middleware.RequireRole(string(domain.RoleWorker))

	services := protected.Group("/services")
	{
		services.POST("/:id/book", customer, h.Create)
		services.GET("/bookings/me", h.ListMine)
		services.PUT("/bookings/:id/cancel", h.Cancel)
		services.PUT("/bookings/:id/rate", customer, h.Rate)
	}

	workers := protected.Group("/workers")
	{
		workers.GET("/bookings/me", worker, h.ListAssigned)
		workers.PUT("/bookings/:id/claim", worker, h.Claim)
		workers.PUT("/bookings/:id/status", worker, h.UpdateStatus)
	}
}

// Create books a service for the authenticated customer.
func (h *Handler) Create(c *gin.Context) {
	serviceID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid service ID")
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	b, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), serviceID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrServiceGone):
			response.Error(c, http.StatusNotFound, "Service not found")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "Invalid booking data")
		default:
			response.Error(c, http.StatusInternalServerError, "Server error")
		}
		return
	}

	response.Success(c, http.StatusCreated, b)
}

// ListMine returns the authenticated customer's bookings.
func (h *Handler) ListMine(c *gin.Context) {
	details, err := h.service.ListForCustomer(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Server error")
		return
	}

	response.List(c, http.StatusOK, len(details), details)
}

// ListAssigned returns bookings assigned to the authenticated worker.
func (h *Handler) ListAssigned(c *gin.Context) {
	details, err := h.service.ListForWorker(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		if errors.Is(err, ErrWorkerProfile) {
			response.Error(c, http.StatusNotFound, "Worker profile not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Server error")
		return
	}

	response.List(c, http.StatusOK, len(details), details)
}

// Claim assigns the authenticated worker to a pending booking.
func (h *Handler) Claim(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid booking ID")
		return
	}

	b, err := h.service.Claim(c.Request.Context(), id, c.GetInt64("user_id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Booking not found")
		case errors.Is(err, ErrWorkerProfile):
			response.Error(c, http.StatusNotFound, "Worker profile not found")
		case errors.Is(err, ErrNotAssignable):
			response.Error(c, http.StatusBadRequest, "Booking is already assigned or not pending")
		default:
			response.Error(c, http.StatusInternalServerError, "Server error")
		}
		return
	}

	response.SuccessMessage(c, http.StatusOK, "Booking assigned", b)
}

// UpdateStatus advances an assigned booking's status.
func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid booking ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Please provide a valid status")
		return
	}

	b, err := h.service.AdvanceStatus(c.Request.Context(), id, c.GetInt64("user_id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Booking not found")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "Please provide a valid status")
		case errors.Is(err, ErrAlreadyFinal):
			response.Error(c, http.StatusBadRequest, "Booking is already final")
		case errors.Is(err, ErrNoWorker):
			response.Error(c, http.StatusBadRequest, "Booking has no assigned worker")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "Not authorized to update this booking")
		default:
			response.Error(c, http.StatusInternalServerError, "Server error")
		}
		return
	}

	response.SuccessMessage(c, http.StatusOK, fmt.Sprintf("Booking status updated to %s", b.Status), b)
}

// Cancel moves a booking to cancelled; owning customer or admin only.
func (h *Handler) Cancel(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid booking ID")
		return
	}

	b, err := h.service.Cancel(c.Request.Context(), id, c.GetInt64("user_id"), c.GetString("role"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Booking not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "Not authorized to cancel this booking")
		case errors.Is(err, ErrAlreadyFinal):
			response.Error(c, http.StatusBadRequest, "Booking cannot be cancelled as it is already final")
		default:
			response.Error(c, http.StatusInternalServerError, "Server error")
		}
		return
	}

	response.SuccessMessage(c, http.StatusOK, "Booking cancelled successfully", b)
}

// Rate attaches a rating and review to a completed booking.
func (h *Handler) Rate(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid booking ID")
		return
	}

	var req RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Please provide a valid rating between 1 and 5")
		return
	}

	b, err := h.service.Rate(c.Request.Context(), id, c.GetInt64("user_id"), req.Rating, req.Review)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Booking not found")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "Please provide a valid rating between 1 and 5")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "Not authorized to rate this booking")
		case errors.Is(err, ErrNotCompleted):
			response.Error(c, http.StatusBadRequest, "Can only rate completed bookings")
		case errors.Is(err, ErrAlreadyRated):
			response.Error(c, http.StatusBadRequest, "Booking has already been rated")
		default:
			response.Error(c, http.StatusInternalServerError, "Server error")
		}
		return
	}

	response.SuccessMessage(c, http.StatusOK, "Rating submitted successfully", b)
}
