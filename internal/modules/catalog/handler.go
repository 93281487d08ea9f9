package catalog

import (
	"errors"
	"net/http"
	"strconv"

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

func (h *Handler) RegisterPublicRoutes(api *gin.RouterGroup) {
	services := api.Group("/services")
	{
		services.GET("", h.List)
		services.GET("/:id", h.Get)
	}
}

func (h *Handler) RegisterAdminRoutes(protected *gin.RouterGroup) {
	services := protected.Group("/services")
	services.Use(middleware.AdminOnly())
	{
		services.POST("", h.Create)
		services.PUT("/:id", h.Update)
		services.DELETE("/:id", h.Deactivate)
	}
}

// List returns active services, filterable by category and popularity.
func (h *Handler) List(c *gin.Context) {
	category := c.Query("category")
	popular := c.Query("popular") == "true"

	services, err := h.service.List(c.Request.Context(), category, popular)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "Invalid category")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Server error")
		return
	}

	response.List(c, http.StatusOK, len(services), services)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid service ID")
		return
	}

	svc, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Service not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Server error")
		return
	}

	response.Success(c, http.StatusOK, svc)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	svc, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "Invalid service data")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Server error")
		return
	}

	response.Success(c, http.StatusCreated, svc)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid service ID")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	svc, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Service not found")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "Invalid service data")
		default:
			response.Error(c, http.StatusInternalServerError, "Server error")
		}
		return
	}

	response.Success(c, http.StatusOK, svc)
}

func (h *Handler) Deactivate(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid service ID")
		return
	}

	if err := h.service.Deactivate(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Service not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Server error")
		return
	}

	response.SuccessMessage(c, http.StatusOK, "Service deactivated successfully", nil)
}
