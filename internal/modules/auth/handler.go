package auth

import (
	"errors"
	"net/http"

	"powerlink/internal/domain"
	"powerlink/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler manages all HTTP interactions for authentication.
type Handler struct {
	service *Service
	devMode bool
}

// NewHandler creates a new auth handler. In dev mode issued OTP codes are
// echoed in responses instead of relying on SMS delivery.
func NewHandler(service *Service, devMode bool) *Handler {
	return &Handler{
		service: service,
		devMode: devMode,
	}
}

func (h *Handler) RegisterPublicRoutes(api *gin.RouterGroup) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/register-worker", h.RegisterWorker)
		authGroup.POST("/request-otp", h.RequestOTP)
		authGroup.POST("/verify-otp", h.VerifyOTP)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	authGroup := protected.Group("/auth")
	{
		authGroup.GET("/me", h.GetMe)
		authGroup.PUT("/update-profile", h.UpdateProfile)
	}
}

// Register creates a customer account and issues a verification OTP.
func (h *Handler) Register(c *gin.Context) {
	h.register(c, domain.RoleCustomer, "User registered successfully. OTP sent for verification")
}

// RegisterWorker creates a worker account and issues a verification OTP.
func (h *Handler) RegisterWorker(c *gin.Context) {
	h.register(c, domain.RoleWorker, "Worker registered successfully. OTP sent for verification")
}

func (h *Handler) register(c *gin.Context, role domain.UserRole, message string) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	_, code, err := h.service.Register(c.Request.Context(), req, role)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserExists):
			response.Error(c, http.StatusBadRequest, "User already exists")
		case errors.Is(err, ErrSendFailed):
			response.Error(c, http.StatusInternalServerError, "Failed to send OTP")
		default:
			response.Error(c, http.StatusInternalServerError, "Server error")
		}
		return
	}

	body := gin.H{
		"success": true,
		"message": message,
	}
	if h.devMode {
		body["otp"] = code
	}
	c.JSON(http.StatusCreated, body)
}

// RequestOTP issues a login code for a registered mobile number.
func (h *Handler) RequestOTP(c *gin.Context) {
	var req RequestOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Please provide mobile number")
		return
	}

	code, err := h.service.RequestOTP(c.Request.Context(), req.MobileNumber)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "User not found. Please register first")
		case errors.Is(err, ErrSendFailed):
			response.Error(c, http.StatusInternalServerError, "Failed to send OTP")
		default:
			response.Error(c, http.StatusInternalServerError, "Server error")
		}
		return
	}

	body := gin.H{
		"success": true,
		"message": "OTP sent successfully",
	}
	if h.devMode {
		body["otp"] = code
	}
	c.JSON(http.StatusOK, body)
}

// VerifyOTP exchanges a valid code for a signed bearer token.
func (h *Handler) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Please provide mobile number and OTP")
		return
	}

	user, token, err := h.service.VerifyOTP(c.Request.Context(), req.MobileNumber, req.OTP)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "User not found")
		case errors.Is(err, ErrInvalidOTP):
			response.Error(c, http.StatusBadRequest, "Invalid OTP")
		default:
			response.Error(c, http.StatusInternalServerError, "Server error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"token":   token,
		"user":    summarize(user),
	})
}

// GetMe returns the authenticated account without credential fields.
func (h *Handler) GetMe(c *gin.Context) {
	userID := c.GetInt64("user_id")

	user, err := h.service.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Server error")
		return
	}

	response.Success(c, http.StatusOK, user)
}

// UpdateProfile updates name, email and address of the current account.
func (h *Handler) UpdateProfile(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.service.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "User not found")
		case errors.Is(err, ErrUserExists):
			response.Error(c, http.StatusBadRequest, "Email already registered")
		default:
			response.Error(c, http.StatusInternalServerError, "Server error")
		}
		return
	}

	response.SuccessMessage(c, http.StatusOK, "Profile updated successfully", user)
}
