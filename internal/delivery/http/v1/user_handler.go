package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DrekStyler/handypro-api/internal/delivery/http/response"
	"github.com/DrekStyler/handypro-api/internal/domain"
	"github.com/DrekStyler/handypro-api/pkg/apperror"
)

type UserHandler struct {
	userUC domain.UserUsecase
}

// NewUserHandler registers user profile routes
func NewUserHandler(protected *gin.RouterGroup, userUC domain.UserUsecase) {
	handler := &UserHandler{userUC: userUC}

	protected.POST("/users/me", handler.EnsureProfile)
	protected.GET("/users/me", handler.GetProfile)
}

// EnsureProfileRequest carries the fields chosen during sign-up
type EnsureProfileRequest struct {
	DisplayName string `json:"display_name" binding:"required"`
	Role        string `json:"role" binding:"required,oneof=prime subcontractor"`
	Phone       string `json:"phone" binding:"omitempty,valid_phone"`
	Location    string `json:"location"`
}

// EnsureProfile creates the caller's user document on first sign-in. Idempotent.
func (h *UserHandler) EnsureProfile(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req EnsureProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user := &domain.UserProfile{
		UserID:      userID,
		Email:       c.GetString(string(domain.KeyUserEmail)),
		DisplayName: req.DisplayName,
		Role:        req.Role,
		Phone:       req.Phone,
		Location:    req.Location,
	}

	created, err := h.userUC.EnsureProfile(c.Request.Context(), user)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User profile ready", created)
}

// GetProfile returns the caller's user document
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	user, err := h.userUC.GetProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User profile retrieved", user)
}
