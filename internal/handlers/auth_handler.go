package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/student-service/internal/models"
	"github.com/SAP-F-2025/student-service/internal/services"
	"github.com/SAP-F-2025/student-service/internal/utils"
)

type AuthHandler struct {
	BaseHandler
	service services.AuthService
}

func NewAuthHandler(service services.AuthService, logger utils.Logger) *AuthHandler {
	return &AuthHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// Signup registers a new user
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse "Email already registered or invalid body"
// @Router /signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	h.LogRequest(c, "Signing up user")

	var req models.SignupRequest
	if !h.bindJSON(c, &req) {
		return
	}

	if _, err := h.service.Signup(c.Request.Context(), &req); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "User registered successfully"})
}

// Login authenticates a user and returns a bearer token
// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} models.TokenResponse
// @Failure 400 {object} ErrorResponse "Invalid credentials"
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	h.LogRequest(c, "Logging in user")

	var req models.LoginRequest
	if !h.bindJSON(c, &req) {
		return
	}

	token, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, token)
}

// GetProfile returns the authenticated user's profile
// @Summary Get own profile
// @Tags profile
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /profile/me [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	h.LogRequest(c, "Getting profile")

	user, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "user not authenticated"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// ChangePassword updates the authenticated user's password
// @Summary Change own password
// @Tags profile
// @Accept json
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse "Current password is incorrect"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /profile/password [put]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	h.LogRequest(c, "Changing password")

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "user not authenticated"})
		return
	}

	var req models.PasswordChangeRequest
	if !h.bindJSON(c, &req) {
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), userID.(uint), &req); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Password changed successfully"})
}
