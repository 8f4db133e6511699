package handlers

import (
	"errors"

	"uddaan/internal/api/middleware"
	"uddaan/internal/models"
	"uddaan/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService  *services.AuthService
	auditService *services.AuditService
}

func NewAuthHandler(authService *services.AuthService, auditService *services.AuditService) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		auditService: auditService,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	MFACode  string `json:"mfa_code"`
}

type LoginResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    *models.User `json:"user"`
}

// Login authenticates credentials (and the TOTP code when enrolled) and
// issues a bearer token. Every credential failure gets the same message.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Email and password are required"})
		return
	}

	user, err := h.authService.Authenticate(req.Email, req.Password, req.MFACode)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMFARequired):
			c.JSON(200, gin.H{"success": false, "message": "MFA code required", "requires_mfa": true})
		case errors.Is(err, services.ErrInvalidMFACode):
			c.JSON(401, gin.H{"success": false, "message": "Invalid MFA code"})
		case errors.Is(err, services.ErrInvalidCredentials):
			c.JSON(401, gin.H{"success": false, "message": "Invalid credentials"})
		default:
			c.JSON(500, gin.H{"success": false, "message": "Server error"})
		}
		return
	}

	token, _, err := h.authService.GenerateToken(user)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to generate token"})
		return
	}

	userID := user.ID
	h.auditService.Record(&userID, models.AuditActionLogin, "User", "", "",
		c.ClientIP(), c.GetHeader("User-Agent"))

	c.JSON(200, LoginResponse{
		Success: true,
		Message: "Login successful",
		Token:   token,
		User:    user,
	})
}

// Logout records the audited logout; the stateless token is discarded
// client-side.
func (h *AuthHandler) Logout(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(401, gin.H{"success": false, "message": "Authentication required"})
		return
	}

	userID := user.ID
	h.auditService.Record(&userID, models.AuditActionLogout, "User", "", "",
		c.ClientIP(), c.GetHeader("User-Agent"))

	c.JSON(200, gin.H{"success": true, "message": "Logged out successfully"})
}

// GetMe returns the authenticated user
func (h *AuthHandler) GetMe(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(401, gin.H{"success": false, "message": "Authentication required"})
		return
	}

	c.JSON(200, gin.H{"success": true, "user": user})
}

// MFASetup generates a fresh TOTP enrollment for the authenticated user. The
// secret is not stored until verified.
func (h *AuthHandler) MFASetup(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(401, gin.H{"success": false, "message": "Authentication required"})
		return
	}

	secret, url, err := h.authService.GenerateMFASecret(user.Email)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to generate MFA secret"})
		return
	}

	c.JSON(200, gin.H{"success": true, "secret": secret, "otpauth_url": url})
}

type MFAVerifyRequest struct {
	Secret string `json:"secret" binding:"required"`
	Code   string `json:"code" binding:"required"`
}

// MFAVerify checks the submitted code against the pending secret and enables
// the second factor.
func (h *AuthHandler) MFAVerify(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(401, gin.H{"success": false, "message": "Authentication required"})
		return
	}

	var req MFAVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Secret and code are required"})
		return
	}

	if err := h.authService.EnableMFA(user.ID, req.Secret, req.Code); err != nil {
		if errors.Is(err, services.ErrInvalidMFACode) {
			c.JSON(400, gin.H{"success": false, "message": "Invalid MFA code"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to enable MFA"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "MFA enabled successfully"})
}
