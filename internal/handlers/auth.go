package handlers

import (
	"crypto/subtle"
	"net/http"

	"questup-backend/internal/config"
	"questup-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authService: authService, cfg: cfg}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"teacher@school.edu"`
	Password string `json:"password" binding:"required" example:"password123"`
}

type RequestAccessRequest struct {
	Name     string `json:"name" binding:"required,max=255" example:"Ada Lovelace"`
	Email    string `json:"email" binding:"required,email" example:"teacher@school.edu"`
	Password string `json:"password" binding:"required,min=6" example:"password123"`
}

// Login godoc
// @Summary      Login as teacher
// @Description  Authenticate a teacher and return a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login data"
// @Success      200 {object} map[string]interface{}
// @Failure      401 {object} ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	token, teacher, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"teacher": gin.H{"id": teacher.ID, "name": teacher.Name, "email": teacher.Email},
	})
}

// RequestAccess godoc
// @Summary      Request teacher access
// @Description  Submit a teacher account request; an admin must approve it
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RequestAccessRequest true "Request data"
// @Success      201 {object} MessageResponse
// @Failure      409 {object} ErrorResponse
// @Router       /auth/teachers/request-access [post]
func (h *AuthHandler) RequestAccess(c *gin.Context) {
	var req RequestAccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.authService.RequestAccess(req.Name, req.Email, req.Password); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, MessageResponse{Success: true, Message: "access request submitted successfully"})
}

// AdminLogin godoc
// @Summary      Login as admin
// @Description  Exchange admin credentials for the admin secret
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Admin credentials"
// @Success      200 {object} map[string]interface{}
// @Failure      401 {object} ErrorResponse
// @Router       /auth/teachers/admin/login [post]
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	emailOK := subtle.ConstantTimeCompare([]byte(req.Email), []byte(h.cfg.AdminEmail))
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.cfg.AdminPassword))
	if emailOK&passOK != 1 {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid admin credentials"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": h.cfg.AdminSecret})
}
