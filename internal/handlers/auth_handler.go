package handlers

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/clientdesk/clientdesk/internal/config"
	"github.com/clientdesk/clientdesk/internal/httperr"
)

type AuthHandler struct {
	config *config.Config
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{config: cfg}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err)
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Same message for unknown email and wrong password.
	if email != strings.ToLower(h.config.AdminEmail) || !h.checkPassword(req.Password) {
		httperr.Unauthorized(c, "Invalid email or password")
		return
	}

	token, err := h.generateToken(email)
	if err != nil {
		httperr.Internal(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	// Tokens are stateless; logout is the client discarding its copy.
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (h *AuthHandler) checkPassword(password string) bool {
	if h.config.AdminPasswordHash != "" {
		return bcrypt.CompareHashAndPassword(
			[]byte(h.config.AdminPasswordHash),
			[]byte(password),
		) == nil
	}
	return subtle.ConstantTimeCompare(
		[]byte(h.config.AdminPassword),
		[]byte(password),
	) == 1
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"email": email,
		"exp":   now.Add(h.config.TokenTTL()).Unix(),
		"iat":   now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
