package handlers

import (
	"errors"
	"net/http"

	"github.com/Haris-56/coupon/pkg/auth"
	"github.com/Haris-56/coupon/pkg/models"
	"github.com/Haris-56/coupon/pkg/repository"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	users  repository.UserRepo
	tokens *auth.TokenService
}

func NewAuthHandler(users repository.UserRepo, tokens *auth.TokenService) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens}
}

// Login exchanges email and password for a signed session token. Unknown
// email and wrong password produce the same response.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithField("error", err).Warn("Login: Invalid request body")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	user, err := h.users.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			logrus.WithField("email", req.Email).Warn("Login: Unknown email")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		logrus.WithError(err).Error("Login: Failed to look up user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
		return
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		logrus.WithField("email", req.Email).Warn("Login: Wrong password")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := h.tokens.Generate(user.ID.Hex(), user.Role)
	if err != nil {
		logrus.WithError(err).Error("Login: Failed to sign token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"_id":   user.ID.Hex(),
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}
