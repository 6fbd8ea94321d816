package handlers

import (
	"crypto/subtle"
	"net/http"

	"restaurant-ops-api/config"
	"restaurant-ops-api/middleware"
	"restaurant-ops-api/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// OwnerLogin checks the single owner credential and returns a JWT
func OwnerLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false})
		return
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(config.Owner.Username)) == 1
	passErr := bcrypt.CompareHashAndPassword(config.Owner.PasswordHash, []byte(req.Password))
	if !userOK || passErr != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false})
		return
	}

	token, err := middleware.GenerateToken(config.Owner.Username, models.RoleOwner)
	if err != nil {
		serverError(c, "Failed to generate token", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}
