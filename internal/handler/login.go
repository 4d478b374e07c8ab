package handler

import (
	"ClipHub/internal/dto"
	"ClipHub/internal/service"
	"ClipHub/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Login verifies credentials and issues a bearer token.
func Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	user, err := service.VerifyCredentials(req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	token, err := utils.Auth.Issue(user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
	})
}
