package handler

import (
	"ClipHub/internal/dto"
	"ClipHub/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Register creates a user account.
func Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	if err := service.RegisterUser(req.Username, req.Email, req.Password); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User registered successfully"})
}
