package handler

import (
	"ClipHub/internal/dto"
	"ClipHub/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ToggleLike likes or unlikes a video for the caller.
func ToggleLike(c *gin.Context) {
	id, ok := videoID(c)
	if !ok {
		return
	}
	var req dto.TokenRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	likes, liked, err := service.ToggleLike(c.Request.Context(), id, req.Token)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"likes": likes, "liked": liked})
}

// CheckLiked reports whether the caller likes a video. It degrades to
// false on any problem instead of returning an error.
func CheckLiked(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"liked": false})
		return
	}
	var req dto.TokenRequest
	_ = c.ShouldBind(&req)
	liked := service.IsLiked(c.Request.Context(), id, req.Token)
	c.JSON(http.StatusOK, gin.H{"liked": liked})
}

// ListComments returns a video's comments.
func ListComments(c *gin.Context) {
	id, ok := videoID(c)
	if !ok {
		return
	}
	comments, err := service.ListComments(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// AddComment appends a comment to a video.
func AddComment(c *gin.Context) {
	id, ok := videoID(c)
	if !ok {
		return
	}
	var req dto.CommentRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	if _, err := service.AddComment(id, req.Token, req.Content); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment added successfully"})
}
