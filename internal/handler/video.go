package handler

import (
	"ClipHub/internal/dto"
	"ClipHub/internal/service"
	"ClipHub/internal/storage"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func parseID(raw string) (uint64, error) {
	return strconv.ParseUint(raw, 10, 64)
}

func videoID(c *gin.Context) (uint64, bool) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid video id"})
		return 0, false
	}
	return id, true
}

// Upload stores the media bytes and creates the catalog record.
func Upload(c *gin.Context) {
	var req dto.UploadRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	file, err := c.FormFile("file")
	if err != nil {
		file = nil
	}

	id, err := service.UploadVideo(c.Request.Context(), req.Title, req.Description, req.Token, file)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Video uploaded successfully", "id": id})
}

// ListVideos returns all videos with uploader usernames.
func ListVideos(c *gin.Context) {
	videos, err := service.ListVideos()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, videos)
}

// StreamVideo serves the media bytes of a video.
func StreamVideo(c *gin.Context) {
	id, ok := videoID(c)
	if !ok {
		return
	}
	video, err := service.GetVideo(id)
	if err != nil {
		respondError(c, err)
		return
	}

	object, info, err := storage.Default.Get(c.Request.Context(), video.ObjectName)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "video file not found"})
			return
		}
		respondError(c, err)
		return
	}
	defer object.Close()

	c.DataFromReader(http.StatusOK, info.Size, "video/mp4", object, nil)
}

// DeleteVideo removes a video; only its uploader may do so.
func DeleteVideo(c *gin.Context) {
	id, ok := videoID(c)
	if !ok {
		return
	}
	var req dto.TokenRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	if err := service.DeleteVideo(c.Request.Context(), id, req.Token); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Video deleted successfully"})
}
