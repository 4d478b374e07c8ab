package service

import (
	"ClipHub/internal/dto"
	"ClipHub/internal/mq"
	"ClipHub/internal/repo"
	"ClipHub/internal/storage"
	"ClipHub/model"
	"ClipHub/utils"
	"context"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"strings"

	"gorm.io/gorm"
)

// UploadVideo runs the two-phase upload pipeline: validate, then
// authenticate, then persist the bytes, then commit the catalog row.
// The file is written before the metadata so a catalog row only ever
// references media that exists; a failure between the two phases
// strands an orphaned object, never dangling metadata.
func UploadVideo(ctx context.Context, title, description, token string, file *multipart.FileHeader) (uint64, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(description) == "" {
		return 0, fmt.Errorf("title and description cannot be empty: %w", ErrInvalidInput)
	}
	if file == nil {
		return 0, fmt.Errorf("no file uploaded: %w", ErrInvalidInput)
	}

	user, err := utils.Auth.Verify(token)
	if err != nil {
		return 0, ErrUnauthorized
	}

	src, err := file.Open()
	if err != nil {
		return 0, fmt.Errorf("open upload: %w", ErrInvalidInput)
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	locator, err := storage.Default.Put(ctx, file.Filename, src, file.Size, storage.PutOptions{
		ContentType: contentType,
	})
	if err != nil {
		return 0, fmt.Errorf("persist media: %v: %w", err, ErrStorage)
	}

	video := model.Video{
		Title:       title,
		Description: description,
		ObjectName:  locator,
		UploaderID:  user.ID,
	}
	if err := repo.Db.Create(&video).Error; err != nil {
		// The stored object is now an orphan; a reaper can collect it later.
		log.Printf("create video record failed, orphaned object %s: %v", locator, err)
		return 0, err
	}
	return video.ID, nil
}

// ListVideos returns every video joined with its uploader's username.
// Order is whatever the database yields and is not a contract.
func ListVideos() ([]dto.VideoSummary, error) {
	videos := make([]dto.VideoSummary, 0)
	err := repo.Db.Table("videos").
		Select("videos.id, videos.title, videos.description, videos.likes, users.user_name AS uploader").
		Joins("JOIN users ON users.id = videos.uploader_id").
		Scan(&videos).Error
	if err != nil {
		return nil, err
	}
	return videos, nil
}

// GetVideo returns a video by ID.
func GetVideo(id uint64) (*model.Video, error) {
	var video model.Video
	if err := repo.Db.First(&video, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &video, nil
}

// DeleteVideo removes a video's catalog row, owner only, and schedules
// removal of the backing media object. The media removal is
// fire-and-forget: its failure never rolls back the metadata delete.
// Like and comment rows are left in place (see DESIGN.md).
func DeleteVideo(ctx context.Context, id uint64, token string) error {
	user, err := utils.Auth.Verify(token)
	if err != nil {
		return ErrUnauthorized
	}

	video, err := GetVideo(id)
	if err != nil {
		return err
	}
	if video.UploaderID != user.ID {
		return ErrForbidden
	}

	if err := repo.Db.Delete(&model.Video{}, id).Error; err != nil {
		return err
	}

	scheduleMediaCleanup(ctx, video.ObjectName)
	return nil
}

// scheduleMediaCleanup hands the locator to the cleanup queue, falling
// back to an in-process best-effort removal when the broker is down.
func scheduleMediaCleanup(ctx context.Context, locator string) {
	if err := mq.PublishCleanup(ctx, locator); err == nil {
		return
	}
	if err := storage.Default.Remove(ctx, locator); err != nil {
		log.Printf("remove media object %s failed: %v", locator, err)
	}
}
