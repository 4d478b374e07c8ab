package service

import (
	"ClipHub/internal/dto"
	"ClipHub/internal/repo"
	"ClipHub/model"
	"ClipHub/utils"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const commentTimeLayout = "2006-01-02 15:04:05"

// ToggleLike flips the like state for the caller on a video and keeps
// the counter in step, all inside one transaction. The video row is
// locked for the duration so concurrent toggles on the same video
// serialize instead of losing updates; uk_user_video backs this up at
// insert time.
func ToggleLike(ctx context.Context, videoID uint64, token string) (int64, bool, error) {
	user, err := utils.Auth.Verify(token)
	if err != nil {
		return 0, false, ErrUnauthorized
	}

	var likes int64
	var liked bool
	err = repo.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var video model.Video
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&video, videoID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var like model.Like
		lookupErr := tx.Where("user_id = ? AND video_id = ?", user.ID, videoID).First(&like).Error
		switch {
		case lookupErr == nil:
			if err := tx.Delete(&like).Error; err != nil {
				return err
			}
			video.Likes--
			liked = false
		case errors.Is(lookupErr, gorm.ErrRecordNotFound):
			if err := tx.Create(&model.Like{UserID: user.ID, VideoID: videoID}).Error; err != nil {
				return err
			}
			video.Likes++
			liked = true
		default:
			return lookupErr
		}

		if err := tx.Model(&model.Video{}).Where("id = ?", videoID).Update("likes", video.Likes).Error; err != nil {
			return err
		}
		likes = video.Likes
		return nil
	})
	if err != nil {
		return 0, false, err
	}

	utils.SetLikedStatusToCache(ctx, user.ID, videoID, liked)
	return likes, liked, nil
}

// IsLiked reports whether the caller likes the video. It is a display
// hint: an unknown token means false, never an error.
func IsLiked(ctx context.Context, videoID uint64, token string) bool {
	user, err := utils.Auth.Verify(token)
	if err != nil {
		return false
	}

	if liked, ok := utils.GetLikedStatusFromCache(ctx, user.ID, videoID); ok {
		return liked
	}

	var count int64
	if err := repo.Db.Model(&model.Like{}).
		Where("user_id = ? AND video_id = ?", user.ID, videoID).
		Count(&count).Error; err != nil {
		return false
	}
	liked := count > 0
	utils.SetLikedStatusToCache(ctx, user.ID, videoID, liked)
	return liked
}

// AddComment appends an immutable comment; the timestamp comes from
// the server clock at insert time.
func AddComment(videoID uint64, token, content string) (uint64, error) {
	user, err := utils.Auth.Verify(token)
	if err != nil {
		return 0, ErrUnauthorized
	}
	if strings.TrimSpace(content) == "" {
		return 0, fmt.Errorf("comment cannot be empty: %w", ErrInvalidInput)
	}

	comment := model.Comment{
		VideoID: videoID,
		UserID:  user.ID,
		Content: content,
	}
	if err := repo.Db.Create(&comment).Error; err != nil {
		return 0, err
	}
	return comment.ID, nil
}

// ListComments returns a video's comments joined with their authors.
func ListComments(videoID uint64) ([]dto.CommentItem, error) {
	var rows []struct {
		ID        uint64
		User      string
		Content   string
		CreatedAt time.Time
	}
	err := repo.Db.Table("comments").
		Select("comments.id, users.user_name AS user, comments.content, comments.created_at").
		Joins("JOIN users ON users.id = comments.user_id").
		Where("comments.video_id = ?", videoID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	items := make([]dto.CommentItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.CommentItem{
			ID:        row.ID,
			User:      row.User,
			Content:   row.Content,
			Timestamp: row.CreatedAt.Format(commentTimeLayout),
		})
	}
	return items, nil
}
