package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func uploadTestVideo(t *testing.T, owner string) uint64 {
	t.Helper()
	id, err := UploadVideo(context.Background(), "T", "D", owner, makeFileHeader(t, "c.mp4", []byte("x")))
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	return id
}

// TestToggleLikeIsItsOwnInverse checks two toggles restore the
// original state and the counter follows the rows.
func TestToggleLikeIsItsOwnInverse(t *testing.T) {
	cleanTables(t)
	mustRegister(t, "alice")
	id := uploadTestVideo(t, "alice")

	likes, liked, err := ToggleLike(context.Background(), id, "alice")
	if err != nil {
		t.Fatalf("first toggle failed: %v", err)
	}
	if !liked || likes != 1 {
		t.Fatalf("expect liked=true likes=1, got %v %d", liked, likes)
	}

	likes, liked, err = ToggleLike(context.Background(), id, "alice")
	if err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	if liked || likes != 0 {
		t.Fatalf("expect liked=false likes=0, got %v %d", liked, likes)
	}

	// After N toggles, liked == (N odd).
	for i := 0; i < 5; i++ {
		_, liked, err = ToggleLike(context.Background(), id, "alice")
		if err != nil {
			t.Fatalf("toggle %d failed: %v", i, err)
		}
	}
	if !liked {
		t.Fatal("after an odd number of toggles the video should be liked")
	}
}

// TestToggleLikeErrors checks the failure taxonomy.
func TestToggleLikeErrors(t *testing.T) {
	cleanTables(t)
	mustRegister(t, "alice")
	id := uploadTestVideo(t, "alice")

	if _, _, err := ToggleLike(context.Background(), id, "ghost"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expect ErrUnauthorized, got %v", err)
	}
	if _, _, err := ToggleLike(context.Background(), id+999, "alice"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expect ErrNotFound, got %v", err)
	}
}

// TestToggleLikeConcurrentUsers checks no increment is lost when
// distinct users toggle the same video at once.
func TestToggleLikeConcurrentUsers(t *testing.T) {
	cleanTables(t)
	mustRegister(t, "owner")
	id := uploadTestVideo(t, "owner")

	users := []string{"u1", "u2", "u3", "u4", "u5"}
	for _, u := range users {
		mustRegister(t, u)
	}

	var wg sync.WaitGroup
	errs := make(chan error, len(users))
	for _, u := range users {
		wg.Add(1)
		go func(token string) {
			defer wg.Done()
			if _, _, err := ToggleLike(context.Background(), id, token); err != nil {
				errs <- err
			}
		}(u)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent toggle failed: %v", err)
	}

	video, err := GetVideo(id)
	if err != nil {
		t.Fatalf("GetVideo failed: %v", err)
	}
	if video.Likes != int64(len(users)) {
		t.Fatalf("expect %d likes, got %d", len(users), video.Likes)
	}
}

// TestIsLikedDegradesGracefully checks unknown tokens read as false
// and never error.
func TestIsLikedDegradesGracefully(t *testing.T) {
	cleanTables(t)
	mustRegister(t, "alice")
	id := uploadTestVideo(t, "alice")

	if IsLiked(context.Background(), id, "ghost") {
		t.Fatal("unknown token should read as not liked")
	}
	if IsLiked(context.Background(), id, "") {
		t.Fatal("missing token should read as not liked")
	}

	if _, _, err := ToggleLike(context.Background(), id, "alice"); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if !IsLiked(context.Background(), id, "alice") {
		t.Fatal("liker should read as liked")
	}
}

// TestAddAndListComments checks authorship, ordering data, and the
// fixed timestamp rendering.
func TestAddAndListComments(t *testing.T) {
	cleanTables(t)
	mustRegister(t, "alice")
	mustRegister(t, "bob")
	id := uploadTestVideo(t, "alice")

	if _, err := AddComment(id, "ghost", "hi"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expect ErrUnauthorized, got %v", err)
	}
	if _, err := AddComment(id, "bob", "   "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expect ErrInvalidInput for blank comment, got %v", err)
	}

	if _, err := AddComment(id, "bob", "first!"); err != nil {
		t.Fatalf("add comment failed: %v", err)
	}
	comments, err := ListComments(id)
	if err != nil {
		t.Fatalf("list comments failed: %v", err)
	}
	if len(comments) != 1 {
		t.Fatalf("expect 1 comment, got %d", len(comments))
	}
	comment := comments[0]
	if comment.User != "bob" || comment.Content != "first!" {
		t.Fatalf("unexpected comment %+v", comment)
	}
	if _, err := time.Parse(commentTimeLayout, comment.Timestamp); err != nil {
		t.Fatalf("timestamp %q not in fixed layout: %v", comment.Timestamp, err)
	}
}

// TestDeleteVideoLeavesEngagementRows checks likes and comments stay
// behind when their video goes away.
func TestDeleteVideoLeavesEngagementRows(t *testing.T) {
	cleanTables(t)
	mustRegister(t, "alice")
	id := uploadTestVideo(t, "alice")

	if _, _, err := ToggleLike(context.Background(), id, "alice"); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if _, err := AddComment(id, "alice", "keep me"); err != nil {
		t.Fatalf("comment failed: %v", err)
	}
	if err := DeleteVideo(context.Background(), id, "alice"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	comments, err := ListComments(id)
	if err != nil {
		t.Fatalf("list comments failed: %v", err)
	}
	if len(comments) != 1 {
		t.Fatalf("comments should dangle after video delete, got %d", len(comments))
	}
}
