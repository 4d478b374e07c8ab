package dto

// VideoSummary is a denormalized video row for listing.
type VideoSummary struct {
	ID          uint64 `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Likes       int64  `json:"likes"`
	Uploader    string `json:"uploader"`
}

// CommentItem is a denormalized comment row for listing.
type CommentItem struct {
	ID        uint64 `json:"id"`
	User      string `json:"user"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}
