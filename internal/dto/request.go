package dto

type RegisterRequest struct {
	Username string `form:"username" binding:"required"`
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// UploadRequest carries the form fields of a multipart upload; the
// file part is read separately from the request.
type UploadRequest struct {
	Title       string `form:"title"`
	Description string `form:"description"`
	Token       string `form:"token"`
}

type TokenRequest struct {
	Token string `form:"token"`
}

type CommentRequest struct {
	Token   string `form:"token"`
	Content string `form:"content"`
}
