package router

import (
	"ClipHub/internal/handler"
	"ClipHub/utils"

	"github.com/gin-gonic/gin"
)

// InitRouter builds API routes.
func InitRouter() *gin.Engine {
	r := gin.Default()
	r.Use(utils.CORSMiddleware())

	r.POST("/register", handler.Register)
	r.POST("/login", handler.Login)

	r.POST("/upload", handler.Upload)
	r.GET("/videos", handler.ListVideos)
	r.GET("/video/:id", handler.StreamVideo)
	r.DELETE("/video/:id", handler.DeleteVideo)

	r.POST("/like/:id", handler.ToggleLike)
	r.POST("/liked/:id", handler.CheckLiked)
	r.GET("/comments/:id", handler.ListComments)
	r.POST("/comment/:id", handler.AddComment)

	return r
}
