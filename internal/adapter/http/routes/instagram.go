package routes

import (
	"festival_backend/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathInstagramPosts = "/instagram-posts"
	PathMediaFile      = "/media/file"
)

func addInstagramRoutes(rg *gin.RouterGroup, instagramHandler *handlers.InstagramHandler, mediaHandler *handlers.MediaHandler) {
	rg.GET(PathInstagramPosts, instagramHandler.ListPosts)
	rg.GET(PathMediaFile+"/:filename", mediaHandler.ServeFile)
}
