package routes

import (
	"festival_backend/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathArtists = "/artists"
	PathNews    = "/news"
	PathFAQ     = "/faq"
)

// addContentRoutes serves the site content publicly; every write goes through
// the admin chain.
func addContentRoutes(rg *gin.RouterGroup, artistHandler *handlers.ArtistHandler, newsHandler *handlers.NewsHandler, faqHandler *handlers.FAQHandler, admin ...gin.HandlerFunc) {
	artists := rg.Group(PathArtists)
	{
		artists.GET("", artistHandler.ListArtists)
		artists.GET("/:id", artistHandler.GetArtist)

		edit := artists.Group("", admin...)
		edit.POST("", artistHandler.CreateArtist)
		edit.PUT("/:id", artistHandler.ReplaceArtist)
		edit.DELETE("/:id", artistHandler.DeleteArtist)
	}

	news := rg.Group(PathNews)
	{
		news.GET("", newsHandler.ListNews)
		news.GET("/:id", newsHandler.GetNews)

		edit := news.Group("", admin...)
		edit.POST("", newsHandler.CreateNews)
		edit.PUT("/:id", newsHandler.ReplaceNews)
		edit.DELETE("/:id", newsHandler.DeleteNews)
	}

	faq := rg.Group(PathFAQ)
	{
		faq.GET("", faqHandler.ListFAQ)
		faq.GET("/:id", faqHandler.GetFAQItem)

		edit := faq.Group("", admin...)
		edit.POST("", faqHandler.CreateFAQItem)
		edit.PUT("/:id", faqHandler.ReplaceFAQItem)
		edit.DELETE("/:id", faqHandler.DeleteFAQItem)
	}
}
