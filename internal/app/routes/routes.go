package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/osahenru/uniportal/internal/app/controllers"
	"github.com/osahenru/uniportal/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	newsController *controllers.NewsController,
	eventController *controllers.EventController,
	galleryController *controllers.GalleryController,
	mediaController *controllers.MediaController,
	organizationController *controllers.OrganizationController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	v1.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.Refresh)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", authController.Logout)
		authenticated.GET("/auth/me", authController.Me)

		news := authenticated.Group("/news")
		{
			news.GET("", newsController.ListNews)
			news.POST("", newsController.CreateNews)
			news.GET("/slug/:slug", newsController.GetNewsBySlug)
			news.GET("/:id", newsController.GetNews)
			news.PUT("/:id", newsController.UpdateNews)
			news.DELETE("/:id", newsController.DeleteNews)
		}

		events := authenticated.Group("/events")
		{
			events.GET("", eventController.ListEvents)
			events.POST("", eventController.CreateEvent)
			events.GET("/:id", eventController.GetEvent)
			events.PUT("/:id", eventController.UpdateEvent)
			events.DELETE("/:id", eventController.DeleteEvent)
		}

		gallery := authenticated.Group("/gallery")
		{
			gallery.GET("", galleryController.ListGallery)
			gallery.POST("", galleryController.CreateGalleryItem)
			gallery.GET("/:id", galleryController.GetGalleryItem)
			gallery.PUT("/:id", galleryController.UpdateGalleryItem)
			gallery.DELETE("/:id", galleryController.DeleteGalleryItem)
		}

		media := authenticated.Group("/media")
		{
			media.GET("", mediaController.ListMedia)
			media.POST("", mediaController.UploadMedia)
			media.GET("/:id", mediaController.GetMedia)
			media.DELETE("/:id", mediaController.DeleteMedia)
		}

		organization := authenticated.Group("/organization/:type")
		{
			organization.GET("", organizationController.GetChart)
			organization.POST("/sections", organizationController.CreateSection)
			organization.PUT("/sections/:id", organizationController.UpdateSection)
			organization.DELETE("/sections/:id", organizationController.DeleteSection)
			organization.POST("/sections/:id/members", organizationController.CreateMember)
			organization.PUT("/sections/:id/members/:memberId", organizationController.UpdateMember)
			organization.DELETE("/sections/:id/members/:memberId", organizationController.DeleteMember)
		}
	}
}
