package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-catalog/internal/shared/middleware"
	"library-catalog/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	api := router.Group("/api")
	{
		api.GET("/ping", pingHandler)
		api.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(api, c)
		setupAuthorRoutes(api, c)
		setupPublisherRoutes(api, c)
		setupBookRoutes(api, c)
	}

	return router
}

func setupAuthRoutes(api *gin.RouterGroup, c *container.Container) {
	auth := middleware.AuthMiddleware(c.JWTManager, c.Blocklist)

	api.POST("/register", c.AuthHandler.Register)
	api.POST("/login", c.AuthHandler.Login)
	api.POST("/logout", auth, c.AuthHandler.Logout)
	api.GET("/me", auth, c.AuthHandler.Me)
}

func setupAuthorRoutes(api *gin.RouterGroup, c *container.Container) {
	authors := api.Group("/authors")
	authors.Use(middleware.AuthMiddleware(c.JWTManager, c.Blocklist))
	{
		authors.GET("", c.AuthorHandler.List)
		authors.POST("", c.AuthorHandler.Create)
		authors.GET("/:id", c.AuthorHandler.Get)
		authors.PUT("/:id", c.AuthorHandler.Update)
		authors.DELETE("/:id", c.AuthorHandler.Delete)
	}
}

func setupPublisherRoutes(api *gin.RouterGroup, c *container.Container) {
	publishers := api.Group("/publishers")
	publishers.Use(middleware.AuthMiddleware(c.JWTManager, c.Blocklist))
	{
		publishers.GET("", c.PublisherHandler.List)
		publishers.POST("", c.PublisherHandler.Create)
		publishers.GET("/:id", c.PublisherHandler.Get)
		publishers.PUT("/:id", c.PublisherHandler.Update)
		publishers.DELETE("/:id", c.PublisherHandler.Delete)
	}
}

func setupBookRoutes(api *gin.RouterGroup, c *container.Container) {
	books := api.Group("/books")
	books.Use(middleware.AuthMiddleware(c.JWTManager, c.Blocklist))
	{
		books.GET("", c.BookHandler.List)
		books.POST("", c.BookHandler.Create)
		books.GET("/:id", c.BookHandler.Get)
		books.PUT("/:id", c.BookHandler.Update)
		books.DELETE("/:id", c.BookHandler.Delete)
	}
}

func pingHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "API is reachable",
	})
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"error":  err.Error(),
			})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": c.Config.App.Version,
		})
	}
}
