package app

import (
	"net/http"

	"yuletide/internal/config"
	"yuletide/internal/handlers"
	"yuletide/internal/middleware"
	"yuletide/internal/service"

	_ "yuletide/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Route is one line of the startup banner.
type Route struct {
	Method      string
	Path        string
	Description string
}

// APIRoutes lists the public API in registration order.
var APIRoutes = []Route{
	{http.MethodGet, "/api/gifts", "Get all gifts"},
	{http.MethodGet, "/api/gifts/:id", "Get single gift"},
	{http.MethodPost, "/api/gifts", "Create gift"},
	{http.MethodPut, "/api/gifts/:id", "Update gift"},
	{http.MethodDelete, "/api/gifts/:id", "Delete gift"},
	{http.MethodGet, "/api/health", "Health check"},
}

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, svc *service.GiftService) {
	r.GET("/", rootHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(http.StatusFound, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	api := r.Group("/api", middleware.RequestID())
	api.GET("/health", handlers.Health)

	giftHandler := handlers.NewGiftHandler(svc)
	registerGiftRoutes(api, giftHandler)
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "Yuletide API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/api/health",
			"api":     "/api",
		})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load API docs"})
			return
		}
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
	}
}

func registerGiftRoutes(api *gin.RouterGroup, h *handlers.GiftHandler) {
	api.GET("/gifts", h.List)
	api.GET("/gifts/:id", h.GetByID)
	api.POST("/gifts", h.Create)
	api.PUT("/gifts/:id", h.Update)
	api.DELETE("/gifts/:id", h.Delete)
}
