// Package api exposes the quote engine and the CMS catalog over HTTP: public
// reads and the quote endpoint for the site, admin CRUD for the dashboard.
package api

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"carrent/pkg/logger"
	"carrent/service"
)

func RunServer(port int, svc service.IServiceManager, log logger.ILogger) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	// CORS
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	registerRoutes(r, svc, log)

	log.Info("HTTP API listening", logger.Int("port", port))
	return r.Run(fmt.Sprintf(":%d", port))
}

func registerRoutes(r *gin.Engine, svc service.IServiceManager, log logger.ILogger) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	qh := NewQuoteHandler(svc, log)
	ch := NewCatalogHandler(svc, log)

	apiGroup := r.Group("/api")
	{
		apiGroup.POST("/quote", qh.Quote)
		apiGroup.GET("/catalog", ch.GetCatalog)
		apiGroup.GET("/locations", ch.ListLocations)
		apiGroup.GET("/cars", ch.ListCars)
	}

	admin := r.Group("/api/admin")
	{
		admin.POST("/cars", ch.SaveCarType)
		admin.PUT("/cars/:id/enabled", ch.SetCarTypeEnabled)
		admin.DELETE("/cars/:id", ch.DeleteCarType)

		admin.POST("/locations", ch.SaveLocation)
		admin.DELETE("/locations/:id", ch.DeleteLocation)

		admin.POST("/nationalities", ch.SaveNationality)
		admin.DELETE("/nationalities/:id", ch.DeleteNationality)

		admin.POST("/tours", ch.SaveTourType)
		admin.DELETE("/tours/:id", ch.DeleteTourType)

		admin.PUT("/settings", ch.UpdateSettings)
	}
}
