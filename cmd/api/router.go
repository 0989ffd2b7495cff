package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"movie-catalog-backend/internal/shared/middleware"
	"movie-catalog-backend/pkg/container"
)

// SetupRouter builds the HTTP surface. Reads are open; mutating routes go
// through the auth middleware, which attaches the caller's role for the
// service-level admin check.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	router.GET("/health", healthCheckHandler(c))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(
		c.Registry,
		promhttp.HandlerOpts{},
	)))

	auth := middleware.AuthMiddleware(c.Config.JWT.Secret)

	router.GET("/get", c.MovieHandler.GetAll)
	router.GET("/get/:id", c.MovieHandler.GetByID)
	router.POST("/add", auth, c.MovieHandler.Create)
	router.POST("/add-imdb", auth, c.MovieHandler.CreateByImdbID)
	router.PUT("/update/:id", auth, c.MovieHandler.Update)
	router.DELETE("/delete/:id", auth, c.MovieHandler.Delete)

	return router
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
			}
		}

		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		// Redis is optional (read cache only); the database is not.
		statusCode := http.StatusOK
		if dbStatus != "ok" {
			health["status"] = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
