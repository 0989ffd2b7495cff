package main

import (
	"github.com/hibiken/asynq"

	movieJob "movie-catalog-backend/internal/domains/movie/job"
	"movie-catalog-backend/internal/shared"
	"movie-catalog-backend/pkg/container"
)

// HandlerRegistry holds all job handlers.
type HandlerRegistry struct {
	refreshRatings *movieJob.RefreshRatingsHandler
}

// initializeHandlers creates all job handlers with their dependencies.
func initializeHandlers(c *container.Container) *HandlerRegistry {
	return &HandlerRegistry{
		refreshRatings: movieJob.NewRefreshRatingsHandler(
			c.MovieRepo,
			c.OMDB,
			c.Config.OMDB.APIKey,
		),
	}
}

// RegisterHandlers registers all handlers with the mux.
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(shared.TypeRefreshRatings, h.refreshRatings.ProcessTask)
}
