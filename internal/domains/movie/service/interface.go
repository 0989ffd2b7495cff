package service

import (
	"context"

	"github.com/google/uuid"

	"movie-catalog-backend/internal/domains/movie"
	"movie-catalog-backend/internal/domains/movie/model"
)

// ServiceInterface is the movie business-logic contract. Mutating
// operations take the caller's role and fail with movie.ErrForbidden for
// anyone but an admin.
type ServiceInterface interface {
	List(ctx context.Context, filter movie.ListFilter) (*movie.ListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Movie, error)
	Create(ctx context.Context, role string, req *movie.CreateMovieRequest) (*model.Movie, error)
	CreateByImdbID(ctx context.Context, role, imdbID string) (*model.Movie, error)
	Update(ctx context.Context, role string, id uuid.UUID, req *movie.UpdateMovieRequest) (*model.Movie, error)
	Delete(ctx context.Context, role string, id uuid.UUID) error
}
