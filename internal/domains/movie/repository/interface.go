package repository

import (
	"context"

	"github.com/google/uuid"

	"movie-catalog-backend/internal/domains/movie"
	"movie-catalog-backend/internal/domains/movie/model"
)

// RepositoryInterface is the movie data-access contract.
type RepositoryInterface interface {
	// Create inserts a movie and returns it with generated id and
	// timestamps. Returns movie.ErrMovieExists on a duplicate imdbId.
	Create(ctx context.Context, m *model.Movie) (*model.Movie, error)

	// GetByID returns movie.ErrMovieNotFound when no record matches.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Movie, error)

	// GetByImdbID returns movie.ErrMovieNotFound when no record matches.
	GetByImdbID(ctx context.Context, imdbID string) (*model.Movie, error)

	// List returns one page ordered by creation time descending plus the
	// total item count for the filter.
	List(ctx context.Context, filter movie.ListFilter) ([]model.Movie, int64, error)

	// Update applies the submitted fields in place. Returns
	// movie.ErrMovieNotFound when zero rows were affected.
	Update(ctx context.Context, id uuid.UUID, req *movie.UpdateMovieRequest) error

	// UpdateRating refreshes imdbRating and boxOffice only; used by the
	// background rating refresh job.
	UpdateRating(ctx context.Context, id uuid.UUID, rating float64, boxOffice string) error

	// Delete removes a movie. Returns movie.ErrMovieNotFound when zero
	// rows were affected.
	Delete(ctx context.Context, id uuid.UUID) error
}
