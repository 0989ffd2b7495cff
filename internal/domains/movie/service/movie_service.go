package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"movie-catalog-backend/internal/domains/movie"
	"movie-catalog-backend/internal/domains/movie/model"
	"movie-catalog-backend/internal/domains/movie/repository"
	"movie-catalog-backend/internal/infrastructure/metrics"
	"movie-catalog-backend/internal/infrastructure/omdb"
	"movie-catalog-backend/pkg/logger"
)

// movieService implements ServiceInterface. All collaborators are injected
// as interfaces so tests can fake the store, the provider and the counter.
type movieService struct {
	repo     repository.RepositoryInterface
	provider omdb.Client
	recorder metrics.Recorder
	omdbKey  string
}

// NewMovieService creates a movie service instance.
func NewMovieService(
	repo repository.RepositoryInterface,
	provider omdb.Client,
	recorder metrics.Recorder,
	omdbKey string,
) ServiceInterface {
	return &movieService{
		repo:     repo,
		provider: provider,
		recorder: recorder,
		omdbKey:  omdbKey,
	}
}

// List returns one page of the catalog, newest first. Invalid page and size
// inputs are clamped to defaults rather than rejected.
func (s *movieService) List(ctx context.Context, filter movie.ListFilter) (*movie.ListResponse, error) {
	if filter.Page <= 0 {
		filter.Page = movie.DefaultPage
	}
	if filter.Size <= 0 {
		filter.Size = movie.DefaultPageSize
	}

	movies, total, err := s.repo.List(ctx, filter)
	if err != nil {
		logger.ErrorWith("Error retrieving movies", err, map[string]interface{}{
			"operation": "list",
		})
		return nil, err
	}

	totalPages := int((total + int64(filter.Size) - 1) / int64(filter.Size))

	return &movie.ListResponse{
		TotalItems:  total,
		TotalPages:  totalPages,
		CurrentPage: filter.Page,
		PageSize:    filter.Size,
		Movies:      movies,
	}, nil
}

func (s *movieService) GetByID(ctx context.Context, id uuid.UUID) (*model.Movie, error) {
	if id == uuid.Nil {
		return nil, movie.ErrMovieNotFound
	}

	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, movie.ErrMovieNotFound) {
			logger.ErrorWith("Error retrieving movie", err, map[string]interface{}{
				"operation": "get",
				"id":        id.String(),
			})
		}
		return nil, err
	}
	return m, nil
}

// Create persists a manually submitted movie.
func (s *movieService) Create(ctx context.Context, role string, req *movie.CreateMovieRequest) (*model.Movie, error) {
	if !movie.IsAuthorized(role, movie.RoleAdmin) {
		return nil, movie.ErrForbidden
	}

	if err := req.Validate(); err != nil {
		return nil, &movie.ValidationError{Message: err.Error()}
	}

	created, err := s.repo.Create(ctx, req.ToModel())
	if err != nil {
		logger.ErrorWith("Error creating movie", err, map[string]interface{}{
			"operation": "create",
			"imdbId":    req.ImdbID,
		})
		return nil, err
	}

	s.recorder.MovieCreated(metrics.SourceDirect)

	return created, nil
}

// CreateByImdbID imports a movie from the external metadata provider.
// Each step short-circuits: dedup before the external call, the external
// call before the write, the write before the counter increment.
func (s *movieService) CreateByImdbID(ctx context.Context, role, imdbID string) (*model.Movie, error) {
	if !movie.IsAuthorized(role, movie.RoleAdmin) {
		return nil, movie.ErrForbidden
	}

	imdbID = strings.TrimSpace(imdbID)
	if imdbID == "" {
		return nil, movie.ErrImdbIDRequired
	}

	// Dedup: at most one record per external id ever comes through this
	// path. The imdb_id unique constraint backs this check up.
	_, err := s.repo.GetByImdbID(ctx, imdbID)
	if err == nil {
		return nil, movie.ErrMovieExists
	}
	if !errors.Is(err, movie.ErrMovieNotFound) {
		logger.ErrorWith("Error checking for existing movie", err, map[string]interface{}{
			"operation": "create-by-imdb",
			"imdbId":    imdbID,
		})
		return nil, fmt.Errorf("failed to check for existing movie: %w", err)
	}

	// Operator misconfiguration, not a caller error.
	if s.omdbKey == "" {
		logger.Error("OMDB API key is not configured", movie.ErrProviderNotConfigured)
		return nil, movie.ErrProviderNotConfigured
	}

	result, err := s.provider.Lookup(ctx, s.omdbKey, imdbID)
	if err != nil {
		logger.ErrorWith("Error calling external movie provider", err, map[string]interface{}{
			"operation": "create-by-imdb",
			"imdbId":    imdbID,
		})
		if errors.Is(err, omdb.ErrUnavailable) {
			return nil, movie.ErrProviderUnavailable
		}
		return nil, err
	}

	if !result.Found() {
		return nil, &movie.ProviderNotFoundError{Message: result.Error}
	}

	req := TranslateLookup(result)
	if err := req.Validate(); err != nil {
		return nil, &movie.ValidationError{Message: err.Error()}
	}

	created, err := s.repo.Create(ctx, req.ToModel())
	if err != nil {
		logger.ErrorWith("Error creating movie by IMDb ID", err, map[string]interface{}{
			"operation": "create-by-imdb",
			"imdbId":    imdbID,
		})
		return nil, err
	}

	// Fire-and-forget, non-transactional with the write.
	s.recorder.MovieCreated(metrics.SourceIMDB)

	return created, nil
}

// Update writes the submitted fields in place and returns the fresh record.
func (s *movieService) Update(ctx context.Context, role string, id uuid.UUID, req *movie.UpdateMovieRequest) (*model.Movie, error) {
	if !movie.IsAuthorized(role, movie.RoleAdmin) {
		return nil, movie.ErrForbidden
	}

	if id == uuid.Nil {
		return nil, movie.ErrMovieNotFound
	}

	if err := req.Validate(); err != nil {
		return nil, &movie.ValidationError{Message: err.Error()}
	}

	// An empty body writes nothing; the read below still 404s for a
	// missing record.
	if req.IsEmpty() {
		return s.repo.GetByID(ctx, id)
	}

	if err := s.repo.Update(ctx, id, req); err != nil {
		if !errors.Is(err, movie.ErrMovieNotFound) {
			logger.ErrorWith("Error updating movie", err, map[string]interface{}{
				"operation": "update",
				"id":        id.String(),
			})
		}
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

func (s *movieService) Delete(ctx context.Context, role string, id uuid.UUID) error {
	if !movie.IsAuthorized(role, movie.RoleAdmin) {
		return movie.ErrForbidden
	}

	if id == uuid.Nil {
		return movie.ErrMovieNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if !errors.Is(err, movie.ErrMovieNotFound) {
			logger.ErrorWith("Error deleting movie", err, map[string]interface{}{
				"operation": "delete",
				"id":        id.String(),
			})
		}
		return err
	}

	return nil
}
