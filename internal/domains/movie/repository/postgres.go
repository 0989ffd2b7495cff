package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"movie-catalog-backend/internal/domains/movie"
	"movie-catalog-backend/internal/domains/movie/model"
	"movie-catalog-backend/pkg/cache"
)

// postgresRepository implements RepositoryInterface on pgxpool with a Redis
// read-through cache for single-record lookups.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

// NewPostgresRepository creates a movie repository instance.
func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) RepositoryInterface {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

const (
	movieCacheKeyPrefix = "movie:"
	movieCacheTTL       = 15 * time.Minute
)

const movieColumns = `id, title, imdb_id, year, rated, released, runtime, genre,
       director, writer, actors, plot, poster, imdb_rating, box_office,
       created_at, updated_at`

func scanMovie(row pgx.Row) (*model.Movie, error) {
	var m model.Movie
	err := row.Scan(
		&m.ID,
		&m.Title,
		&m.ImdbID,
		&m.Year,
		&m.Rated,
		&m.Released,
		&m.Runtime,
		&m.Genre,
		&m.Director,
		&m.Writer,
		&m.Actors,
		&m.Plot,
		&m.Poster,
		&m.ImdbRating,
		&m.BoxOffice,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Create inserts a new movie with generated id and timestamps.
func (r *postgresRepository) Create(ctx context.Context, m *model.Movie) (*model.Movie, error) {
	query := `
        INSERT INTO movies (title, imdb_id, year, rated, released, runtime, genre,
                            director, writer, actors, plot, poster, imdb_rating, box_office)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
        RETURNING ` + movieColumns

	created, err := scanMovie(r.pool.QueryRow(
		ctx,
		query,
		m.Title,
		m.ImdbID,
		m.Year,
		m.Rated,
		m.Released,
		m.Runtime,
		m.Genre,
		m.Director,
		m.Writer,
		m.Actors,
		m.Plot,
		m.Poster,
		m.ImdbRating,
		m.BoxOffice,
	))
	if err != nil {
		// Unique constraint on imdb_id closes the dedup race the
		// pre-check in the service cannot.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, movie.ErrMovieExists
		}
		return nil, fmt.Errorf("failed to create movie: %w", err)
	}

	return created, nil
}

// GetByID retrieves a movie by id, trying the cache first.
func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Movie, error) {
	cacheKey := movieCacheKeyPrefix + id.String()

	var cachedMovie model.Movie
	if found, err := r.cache.Get(ctx, cacheKey, &cachedMovie); err == nil && found {
		return &cachedMovie, nil
	}

	query := `SELECT ` + movieColumns + ` FROM movies WHERE id = $1`

	m, err := scanMovie(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, movie.ErrMovieNotFound
		}
		return nil, fmt.Errorf("failed to get movie by id: %w", err)
	}

	_ = r.cache.Set(ctx, cacheKey, m, movieCacheTTL)

	return m, nil
}

// GetByImdbID retrieves a movie by its external id. Not cached: this is the
// dedup check and must see the latest state.
func (r *postgresRepository) GetByImdbID(ctx context.Context, imdbID string) (*model.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE imdb_id = $1`

	m, err := scanMovie(r.pool.QueryRow(ctx, query, imdbID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, movie.ErrMovieNotFound
		}
		return nil, fmt.Errorf("failed to get movie by imdb id: %w", err)
	}

	return m, nil
}

// List returns one page ordered by created_at descending, with an optional
// case-insensitive title substring filter.
func (r *postgresRepository) List(ctx context.Context, filter movie.ListFilter) ([]model.Movie, int64, error) {
	where := ""
	args := []interface{}{}

	if filter.Title != "" {
		where = `WHERE title ILIKE $1`
		args = append(args, "%"+filter.Title+"%")
	}

	countQuery := `SELECT COUNT(*) FROM movies ` + where

	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count movies: %w", err)
	}

	offset := (filter.Page - 1) * filter.Size
	listQuery := fmt.Sprintf(
		`SELECT %s FROM movies %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		movieColumns, where, len(args)+1, len(args)+2,
	)
	args = append(args, filter.Size, offset)

	rows, err := r.pool.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list movies: %w", err)
	}
	defer rows.Close()

	movies := []model.Movie{}
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan movie row: %w", err)
		}
		movies = append(movies, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read movie rows: %w", err)
	}

	return movies, total, nil
}

// Update writes the submitted fields in place.
func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, req *movie.UpdateMovieRequest) error {
	sets := []string{}
	args := []interface{}{}

	addSet := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.Title != nil {
		addSet("title", *req.Title)
	}
	if req.ImdbID != nil {
		addSet("imdb_id", *req.ImdbID)
	}
	if req.Year != nil {
		addSet("year", *req.Year)
	}
	if req.Rated != nil {
		addSet("rated", *req.Rated)
	}
	if req.Released != nil {
		addSet("released", *req.Released)
	}
	if req.Runtime != nil {
		addSet("runtime", *req.Runtime)
	}
	if req.Genre != nil {
		addSet("genre", *req.Genre)
	}
	if req.Director != nil {
		addSet("director", *req.Director)
	}
	if req.Writer != nil {
		addSet("writer", *req.Writer)
	}
	if req.Actors != nil {
		addSet("actors", *req.Actors)
	}
	if req.Plot != nil {
		addSet("plot", *req.Plot)
	}
	if req.Poster != nil {
		addSet("poster", *req.Poster)
	}
	if req.ImdbRating != nil {
		addSet("imdb_rating", *req.ImdbRating)
	}
	if req.BoxOffice != nil {
		addSet("box_office", *req.BoxOffice)
	}

	sets = append(sets, "updated_at = NOW()")

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE movies SET %s WHERE id = $%d",
		strings.Join(sets, ", "), len(args),
	)

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return movie.ErrMovieExists
		}
		return fmt.Errorf("failed to update movie: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return movie.ErrMovieNotFound
	}

	r.invalidate(ctx, id)
	return nil
}

// UpdateRating refreshes the provider-sourced fields only.
func (r *postgresRepository) UpdateRating(ctx context.Context, id uuid.UUID, rating float64, boxOffice string) error {
	query := `UPDATE movies SET imdb_rating = $1, box_office = $2, updated_at = NOW() WHERE id = $3`

	tag, err := r.pool.Exec(ctx, query, rating, boxOffice, id)
	if err != nil {
		return fmt.Errorf("failed to update movie rating: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return movie.ErrMovieNotFound
	}

	r.invalidate(ctx, id)
	return nil
}

// Delete removes a movie by id.
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete movie: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return movie.ErrMovieNotFound
	}

	r.invalidate(ctx, id)
	return nil
}

func (r *postgresRepository) invalidate(ctx context.Context, id uuid.UUID) {
	_ = r.cache.Delete(ctx, movieCacheKeyPrefix+id.String())
}
