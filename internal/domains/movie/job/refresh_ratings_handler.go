package job

import (
	"context"
	"errors"

	"github.com/hibiken/asynq"

	"movie-catalog-backend/internal/domains/movie"
	"movie-catalog-backend/internal/domains/movie/repository"
	"movie-catalog-backend/internal/domains/movie/service"
	"movie-catalog-backend/internal/infrastructure/omdb"
	"movie-catalog-backend/pkg/logger"
)

// RefreshRatingsPayload is the (empty) payload for the scheduled refresh.
type RefreshRatingsPayload struct{}

// RefreshRatingsHandler walks the catalog and re-fetches provider data so
// imdbRating and boxOffice keep up with the provider.
type RefreshRatingsHandler struct {
	repo     repository.RepositoryInterface
	provider omdb.Client
	apiKey   string
}

func NewRefreshRatingsHandler(
	repo repository.RepositoryInterface,
	provider omdb.Client,
	apiKey string,
) *RefreshRatingsHandler {
	return &RefreshRatingsHandler{
		repo:     repo,
		provider: provider,
		apiKey:   apiKey,
	}
}

const refreshPageSize = 100

// ProcessTask pages through the catalog oldest-page-last and refreshes the
// provider-sourced fields of every record with a known external id.
func (h *RefreshRatingsHandler) ProcessTask(ctx context.Context, _ *asynq.Task) error {
	if h.apiKey == "" {
		logger.Warn("Skipping rating refresh: OMDB API key is not configured", nil)
		return nil
	}

	refreshed, failed := 0, 0

	for page := 1; ; page++ {
		movies, _, err := h.repo.List(ctx, movie.ListFilter{Page: page, Size: refreshPageSize})
		if err != nil {
			return err
		}

		for i := range movies {
			m := &movies[i]

			result, err := h.provider.Lookup(ctx, h.apiKey, m.ImdbID)
			if err != nil {
				failed++
				logger.ErrorWith("Rating refresh lookup failed", err, map[string]interface{}{
					"imdbId": m.ImdbID,
				})
				// A transport failure now will fail for every id;
				// stop and let the next scheduled run retry.
				if errors.Is(err, omdb.ErrUnavailable) {
					return err
				}
				continue
			}
			if !result.Found() {
				continue
			}

			translated := service.TranslateLookup(result)
			boxOffice := "N/A"
			if translated.BoxOffice != nil {
				boxOffice = *translated.BoxOffice
			}

			unchanged := translated.ImdbRating == m.ImdbRating &&
				m.BoxOffice != nil && *m.BoxOffice == boxOffice
			if unchanged {
				continue
			}

			if err := h.repo.UpdateRating(ctx, m.ID, translated.ImdbRating, boxOffice); err != nil {
				failed++
				logger.ErrorWith("Rating refresh update failed", err, map[string]interface{}{
					"id": m.ID.String(),
				})
				continue
			}
			refreshed++
		}

		if len(movies) < refreshPageSize {
			break
		}
	}

	logger.Info("Rating refresh finished", map[string]interface{}{
		"refreshed": refreshed,
		"failed":    failed,
	})
	return nil
}
