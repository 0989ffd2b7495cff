package movie

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"movie-catalog-backend/internal/domains/movie/model"
)

// Validation constants
const (
	MaxTitleLength  = 500
	MaxPosterLength = 1000
	MinYear         = 1888 // the first movie ever made
	MinRating       = 0.0
	MaxRating       = 10.0
)

// Pagination defaults
const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// CreateMovieRequest - POST /add
type CreateMovieRequest struct {
	Title      string  `json:"title"`
	ImdbID     string  `json:"imdbId"`
	Year       int     `json:"year"`
	Rated      *string `json:"rated,omitempty"`
	Released   string  `json:"released"`
	Runtime    *string `json:"runtime,omitempty"`
	Genre      *string `json:"genre,omitempty"`
	Director   *string `json:"director,omitempty"`
	Writer     *string `json:"writer,omitempty"`
	Actors     *string `json:"actors,omitempty"`
	Plot       string  `json:"plot"`
	Poster     string  `json:"poster"`
	ImdbRating float64 `json:"imdbRating"`
	BoxOffice  *string `json:"boxOffice,omitempty"`
}

// Validate checks the data-model invariants. All violations are reported
// together in one joined message.
func (r CreateMovieRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, MaxTitleLength),
		),
		validation.Field(&r.ImdbID,
			validation.Required.Error("imdbId is required"),
		),
		validation.Field(&r.Year,
			validation.Required.Error("year is required"),
			validation.Min(MinYear).Error("year must be 1888 or later"),
		),
		validation.Field(&r.Released,
			validation.Required.Error("released is required"),
		),
		validation.Field(&r.Plot,
			validation.Required.Error("plot is required"),
		),
		validation.Field(&r.Poster,
			validation.Required.Error("poster is required"),
			validation.Length(1, MaxPosterLength),
			is.URL.Error("poster must be a valid URL"),
		),
		validation.Field(&r.ImdbRating,
			validation.Min(MinRating).Error("imdbRating must be between 0 and 10"),
			validation.Max(MaxRating).Error("imdbRating must be between 0 and 10"),
		),
	)
}

// ToModel converts the request into a Movie entity. ID and timestamps are
// generated by the store.
func (r *CreateMovieRequest) ToModel() *model.Movie {
	return &model.Movie{
		Title:      r.Title,
		ImdbID:     r.ImdbID,
		Year:       r.Year,
		Rated:      r.Rated,
		Released:   r.Released,
		Runtime:    r.Runtime,
		Genre:      r.Genre,
		Director:   r.Director,
		Writer:     r.Writer,
		Actors:     r.Actors,
		Plot:       r.Plot,
		Poster:     r.Poster,
		ImdbRating: r.ImdbRating,
		BoxOffice:  r.BoxOffice,
	}
}

// UpdateMovieRequest - PUT /update/:id
// Only submitted fields are written; everything is optional.
type UpdateMovieRequest struct {
	Title      *string  `json:"title,omitempty"`
	ImdbID     *string  `json:"imdbId,omitempty"`
	Year       *int     `json:"year,omitempty"`
	Rated      *string  `json:"rated,omitempty"`
	Released   *string  `json:"released,omitempty"`
	Runtime    *string  `json:"runtime,omitempty"`
	Genre      *string  `json:"genre,omitempty"`
	Director   *string  `json:"director,omitempty"`
	Writer     *string  `json:"writer,omitempty"`
	Actors     *string  `json:"actors,omitempty"`
	Plot       *string  `json:"plot,omitempty"`
	Poster     *string  `json:"poster,omitempty"`
	ImdbRating *float64 `json:"imdbRating,omitempty"`
	BoxOffice  *string  `json:"boxOffice,omitempty"`
}

// Validate applies the data-model invariants to every submitted field.
func (r UpdateMovieRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.NilOrNotEmpty.Error("title cannot be empty"),
			validation.Length(1, MaxTitleLength),
		),
		validation.Field(&r.ImdbID,
			validation.NilOrNotEmpty.Error("imdbId cannot be empty"),
		),
		validation.Field(&r.Year,
			validation.Min(MinYear).Error("year must be 1888 or later"),
		),
		validation.Field(&r.Released,
			validation.NilOrNotEmpty.Error("released cannot be empty"),
		),
		validation.Field(&r.Plot,
			validation.NilOrNotEmpty.Error("plot cannot be empty"),
		),
		validation.Field(&r.Poster,
			validation.NilOrNotEmpty.Error("poster cannot be empty"),
			validation.Length(1, MaxPosterLength),
			is.URL.Error("poster must be a valid URL"),
		),
		validation.Field(&r.ImdbRating,
			validation.Min(MinRating).Error("imdbRating must be between 0 and 10"),
			validation.Max(MaxRating).Error("imdbRating must be between 0 and 10"),
		),
	)
}

// IsEmpty reports whether the request carries no fields at all.
func (r *UpdateMovieRequest) IsEmpty() bool {
	return r.Title == nil && r.ImdbID == nil && r.Year == nil && r.Rated == nil &&
		r.Released == nil && r.Runtime == nil && r.Genre == nil && r.Director == nil &&
		r.Writer == nil && r.Actors == nil && r.Plot == nil && r.Poster == nil &&
		r.ImdbRating == nil && r.BoxOffice == nil
}

// ImportMovieRequest - POST /add-imdb
type ImportMovieRequest struct {
	ImdbID string `json:"imdbId"`
}

// ListFilter - query parameters for GET /get
type ListFilter struct {
	Page  int    `form:"page"`
	Size  int    `form:"size"`
	Title string `form:"title"` // case-insensitive substring match
}

// ListResponse is the page envelope for GET /get.
type ListResponse struct {
	TotalItems  int64         `json:"totalItems"`
	TotalPages  int           `json:"totalPages"`
	CurrentPage int           `json:"currentPage"`
	PageSize    int           `json:"pageSize"`
	Movies      []model.Movie `json:"movies"`
}
