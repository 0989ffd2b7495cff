package movie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreate() CreateMovieRequest {
	return CreateMovieRequest{
		Title:      "Heat",
		ImdbID:     "tt0113277",
		Year:       1995,
		Released:   "15 Dec 1995",
		Plot:       "A group of high-end professional thieves.",
		Poster:     "https://example.com/heat.jpg",
		ImdbRating: 8.3,
	}
}

func TestCreateMovieRequest_Valid(t *testing.T) {
	assert.NoError(t, validCreate().Validate())
}

func TestCreateMovieRequest_MissingRequiredFields(t *testing.T) {
	req := CreateMovieRequest{}

	err := req.Validate()
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "title is required")
	assert.Contains(t, msg, "imdbId is required")
	assert.Contains(t, msg, "year is required")
	assert.Contains(t, msg, "released is required")
	assert.Contains(t, msg, "plot is required")
	assert.Contains(t, msg, "poster is required")
}

func TestCreateMovieRequest_YearBeforeFirstMovie(t *testing.T) {
	req := validCreate()
	req.Year = 1600

	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "year must be 1888 or later")
}

func TestCreateMovieRequest_PosterMustBeURL(t *testing.T) {
	req := validCreate()
	req.Poster = "just some text"

	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "poster must be a valid URL")
}

func TestCreateMovieRequest_RatingBounds(t *testing.T) {
	req := validCreate()
	req.ImdbRating = 10.5

	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "imdbRating must be between 0 and 10")

	req.ImdbRating = 10
	assert.NoError(t, req.Validate())

	req.ImdbRating = 0
	assert.NoError(t, req.Validate())
}

func TestCreateMovieRequest_TitleLength(t *testing.T) {
	req := validCreate()
	long := make([]byte, MaxTitleLength+1)
	for i := range long {
		long[i] = 'a'
	}
	req.Title = string(long)

	assert.Error(t, req.Validate())
}

func TestUpdateMovieRequest_EmptyIsValid(t *testing.T) {
	// Update only writes submitted fields; submitting none violates
	// nothing.
	assert.NoError(t, UpdateMovieRequest{}.Validate())
}

func TestUpdateMovieRequest_SubmittedFieldsAreChecked(t *testing.T) {
	empty := ""
	badYear := 1500
	badRating := -1.0
	badPoster := "nope"

	tests := []struct {
		name string
		req  UpdateMovieRequest
		want string
	}{
		{"empty title", UpdateMovieRequest{Title: &empty}, "title cannot be empty"},
		{"empty plot", UpdateMovieRequest{Plot: &empty}, "plot cannot be empty"},
		{"year too early", UpdateMovieRequest{Year: &badYear}, "year must be 1888 or later"},
		{"negative rating", UpdateMovieRequest{ImdbRating: &badRating}, "imdbRating must be between 0 and 10"},
		{"bad poster", UpdateMovieRequest{Poster: &badPoster}, "poster must be a valid URL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestIsAuthorized(t *testing.T) {
	assert.True(t, IsAuthorized("admin", RoleAdmin))
	assert.False(t, IsAuthorized("", RoleAdmin))
	assert.False(t, IsAuthorized("user", RoleAdmin))
	assert.False(t, IsAuthorized("Admin", RoleAdmin))
}

func TestToHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{ErrImdbIDRequired, 400},
		{&ValidationError{Message: "title is required"}, 400},
		{ErrForbidden, 403},
		{ErrMovieNotFound, 404},
		{&ProviderNotFoundError{Message: "Incorrect IMDb ID."}, 404},
		{ErrMovieExists, 409},
		{ErrProviderUnavailable, 503},
		{ErrProviderNotConfigured, 500},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ToHTTPStatus(tt.err), tt.err.Error())
	}
}
