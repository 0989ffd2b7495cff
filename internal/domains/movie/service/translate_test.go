package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateLookup_FullMapping(t *testing.T) {
	result := shawshankLookup()

	req := TranslateLookup(result)

	assert.Equal(t, "The Shawshank Redemption", req.Title)
	assert.Equal(t, "tt0111161", req.ImdbID)
	assert.Equal(t, 1994, req.Year)
	assert.Equal(t, "14 Oct 1994", req.Released)
	assert.Equal(t, 9.3, req.ImdbRating)
	require.NotNil(t, req.Rated)
	assert.Equal(t, "R", *req.Rated)
	require.NotNil(t, req.Runtime)
	assert.Equal(t, "142 min", *req.Runtime)
	require.NotNil(t, req.Genre)
	assert.Equal(t, "Drama", *req.Genre)
	require.NotNil(t, req.Director)
	assert.Equal(t, "Frank Darabont", *req.Director)
	require.NotNil(t, req.Actors)
	assert.Equal(t, "Tim Robbins, Morgan Freeman", *req.Actors)
	assert.Equal(t, "Two imprisoned men bond over a number of years.", req.Plot)
	assert.Equal(t, "https://example.com/shawshank.jpg", req.Poster)
	require.NotNil(t, req.BoxOffice)
	assert.Equal(t, "N/A", *req.BoxOffice)
}

func TestTranslateLookup_UnknownRatingBecomesZero(t *testing.T) {
	result := shawshankLookup()
	result.ImdbRating = "N/A"

	req := TranslateLookup(result)
	assert.Equal(t, 0.0, req.ImdbRating)
}

func TestTranslateLookup_UnparseableRatingBecomesZero(t *testing.T) {
	result := shawshankLookup()
	result.ImdbRating = "excellent"

	req := TranslateLookup(result)
	assert.Equal(t, 0.0, req.ImdbRating)
}

func TestTranslateLookup_MissingBoxOfficeDefaultsToNA(t *testing.T) {
	result := shawshankLookup()
	result.BoxOffice = ""

	req := TranslateLookup(result)
	require.NotNil(t, req.BoxOffice)
	assert.Equal(t, "N/A", *req.BoxOffice)
}

func TestTranslateLookup_OptionalFieldsStayAbsent(t *testing.T) {
	result := shawshankLookup()
	result.Rated = ""
	result.Runtime = ""

	req := TranslateLookup(result)
	assert.Nil(t, req.Rated)
	assert.Nil(t, req.Runtime)
}

func TestParseYear(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"1994", 1994},
		{"1994–1998", 1994}, // series range keeps the leading year
		{" 2001 ", 2001},
		{"N/A", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseYear(tt.in))
		})
	}
}

func TestParseRating(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"9.3", 9.3},
		{"N/A", 0},
		{"", 0},
		{"ten", 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRating(tt.in))
		})
	}
}
