package service

import (
	"strconv"
	"strings"

	"movie-catalog-backend/internal/domains/movie"
	"movie-catalog-backend/internal/infrastructure/omdb"
)

// TranslateLookup maps the provider schema onto the internal one. Pure
// function; default rules: an unknown rating becomes 0, a missing box
// office becomes the literal "N/A".
func TranslateLookup(r *omdb.LookupResult) *movie.CreateMovieRequest {
	boxOffice := r.BoxOffice
	if boxOffice == "" {
		boxOffice = "N/A"
	}

	return &movie.CreateMovieRequest{
		Title:      r.Title,
		ImdbID:     r.ImdbID,
		Year:       parseYear(r.Year),
		Rated:      optional(r.Rated),
		Released:   r.Released,
		Runtime:    optional(r.Runtime),
		Genre:      optional(r.Genre),
		Director:   optional(r.Director),
		Writer:     optional(r.Writer),
		Actors:     optional(r.Actors),
		Plot:       r.Plot,
		Poster:     r.Poster,
		ImdbRating: parseRating(r.ImdbRating),
		BoxOffice:  &boxOffice,
	}
}

// parseYear extracts the leading integer, so series ranges like
// "1994–1998" yield 1994.
func parseYear(s string) int {
	s = strings.TrimSpace(s)

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}

	year, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return year
}

// parseRating normalizes the provider's "N/A" sentinel (and anything
// unparseable) to 0.
func parseRating(s string) float64 {
	if s == "" || s == "N/A" {
		return 0
	}

	rating, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return rating
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
