package model

import (
	"time"

	"github.com/google/uuid"
)

// Movie is the sole catalog entity. Optional free-text fields are pointers
// so absent and empty are distinguishable; imdbRating is normalized to 0
// when the provider reports it unknown.
type Movie struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	ImdbID     string    `json:"imdbId"`
	Year       int       `json:"year"`
	Rated      *string   `json:"rated"`
	Released   string    `json:"released"`
	Runtime    *string   `json:"runtime"`
	Genre      *string   `json:"genre"`
	Director   *string   `json:"director"`
	Writer     *string   `json:"writer"`
	Actors     *string   `json:"actors"`
	Plot       string    `json:"plot"`
	Poster     string    `json:"poster"`
	ImdbRating float64   `json:"imdbRating"`
	BoxOffice  *string   `json:"boxOffice"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
