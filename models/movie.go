// Package models defines the data structures used throughout the application.
package models

import "time"

// Movie represents one entry in the personal ranked movie list. Rating and
// Ranking are pointers so an unrated movie stays distinct from a 0.0 rating;
// Ranking is recomputed from ratings on every list view.
type Movie struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Year        int       `json:"year"`
	Description string    `json:"description"`
	Rating      *float64  `json:"rating,omitempty"`
	Ranking     *int      `json:"ranking,omitempty"`
	Review      string    `json:"review,omitempty"`
	ImgURL      string    `json:"img_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
