// Package web holds the HTML templates and form definitions for the site.
package web

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// FindMovieForm is the add-page search form
type FindMovieForm struct {
	Title string `validate:"required"`
}

// Validate returns a user-facing error message when the form is invalid,
// or "" when it is valid.
func (f FindMovieForm) Validate() string {
	if err := validate.Struct(f); err != nil {
		return "Movie title is required"
	}
	return ""
}

// RateMovieForm is the edit-page rating and review form
type RateMovieForm struct {
	Rating string `validate:"required"`
	Review string
}

// Validate coerces the rating to a float. It returns a user-facing error
// message when the rating is missing or not numeric.
func (f RateMovieForm) Validate() (float64, string) {
	if err := validate.Struct(f); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			return 0, "Invalid form submission"
		}
		return 0, "Rating is required"
	}

	rating, err := strconv.ParseFloat(strings.TrimSpace(f.Rating), 64)
	if err != nil {
		return 0, "Rating must be a number, e.g. 7.5"
	}

	return rating, ""
}
