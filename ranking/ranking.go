// Package ranking derives the 1..N display rank for stored movies.
package ranking

import "topmovies/models"

// Assign sets the Ranking of each movie from its position in the slice,
// which callers provide in ascending-rating order: the lowest-rated movie
// gets rank 1 and the highest-rated gets rank len(movies). Ranks are always
// a permutation of 1..N, so repeated assignment over an unchanged ordering
// yields identical results.
func Assign(movies []models.Movie) {
	for i := range movies {
		rank := i + 1
		movies[i].Ranking = &rank
	}
}
