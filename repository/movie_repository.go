// Package repository provides the data access layer for the movie list.
package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"topmovies/database"
	"topmovies/models"

	"github.com/mattn/go-sqlite3"
)

// Sentinel errors returned by the repository. Handlers map these to
// user-facing responses.
var (
	// ErrNotFound is returned when no movie exists for the given id
	ErrNotFound = errors.New("movie not found")
	// ErrDuplicateTitle is returned when a movie with the same title already exists
	ErrDuplicateTitle = errors.New("movie title already exists")
)

// MovieRepository handles database operations for movies
type MovieRepository struct {
	db *database.DB
}

// NewMovieRepository creates a new movie repository
func NewMovieRepository(db *database.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

// GetAllByRating retrieves all movies ordered by rating ascending. Unrated
// movies sort first and ids break ties, so the ordering (and therefore rank
// assignment) is stable across repeated calls.
func (r *MovieRepository) GetAllByRating() ([]models.Movie, error) {
	query := `
		SELECT id, title, year, description, rating, ranking, review, img_url,
			   created_at, updated_at
		FROM movies
		ORDER BY rating ASC NULLS FIRST, id ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query movies: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("Failed to close rows: %v", err)
		}
	}()

	var movies []models.Movie
	for rows.Next() {
		var movie models.Movie
		var rating sql.NullFloat64
		var ranking sql.NullInt64
		var review sql.NullString

		err := rows.Scan(
			&movie.ID, &movie.Title, &movie.Year, &movie.Description,
			&rating, &ranking, &review,
			&movie.ImgURL, &movie.CreatedAt, &movie.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan movie: %w", err)
		}

		// Handle nullable fields
		if rating.Valid {
			movie.Rating = &rating.Float64
		}
		if ranking.Valid {
			rank := int(ranking.Int64)
			movie.Ranking = &rank
		}
		if review.Valid {
			movie.Review = review.String
		}

		movies = append(movies, movie)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over rows: %w", err)
	}

	return movies, nil
}

// GetByID retrieves a movie by its ID
func (r *MovieRepository) GetByID(id int) (*models.Movie, error) {
	query := `
		SELECT id, title, year, description, rating, ranking, review, img_url,
			   created_at, updated_at
		FROM movies
		WHERE id = ?
	`

	var movie models.Movie
	var rating sql.NullFloat64
	var ranking sql.NullInt64
	var review sql.NullString

	err := r.db.QueryRow(query, id).Scan(
		&movie.ID, &movie.Title, &movie.Year, &movie.Description,
		&rating, &ranking, &review,
		&movie.ImgURL, &movie.CreatedAt, &movie.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get movie: %w", err)
	}

	// Handle nullable fields (same as GetAllByRating)
	if rating.Valid {
		movie.Rating = &rating.Float64
	}
	if ranking.Valid {
		rank := int(ranking.Int64)
		movie.Ranking = &rank
	}
	if review.Valid {
		movie.Review = review.String
	}

	return &movie, nil
}

// Create inserts a new movie into the database. Returns ErrDuplicateTitle
// when the title is already taken.
func (r *MovieRepository) Create(movie *models.Movie) error {
	query := `
		INSERT INTO movies (title, year, description, rating, ranking, review, img_url,
							created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	movie.CreatedAt = time.Now()
	movie.UpdatedAt = time.Now()

	result, err := r.db.Exec(query,
		movie.Title, movie.Year, movie.Description,
		nullFloat64(movie.Rating), nullInt(movie.Ranking), nullString(movie.Review),
		movie.ImgURL, movie.CreatedAt, movie.UpdatedAt,
	)

	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return ErrDuplicateTitle
		}
		return fmt.Errorf("failed to create movie: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	movie.ID = int(id)
	return nil
}

// Update persists the mutable fields of an existing movie
func (r *MovieRepository) Update(movie *models.Movie) error {
	query := `
		UPDATE movies
		SET title = ?, year = ?, description = ?, rating = ?, ranking = ?,
			review = ?, img_url = ?, updated_at = ?
		WHERE id = ?
	`

	movie.UpdatedAt = time.Now()

	result, err := r.db.Exec(query,
		movie.Title, movie.Year, movie.Description,
		nullFloat64(movie.Rating), nullInt(movie.Ranking), nullString(movie.Review),
		movie.ImgURL, movie.UpdatedAt, movie.ID,
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return ErrDuplicateTitle
		}
		return fmt.Errorf("failed to update movie: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// SaveRankings writes the ranking column for every movie in the slice
func (r *MovieRepository) SaveRankings(movies []models.Movie) error {
	query := `UPDATE movies SET ranking = ? WHERE id = ?`

	for _, movie := range movies {
		if _, err := r.db.Exec(query, nullInt(movie.Ranking), movie.ID); err != nil {
			return fmt.Errorf("failed to save ranking for movie %d: %w", movie.ID, err)
		}
	}

	return nil
}

// Delete removes a movie by its ID
func (r *MovieRepository) Delete(id int) error {
	result, err := r.db.Exec(`DELETE FROM movies WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete movie: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// Helper functions for handling null values
func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullInt(i *int) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{Valid: false}
	}
	return sql.NullInt64{Int64: int64(*i), Valid: true}
}

func nullFloat64(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{Valid: false}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}
