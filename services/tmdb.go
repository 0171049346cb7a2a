// Package services provides external service integrations.
package services

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"topmovies/models"
)

// Default TMDB endpoints. Overridable so tests can point the client at a stub.
const (
	DefaultBaseURL      = "https://api.themoviedb.org/3"
	DefaultImageBaseURL = "https://image.tmdb.org/t/p/w500"
)

// TMDBService handles interactions with The Movie Database API
type TMDBService struct {
	APIKey       string
	BaseURL      string
	ImageBaseURL string
	Client       *http.Client
}

// TMDBSearchResult represents one candidate from a TMDB title search
type TMDBSearchResult struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date"`
	Overview    string `json:"overview"`
}

// tmdbSearchResponse represents the search endpoint's response envelope
type tmdbSearchResponse struct {
	Results []TMDBSearchResult `json:"results"`
}

// tmdbMovie represents a movie details response from the TMDB API
type tmdbMovie struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Overview    string `json:"overview"`
	ReleaseDate string `json:"release_date"`
	PosterPath  string `json:"poster_path"`
}

// NewTMDBService creates a new TMDB service instance
func NewTMDBService(apiKey string) *TMDBService {
	return &TMDBService{
		APIKey:       apiKey,
		BaseURL:      DefaultBaseURL,
		ImageBaseURL: DefaultImageBaseURL,
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SearchMovies searches TMDB by title and returns the first page of
// candidates. The result slice may be empty.
func (t *TMDBService) SearchMovies(title string) ([]TMDBSearchResult, error) {
	params := url.Values{}
	params.Set("api_key", t.APIKey)
	params.Set("query", title)

	searchURL := fmt.Sprintf("%s/search/movie?%s", t.BaseURL, params.Encode())

	resp, err := t.Client.Get(searchURL)
	if err != nil {
		return nil, fmt.Errorf("failed to search TMDB: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Printf("Failed to close response body: %v", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("TMDB API returned status %d", resp.StatusCode)
	}

	var searchResp tmdbSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, fmt.Errorf("failed to decode TMDB response: %w", err)
	}

	return searchResp.Results, nil
}

// GetMovie fetches movie details from TMDB by catalog id and converts them
// into a Movie ready to be stored. Rating, ranking and review stay unset.
func (t *TMDBService) GetMovie(catalogID string) (*models.Movie, error) {
	params := url.Values{}
	params.Set("api_key", t.APIKey)
	params.Set("language", "en-US")

	movieURL := fmt.Sprintf("%s/movie/%s?%s", t.BaseURL, url.PathEscape(catalogID), params.Encode())

	resp, err := t.Client.Get(movieURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch movie from TMDB: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Printf("Failed to close response body: %v", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("TMDB API returned status %d", resp.StatusCode)
	}

	var details tmdbMovie
	if err := json.NewDecoder(resp.Body).Decode(&details); err != nil {
		return nil, fmt.Errorf("failed to decode TMDB response: %w", err)
	}

	return t.convertToMovie(details), nil
}

func (t *TMDBService) convertToMovie(details tmdbMovie) *models.Movie {
	movie := &models.Movie{
		Title:       details.Title,
		Description: details.Overview,
		ImgURL:      t.ImageBaseURL + details.PosterPath,
	}

	// Parse release year from the 4-digit date prefix
	if len(details.ReleaseDate) >= 4 {
		year, err := strconv.Atoi(details.ReleaseDate[:4])
		if err != nil {
			log.Printf("Failed to parse year from release date %q: %v", details.ReleaseDate, err)
		} else {
			movie.Year = year
		}
	}

	return movie
}
