package web

import (
	"net/http/httptest"
	"testing"

	"topmovies/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTemplates_ParsesAllPages(t *testing.T) {
	_, err := NewTemplates()
	require.NoError(t, err)
}

func TestTemplates_RenderIndex(t *testing.T) {
	templates, err := NewTemplates()
	require.NoError(t, err)

	rank := 1
	rating := 9.5
	data := struct {
		Flashes []string
		Movies  []models.Movie
	}{
		Flashes: []string{"Movie removed from your list."},
		Movies: []models.Movie{{
			ID:          1,
			Title:       "Inception",
			Year:        2010,
			Description: "A thief...",
			Rating:      &rating,
			Ranking:     &rank,
			Review:      "Mind-bending",
			ImgURL:      "https://image.tmdb.org/t/p/w500/abc.jpg",
		}},
	}

	rr := httptest.NewRecorder()
	require.NoError(t, templates.Render(rr, PageIndex, data))

	body := rr.Body.String()
	assert.Contains(t, body, "Inception")
	assert.Contains(t, body, "#1")
	assert.Contains(t, body, "9.5/10")
	assert.Contains(t, body, "Movie removed from your list.")
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
}

func TestTemplates_RenderUnknownPage(t *testing.T) {
	templates, err := NewTemplates()
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	err = templates.Render(rr, "nope", nil)
	assert.Error(t, err)
}
