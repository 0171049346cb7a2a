package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"topmovies/models"
	"topmovies/ranking"
	"topmovies/repository"
	"topmovies/services"
	"topmovies/web"

	"github.com/gorilla/sessions"
)

// App represents the application with its dependencies
type App struct {
	movieRepo *repository.MovieRepository
	tmdb      *services.TMDBService
	templates *web.Templates
	sessions  *sessions.CookieStore
}

const flashSessionName = "topmovies-flash"

// Page view data. Every struct carries Flashes because the base layout
// renders them.
type indexData struct {
	Flashes []string
	Movies  []models.Movie
}

type addData struct {
	Flashes []string
	Form    web.FindMovieForm
	Error   string
}

type selectData struct {
	Flashes []string
	Options []services.TMDBSearchResult
}

type editData struct {
	Flashes []string
	Movie   *models.Movie
	Form    web.RateMovieForm
	Error   string
}

type notFoundData struct {
	Flashes []string
}

func (app *App) addFlash(w http.ResponseWriter, r *http.Request, message string) {
	session, _ := app.sessions.Get(r, flashSessionName)
	session.AddFlash(message)
	if err := session.Save(r, w); err != nil {
		log.Printf("Failed to save flash session: %v", err)
	}
}

func (app *App) popFlashes(w http.ResponseWriter, r *http.Request) []string {
	session, _ := app.sessions.Get(r, flashSessionName)
	raw := session.Flashes()
	if len(raw) > 0 {
		if err := session.Save(r, w); err != nil {
			log.Printf("Failed to save flash session: %v", err)
		}
	}

	flashes := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			flashes = append(flashes, s)
		}
	}
	return flashes
}

func (app *App) render(w http.ResponseWriter, page string, data interface{}) {
	if err := app.templates.Render(w, page, data); err != nil {
		log.Printf("Error rendering %s page: %v", page, err)
	}
}

func (app *App) renderNotFound(w http.ResponseWriter, r *http.Request) {
	// Flashes must be popped before WriteHeader or the session cookie is dropped
	flashes := app.popFlashes(w, r)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	app.render(w, web.PageNotFound, notFoundData{Flashes: flashes})
}

// homeHandler renders the ranked movie list. Rankings are recomputed from
// the current ratings and persisted before the page is rendered, so the
// ranks shown always reflect the latest ratings.
func (app *App) homeHandler(w http.ResponseWriter, r *http.Request) {
	movies, err := app.movieRepo.GetAllByRating()
	if err != nil {
		log.Printf("Error getting movies: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	ranking.Assign(movies)
	if err := app.movieRepo.SaveRankings(movies); err != nil {
		log.Printf("Error saving rankings: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	app.render(w, web.PageIndex, indexData{
		Flashes: app.popFlashes(w, r),
		Movies:  movies,
	})
}

// addHandler renders the search form on GET and runs the TMDB title search
// on POST, presenting the candidates to pick from.
func (app *App) addHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		app.render(w, web.PageAdd, addData{Flashes: app.popFlashes(w, r)})
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	form := web.FindMovieForm{Title: strings.TrimSpace(r.PostFormValue("title"))}
	if msg := form.Validate(); msg != "" {
		app.render(w, web.PageAdd, addData{
			Flashes: app.popFlashes(w, r),
			Form:    form,
			Error:   msg,
		})
		return
	}

	options, err := app.tmdb.SearchMovies(form.Title)
	if err != nil {
		log.Printf("Error searching TMDB: %v", err)
		app.addFlash(w, r, "Could not reach the movie catalog. Please try again.")
		http.Redirect(w, r, "/add", http.StatusSeeOther)
		return
	}

	app.render(w, web.PageSelect, selectData{
		Flashes: app.popFlashes(w, r),
		Options: options,
	})
}

// findHandler fetches the selected movie's details from TMDB, stores it with
// rating and review unset, and redirects straight to the rating form.
func (app *App) findHandler(w http.ResponseWriter, r *http.Request) {
	catalogID := r.URL.Query().Get("id")
	if catalogID == "" {
		http.Redirect(w, r, "/add", http.StatusSeeOther)
		return
	}

	movie, err := app.tmdb.GetMovie(catalogID)
	if err != nil {
		log.Printf("Error fetching movie from TMDB: %v", err)
		app.addFlash(w, r, "Could not fetch movie details. Please try again.")
		http.Redirect(w, r, "/add", http.StatusSeeOther)
		return
	}

	if err := app.movieRepo.Create(movie); err != nil {
		if errors.Is(err, repository.ErrDuplicateTitle) {
			app.addFlash(w, r, fmt.Sprintf("%q is already in your list.", movie.Title))
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		log.Printf("Error creating movie: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/edit?id=%d", movie.ID), http.StatusSeeOther)
}

// editHandler renders the rating form on GET and updates the movie's rating
// and review on POST.
func (app *App) editHandler(w http.ResponseWriter, r *http.Request) {
	movieID, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil {
		http.Error(w, "Invalid movie ID", http.StatusBadRequest)
		return
	}

	movie, err := app.movieRepo.GetByID(movieID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			app.renderNotFound(w, r)
			return
		}
		log.Printf("Error getting movie: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if r.Method == http.MethodGet {
		app.render(w, web.PageEdit, editData{
			Flashes: app.popFlashes(w, r),
			Movie:   movie,
		})
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	form := web.RateMovieForm{
		Rating: r.PostFormValue("rating"),
		Review: r.PostFormValue("review"),
	}
	rating, msg := form.Validate()
	if msg != "" {
		app.render(w, web.PageEdit, editData{
			Flashes: app.popFlashes(w, r),
			Movie:   movie,
			Form:    form,
			Error:   msg,
		})
		return
	}

	movie.Rating = &rating
	movie.Review = form.Review
	if err := app.movieRepo.Update(movie); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			app.renderNotFound(w, r)
			return
		}
		log.Printf("Error updating movie: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// deleteHandler removes a movie and returns to the list
func (app *App) deleteHandler(w http.ResponseWriter, r *http.Request) {
	movieID, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil {
		http.Error(w, "Invalid movie ID", http.StatusBadRequest)
		return
	}

	if err := app.movieRepo.Delete(movieID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			app.renderNotFound(w, r)
			return
		}
		log.Printf("Error deleting movie: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	app.addFlash(w, r, "Movie removed from your list.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		log.Printf("Failed to write response: %v", err)
	}
}
