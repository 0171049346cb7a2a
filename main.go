// Package main provides the main entry point for the top movies application.
package main

import (
	"log"
	"net/http"
	"time"

	"topmovies/config"
	"topmovies/database"
	"topmovies/repository"
	"topmovies/services"
	"topmovies/web"

	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	cfg := config.Load()
	if cfg.TMDBAPIKey == "" {
		log.Fatal("TMDB_API_KEY environment variable is required")
	}

	// Initialize database
	db, err := database.NewDB(cfg.DatabasePath)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}()

	// Initialize schema
	if err := db.InitSchema(); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	templates, err := web.NewTemplates()
	if err != nil {
		log.Fatal("Failed to parse templates:", err)
	}

	app := &App{
		movieRepo: repository.NewMovieRepository(db),
		tmdb:      services.NewTMDBService(cfg.TMDBAPIKey),
		templates: templates,
		sessions:  sessions.NewCookieStore([]byte(cfg.SessionSecret)),
	}

	log.Printf("Server starting on :%s", cfg.Port)
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      app.router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Fatal(server.ListenAndServe())
}

// router wires the five workflows plus the health check
func (app *App) router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", healthHandler).Methods("GET")

	r.HandleFunc("/", app.homeHandler).Methods("GET")
	r.HandleFunc("/add", app.addHandler).Methods("GET", "POST")
	r.HandleFunc("/find", app.findHandler).Methods("GET")
	r.HandleFunc("/edit", app.editHandler).Methods("GET", "POST")
	r.HandleFunc("/delete", app.deleteHandler).Methods("GET")

	return r
}
