package http

import (
	"bytes"
	"io/fs"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "mergingtonactivities/docs"
	"mergingtonactivities/internal/delivery/http/controllers"
	"mergingtonactivities/internal/delivery/http/helpers"
)

// LandingPage is where GET / redirects.
const LandingPage = "/static/index.html"

// NewRouter initializes the HTTP router with all application routes.
// static is the file system served under /static/.
func NewRouter(activityController *controllers.ActivityController, static fs.FS) *http.ServeMux {
	mux := http.NewServeMux()

	// API Routes
	mux.HandleFunc("GET /activities", activityController.ListActivities)
	mux.HandleFunc("POST /activities/{activityName}/signup", activityController.Signup)
	mux.HandleFunc("POST /activities/{activityName}/unregister", activityController.Unregister)

	// Landing page
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, LandingPage, http.StatusTemporaryRedirect)
	})
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(static)))
	// FileServer would redirect .../index.html to the directory; serve the file itself.
	mux.HandleFunc("GET "+LandingPage, serveFile(static, "index.html"))

	// Operations
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.Handle("GET /metrics", promhttp.Handler())

	// Swagger
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	return mux
}

func serveFile(fsys fs.FS, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		var modTime time.Time
		if info, err := fs.Stat(fsys, name); err == nil {
			modTime = info.ModTime()
		}
		http.ServeContent(w, r, name, modTime, bytes.NewReader(data))
	}
}
