package http

import (
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/secmon-lab/roadmap/pkg/usecase"
	"github.com/secmon-lab/roadmap/pkg/utils/logging"
	"github.com/secmon-lab/roadmap/pkg/utils/safe"
)

type Server struct {
	router      *chi.Mux
	uc          *usecase.UseCases
	staticFS    fs.FS
	corsOrigins []string
}

type Options func(*Server)

// WithStaticFS serves a single page application from fsys for every path
// outside /api
func WithStaticFS(fsys fs.FS) Options {
	return func(s *Server) {
		s.staticFS = fsys
	}
}

// WithCORS allows cross origin requests from the given origins
func WithCORS(origins ...string) Options {
	return func(s *Server) {
		s.corsOrigins = origins
	}
}

func New(uc *usecase.UseCases, opts ...Options) (*Server, error) {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(requestLogger)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)
	if len(s.corsOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: s.corsOrigins,
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAge:         300,
		}))
	}

	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/", s.listEntries)
			r.Put("/", s.saveEntry)
			r.Get("/{id}", s.getEntry)
			r.Delete("/{id}", s.deleteEntry)
			r.Put("/{id}/priority", s.setPriority)
			r.Post("/{id}/actions", s.addAction)
			r.Put("/{id}/actions/{actionID}", s.updateAction)
			r.Delete("/{id}/actions/{actionID}", s.deleteAction)
		})

		r.Get("/diagnosis", s.diagnosis)
		r.Get("/answers/{country}", s.getAnswers)
		r.Put("/answers/{country}/{practiceID}", s.setAnswer)

		r.Get("/scores", s.listScores)
		r.Get("/scores/{country}", s.getScore)

		r.Route("/layout", func(r chi.Router) {
			r.Get("/entries", s.layoutEntries)
			r.Get("/markers", s.layoutMarkers)
			r.Get("/curve", curveHandler)
			r.Get("/point", pointHandler)
		})

		r.Get("/levels", s.listLevels)
		r.Get("/countries", s.listCountries)
		r.Get("/acronyms", s.listAcronyms)
	})

	// Static file serving for SPA (catch-all, must be last)
	if s.staticFS != nil {
		r.Get("/*", spaHandler(s.staticFS))
	}

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.From(r.Context()).Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}

// spaHandler handles SPA routing by serving static files and falling back to index.html
func spaHandler(staticFS fs.FS) http.HandlerFunc {
	fileServer := http.FileServer(http.FS(staticFS))

	return func(w http.ResponseWriter, r *http.Request) {
		urlPath := strings.TrimPrefix(r.URL.Path, "/")

		if urlPath == "" {
			urlPath = "index.html"
		}

		file, err := staticFS.Open(urlPath)
		if err != nil {
			// Unknown path, let the client side router handle it
			indexFile, err := staticFS.Open("index.html")
			if err != nil {
				http.NotFound(w, r)
				return
			}
			defer safe.Close(r.Context(), indexFile)
			w.Header().Set("Content-Type", "text/html")
			safe.Copy(r.Context(), w, indexFile)
			return
		}
		safe.Close(r.Context(), file)

		fileServer.ServeHTTP(w, r)
	}
}
