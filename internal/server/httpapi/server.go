// Package httpapi exposes the JSON API over HTTP: routing, session cookie
// handling, and translation of service outcomes into status codes. It plays
// the same role the transport layer plays elsewhere: no business logic,
// only decoding, dispatch, and response shaping.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/notekeeper/internal/logging"
	"github.com/dmitrijs2005/notekeeper/internal/server/config"
	"github.com/dmitrijs2005/notekeeper/internal/server/services"
	"github.com/go-chi/chi/v5"
)

// sessionCookieName is the name of the HTTP-only cookie carrying the
// session token.
const sessionCookieName = "auth-token"

// Server handles the HTTP API.
type Server struct {
	address       string
	logger        logging.Logger
	users         *services.UserService
	notes         *services.NoteService
	jwtSecret     []byte
	cookieMaxAge  time.Duration
	secureCookies bool
}

// NewServer constructs the HTTP server. The signing key is injected here
// once; handlers never consult process-wide state.
func NewServer(cfg *config.Config, l logging.Logger, us *services.UserService, ns *services.NoteService) *Server {
	return &Server{
		address:       cfg.EndpointAddr,
		logger:        l.With("module", "http_server"),
		users:         us,
		notes:         ns,
		jwtSecret:     []byte(cfg.SecretKey),
		cookieMaxAge:  cfg.TokenValidityDuration,
		secureCookies: cfg.SecureCookies,
	}
}

// Router assembles the chi router with middleware and all API routes.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(s.logRequests)
	r.Use(s.recoverPanics)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/signup", s.SignUp)
		r.Post("/auth/login", s.Login)
		r.Post("/auth/logout", s.Logout)

		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Get("/auth/me", s.CurrentUser)

			r.Get("/notes", s.ListNotes)
			r.Post("/notes", s.CreateNote)
			r.Get("/notes/{id}", s.GetNote)
			r.Put("/notes/{id}", s.UpdateNote)
			r.Delete("/notes/{id}", s.DeleteNote)
		})
	})

	return r
}

// Run starts the HTTP server and shuts it down gracefully when ctx is
// cancelled.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// setSessionCookie attaches the session token to the response. The cookie
// lifetime matches the token's own validity window.
func (s *Server) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.cookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   s.secureCookies,
		SameSite: http.SameSiteStrictMode,
	})
}

// clearSessionCookie expires the session cookie immediately.
func (s *Server) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secureCookies,
		SameSite: http.SameSiteStrictMode,
	})
}
