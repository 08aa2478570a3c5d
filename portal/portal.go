// Package portal serves the doctor-facing views over a local HTTP
// server. Every view is JSON; navigation rules are enforced by a guard
// middleware that mirrors the route table in package guard.
package portal

import (
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/mediai-platform/mediai/appointments"
	"github.com/mediai-platform/mediai/chat"
	"github.com/mediai-platform/mediai/guard"
	"github.com/mediai-platform/mediai/roster"
	"github.com/mediai-platform/mediai/session"
)

// FlashLoggedOut is shown once on the login view after a logout.
const FlashLoggedOut = "Successfully logged out."

const flashCookie = "mediai_flash"

// Server holds the portal's state: the session manager plus the
// in-memory stores behind each view.
type Server struct {
	sessions *session.Manager
	patients *roster.Store
	book     *appointments.Book
	hub      *chat.Hub
	log      zerolog.Logger
}

type Option func(*Server)

func WithRoster(s *roster.Store) Option {
	return func(srv *Server) { srv.patients = s }
}

func WithAppointments(b *appointments.Book) Option {
	return func(srv *Server) { srv.book = b }
}

func WithChat(h *chat.Hub) Option {
	return func(srv *Server) { srv.hub = h }
}

func WithLogger(log zerolog.Logger) Option {
	return func(srv *Server) { srv.log = log }
}

func New(sessions *session.Manager, options ...Option) *Server {
	srv := &Server{
		sessions: sessions,
		patients: roster.NewStore(),
		book:     appointments.NewBook(),
		hub:      chat.NewHub(),
		log:      zerolog.Nop(),
	}
	for _, opt := range options {
		opt(srv)
	}
	return srv
}

// Handler builds the portal router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(s.logRequests, s.guardRoutes)

	r.Get(guard.RouteRoot, s.handleRoot)
	r.Get(guard.RouteLogin, s.handleLoginView)
	r.Post(guard.RouteLogin, s.handleLogin)
	r.Get(guard.RouteRegister, s.handleRegisterView)
	r.Post(guard.RouteRegister, s.handleRegister)
	r.Get(guard.RouteLogout, s.handleLogout)

	r.Get(guard.RouteDashboard, s.handleDashboard)
	r.Get(guard.RoutePatients, s.handlePatients)
	r.Get(guard.RouteAppointments, s.handleAppointments)
	r.Get(guard.RouteChat, s.handleChatList)
	r.Get(guard.RouteChat+"/{patientID}", s.handleChatThread)
	r.Post(guard.RouteChat+"/{patientID}", s.handleChatSend)
	r.Get(guard.RouteReport, s.handleReport)
	r.Get(guard.RouteHistory, s.handleHistory)
	r.Get(guard.RouteSettings, s.handleSettings)

	r.Handle("/metrics", promhttp.Handler())

	return r
}

// guardRoutes applies the navigation rules before any handler runs. A
// denied navigation becomes a 303 so browsers re-GET the target.
func (s *Server) guardRoutes(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		decision := guard.Decide(r.URL.Path, s.sessions.IsAuthenticated())
		if decision.Redirect {
			http.Redirect(w, r, decision.Target, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)
		countRequest(r.Method, r.URL.Path, rec.status)
		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("took", time.Since(start)).
			Msg("request")
	})
}

// setFlash leaves a one-shot message for the next login render.
func setFlash(w http.ResponseWriter, msg string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(msg),
		Path:     "/",
		HttpOnly: true,
	})
}

// takeFlash reads and expires the flash cookie in one step.
func takeFlash(w http.ResponseWriter, r *http.Request) string {
	c, err := r.Cookie(flashCookie)
	if err != nil {
		return ""
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	msg, err := url.QueryUnescape(c.Value)
	if err != nil {
		return ""
	}
	return msg
}
