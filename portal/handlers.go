package portal

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mediai-platform/mediai/appointments"
	"github.com/mediai-platform/mediai/authclient"
	"github.com/mediai-platform/mediai/guard"
	"github.com/mediai-platform/mediai/roster"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// handleRoot never renders; the guard middleware already redirected by
// auth state. Kept so chi has a route to mount the middleware on.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, guard.RouteLogin, http.StatusSeeOther)
}

func (s *Server) handleLoginView(w http.ResponseWriter, r *http.Request) {
	view := map[string]any{"view": "login"}
	if user, ok := s.sessions.Auth().RememberedUser(); ok {
		view["remembered_username"] = user
	}
	if msg := takeFlash(w, r); msg != "" {
		view["flash"] = msg
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "malformed form")
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	remember := r.PostFormValue("remember_me") == "on"

	if err := s.sessions.Login(r.Context(), username, password, remember); err != nil {
		status := http.StatusUnauthorized
		if stderrors.Is(err, authclient.ErrNetwork) {
			status = http.StatusBadGateway
		}
		s.log.Err(err).Str("username", username).Msg("login failed")
		writeError(w, status, err.Error())
		return
	}
	http.Redirect(w, r, guard.RouteDashboard, http.StatusSeeOther)
}

func (s *Server) handleRegisterView(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"view":        "register",
		"specialties": authclient.Specialties,
	})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var form authclient.DoctorForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeError(w, http.StatusBadRequest, "malformed payload")
		return
	}

	if err := s.sessions.Auth().RegisterDoctor(r.Context(), form); err != nil {
		var fields authclient.FieldErrors
		if stderrors.As(err, &fields) {
			writeJSON(w, http.StatusBadRequest, map[string]any{"fields": fields})
			return
		}
		s.log.Err(err).Msg("registration failed")
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "registered"})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.sessions.Logout("")
	setFlash(w, FlashLoggedOut)
	http.Redirect(w, r, guard.RouteLogin, http.StatusSeeOther)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	profile, err := s.sessions.Auth().Dashboard(r.Context())
	if err != nil {
		if stderrors.Is(err, authclient.ErrUnauthorized) {
			http.Redirect(w, r, guard.RouteLogin, http.StatusSeeOther)
			return
		}
		s.log.Err(err).Msg("dashboard fetch failed")
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"view":    "dashboard",
		"profile": profile,
		"stats":   s.patients.Stats(),
	})
}

func (s *Server) handlePatients(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	filter := roster.Filter(r.URL.Query().Get("filter"))
	if filter == "" {
		filter = roster.FilterAll
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"view":     "patients",
		"patients": s.patients.Search(q, filter),
		"stats":    s.patients.Stats(),
	})
}

func (s *Server) handleAppointments(w http.ResponseWriter, r *http.Request) {
	var list []appointments.Appointment
	if status := r.URL.Query().Get("status"); status != "" {
		list = s.book.ByStatus(appointments.Status(status))
	} else {
		list = s.book.All()
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"view":         "appointments",
		"appointments": list,
		"today":        s.book.Today(),
	})
}

func (s *Server) handleChatList(w http.ResponseWriter, r *http.Request) {
	threads := s.hub.Threads()
	if q := r.URL.Query().Get("q"); q != "" {
		threads = s.hub.SearchThreads(q)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"view":    "chat",
		"threads": threads,
		"unread":  s.hub.UnreadCount(),
	})
}

func (s *Server) handleChatThread(w http.ResponseWriter, r *http.Request) {
	thread, err := s.hub.Open(chi.URLParam(r, "patientID"))
	if err != nil {
		writeError(w, http.StatusNotFound, "thread not found")
		return
	}
	writeJSON(w, http.StatusOK, thread)
}

func (s *Server) handleChatSend(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "malformed payload")
		return
	}
	// The canned reply must outlive this request.
	msg, err := s.hub.Send(context.WithoutCancel(r.Context()), chi.URLParam(r, "patientID"), payload.Text)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, msg)
}

func (s *Server) handleReport(w http.ResponseWriter, _ *http.Request) {
	stats := s.patients.Stats()
	writeJSON(w, http.StatusOK, map[string]any{
		"view":               "report",
		"patients":           stats,
		"appointments_today": len(s.book.Today()),
		"pending":            len(s.book.ByStatus(appointments.StatusPending)),
		"unread_threads":     s.hub.UnreadCount(),
	})
}

func (s *Server) handleHistory(w http.ResponseWriter, _ *http.Request) {
	// Completed visits double as the consultation history.
	writeJSON(w, http.StatusOK, map[string]any{
		"view":          "history",
		"consultations": s.book.ByStatus(appointments.StatusConfirmed),
	})
}

func (s *Server) handleSettings(w http.ResponseWriter, _ *http.Request) {
	view := map[string]any{
		"view":          "settings",
		"authenticated": s.sessions.IsAuthenticated(),
		"epoch":         s.sessions.Epoch(),
	}
	if user, ok := s.sessions.Auth().RememberedUser(); ok {
		view["remembered_username"] = user
	}
	writeJSON(w, http.StatusOK, view)
}
