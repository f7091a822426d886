// Package api exposes HTTP handlers for the activities service.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"example.com/activities/internal/domain"
	"example.com/activities/internal/observability"
)

// Handler coordinates HTTP requests with the domain service.
type Handler struct {
	service *domain.Service
}

// NewHandler builds a Handler.
func NewHandler(service *domain.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires endpoints to the mux. The static asset handler is
// mounted separately by the caller.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/", h.root)
	mux.HandleFunc("/activities", h.listActivities)
	mux.HandleFunc("/activities/", h.activityAction)
	mux.HandleFunc("/healthz", healthz)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// root redirects the landing page to the static front end. Any other path
// that fell through the mux is unknown.
func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, http.StatusNotFound, "Not Found")
		return
	}
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}

func (h *Handler) listActivities(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}

	activities := h.service.ListActivities(r.Context())
	resp := make(map[string]ActivityView, len(activities))
	for name, act := range activities {
		resp[name] = toActivityView(act)
	}
	writeJSON(w, http.StatusOK, resp)
}

// activityAction routes /activities/{name}/signup and
// /activities/{name}/unregister. The activity name is everything between the
// prefix and the final path segment, already URL-decoded by the mux, and is
// matched verbatim against the store.
func (h *Handler) activityAction(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/activities/")
	idx := strings.LastIndex(rest, "/")
	if idx <= 0 {
		writeError(w, http.StatusNotFound, "Not Found")
		return
	}
	activityName, action := rest[:idx], rest[idx+1:]

	switch action {
	case "signup":
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
			return
		}
		h.signup(w, r, activityName)
	case "unregister":
		if r.Method != http.MethodDelete {
			writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
			return
		}
		h.unregister(w, r, activityName)
	default:
		writeError(w, http.StatusNotFound, "Not Found")
	}
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request, activityName string) {
	email, ok := requireEmail(w, r)
	if !ok {
		return
	}

	message, err := h.service.SignupStudent(r.Context(), activityName, email)
	if err != nil {
		writeRosterError(w, "signup", err)
		return
	}

	observability.RecordRosterOperation("signup", "ok")
	writeJSON(w, http.StatusOK, map[string]string{"message": message})
}

func (h *Handler) unregister(w http.ResponseWriter, r *http.Request, activityName string) {
	email, ok := requireEmail(w, r)
	if !ok {
		return
	}

	message, err := h.service.UnregisterStudent(r.Context(), activityName, email)
	if err != nil {
		writeRosterError(w, "unregister", err)
		return
	}

	observability.RecordRosterOperation("unregister", "ok")
	writeJSON(w, http.StatusOK, map[string]string{"message": message})
}

// requireEmail rejects requests whose query lacks the email parameter
// entirely. A present-but-empty value passes through to the store.
func requireEmail(w http.ResponseWriter, r *http.Request) (string, bool) {
	query := r.URL.Query()
	if !query.Has("email") {
		writeError(w, http.StatusUnprocessableEntity, "Field required: email")
		return "", false
	}
	return query.Get("email"), true
}

// writeRosterError maps domain failures to their fixed status and body.
func writeRosterError(w http.ResponseWriter, operation string, err error) {
	switch {
	case errors.Is(err, domain.ErrActivityNotFound):
		observability.RecordRosterOperation(operation, "not_found")
		writeError(w, http.StatusNotFound, "Activity not found")
	case errors.Is(err, domain.ErrAlreadySignedUp):
		observability.RecordRosterOperation(operation, "conflict")
		writeError(w, http.StatusBadRequest, "Student is already signed up for this activity")
	case errors.Is(err, domain.ErrNotRegistered):
		observability.RecordRosterOperation(operation, "conflict")
		writeError(w, http.StatusBadRequest, "Student is not registered for this activity")
	case errors.Is(err, domain.ErrActivityFull):
		observability.RecordRosterOperation(operation, "conflict")
		writeError(w, http.StatusBadRequest, "Activity is full")
	default:
		observability.RecordRosterOperation(operation, "error")
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// ActivityView is the wire shape of one activity in GET /activities.
type ActivityView struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

func toActivityView(act domain.Activity) ActivityView {
	participants := act.Participants
	if participants == nil {
		participants = []string{}
	}
	return ActivityView{
		Description:     act.Description,
		Schedule:        act.Schedule,
		MaxParticipants: act.MaxParticipants,
		Participants:    participants,
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
