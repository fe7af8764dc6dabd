package service

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/mmynk/webform/internal/models"
	"github.com/mmynk/webform/internal/storage"
	"github.com/mmynk/webform/internal/validate"
)

// missingNameMessage is the fixed error body for an absent field,
// matching what the form's fetch handler displays verbatim.
const missingNameMessage = "First or last name not found"

// defaultListLimit bounds /api/submissions when no limit is given.
const (
	defaultListLimit = 50
	maxListLimit     = 500
)

// formRequest is the submit payload; the same field names are used by the
// JSON body and the form-encoded body.
type formRequest struct {
	First string `json:"first"`
	Last  string `json:"last"`
}

// formResponse is the submit result. Data carries the greeting on success.
type formResponse struct {
	Data string `json:"data"`
}

// FormService handles form submissions and their retrieval.
type FormService struct {
	store  storage.Store
	logger *slog.Logger
}

// NewFormService creates a new FormService with the given storage backend.
func NewFormService(store storage.Store, logger *slog.Logger) *FormService {
	return &FormService{store: store, logger: logger}
}

// HandleSubmit accepts a form submission as JSON or form-encoded body,
// validates both name fields, persists the submission and responds with the
// greeting. The Location header points at the stored submission.
func (s *FormService) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	req, err := decodeFormRequest(r)
	if err != nil {
		s.logger.Warn("Submit rejected: unreadable body", "error", err)
		writeJSON(w, http.StatusBadRequest, formResponse{Data: missingNameMessage})
		return
	}

	first, err := validate.Name(req.First)
	if err != nil {
		s.rejectField(w, "first", err)
		return
	}
	last, err := validate.Name(req.Last)
	if err != nil {
		s.rejectField(w, "last", err)
		return
	}

	sub := &models.Submission{
		FirstName: first,
		LastName:  last,
	}
	if err := s.store.CreateSubmission(r.Context(), sub); err != nil {
		s.logger.Error("Failed to store submission", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to store submission")
		return
	}

	s.logger.Info("Submission accepted", "id", sub.ID)
	w.Header().Set("Location", "/api/form/"+sub.ID)
	writeJSON(w, http.StatusOK, formResponse{Data: sub.Greeting})
}

// HandleGet returns one stored submission by ID.
func (s *FormService) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	sub, err := s.store.GetSubmission(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "submission not found")
			return
		}
		s.logger.Error("Failed to get submission", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to get submission")
		return
	}

	writeJSON(w, http.StatusOK, sub)
}

// HandleList returns recent submissions, newest first. Requires auth;
// the router wraps this handler with middleware.RequireAuth.
func (s *FormService) HandleList(w http.ResponseWriter, r *http.Request) {
	limit := defaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, maxListLimit)
	}

	subs, err := s.store.ListSubmissions(r.Context(), limit)
	if err != nil {
		s.logger.Error("Failed to list submissions", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list submissions")
		return
	}
	if subs == nil {
		subs = []models.Submission{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"submissions": subs})
}

// HandleHealth reports liveness, including a storage ping.
func (s *FormService) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		s.logger.Error("Health check failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// rejectField responds to a failed field validation. A missing field gets
// the fixed message the form displays; other rule violations get a message
// naming the field and the rule.
func (s *FormService) rejectField(w http.ResponseWriter, field string, err error) {
	s.logger.Warn("Submit rejected", "field", field, "reason", err)
	if errors.Is(err, validate.ErrMissingName) {
		writeJSON(w, http.StatusBadRequest, formResponse{Data: missingNameMessage})
		return
	}
	writeError(w, http.StatusBadRequest, field+" name: "+err.Error())
}

// decodeFormRequest reads the two name fields from either a JSON body or a
// form-encoded body, chosen by Content-Type. A missing or unknown
// Content-Type falls back to form parsing so plain no-JS form posts work.
func decodeFormRequest(r *http.Request) (formRequest, error) {
	var req formRequest

	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return req, err
		}
		return req, nil
	}

	if err := r.ParseForm(); err != nil {
		return req, err
	}
	req.First = r.PostFormValue("first")
	req.Last = r.PostFormValue("last")
	return req, nil
}
