package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"maturity-assessment-service/internal/domain"
)

type apiResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *apiError   `json:"error,omitempty"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type dateRequest struct {
	Date string `json:"date"`
}

type answerRequest struct {
	Value string `json:"value"`
}

type importResult struct {
	Imported int `json:"imported"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := apiResponse{
		Success: status >= 200 && status < 300,
		Data:    data,
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := apiResponse{Error: &apiError{Code: code, Message: message}}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode error response", "error", err)
	}
}

// respondServiceError maps domain errors to HTTP statuses.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		respondError(w, http.StatusNotFound, "session_not_found", err.Error())
	case errors.Is(err, domain.ErrQuestionNotFound):
		respondError(w, http.StatusNotFound, "question_not_found", err.Error())
	case errors.Is(err, domain.ErrInvalidAnswer):
		respondError(w, http.StatusBadRequest, "invalid_answer", err.Error())
	case errors.Is(err, domain.ErrInvalidDate):
		respondError(w, http.StatusBadRequest, "invalid_date", err.Error())
	case errors.Is(err, domain.ErrNoResponses):
		respondError(w, http.StatusBadRequest, "no_responses", err.Error())
	case errors.Is(err, domain.ErrImportFailed):
		respondError(w, http.StatusBadRequest, "import_failed", err.Error())
	default:
		slog.Error("request failed", "path", r.URL.Path, "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return false
	}
	return true
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	catalog, err := s.service.Catalog(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, catalog)
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	view, err := s.service.CreateSession(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	slog.Info("session created", "session_id", view.ID)
	respondJSON(w, http.StatusCreated, view)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	view, err := s.service.Session(r.Context(), chi.URLParam(r, "sessionId"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

func (s *Server) handleEndSession(w http.ResponseWriter, r *http.Request) {
	if err := s.service.EndSession(r.Context(), chi.URLParam(r, "sessionId")); err != nil {
		respondServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSetDate(w http.ResponseWriter, r *http.Request) {
	var req dateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	view, err := s.service.SetDate(r.Context(), chi.URLParam(r, "sessionId"), req.Date)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

func (s *Server) handleSetAnswer(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	report, err := s.service.SetAnswer(r.Context(), chi.URLParam(r, "sessionId"), chi.URLParam(r, "questionId"), req.Value)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	report, err := s.service.ClearAssessment(r.Context(), chi.URLParam(r, "sessionId"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	report, err := s.service.CurrentScores(r.Context(), chi.URLParam(r, "sessionId"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionId")
	saved, err := s.service.SaveAssessment(r.Context(), sessionID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	slog.Info("assessment saved", "session_id", sessionID, "date", saved.Date)
	respondJSON(w, http.StatusCreated, saved)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	history, err := s.service.History(r.Context(), chi.URLParam(r, "sessionId"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"assessments": history,
		"total":       len(history),
	})
}

func (s *Server) handleSeries(w http.ResponseWriter, r *http.Request) {
	series, err := s.service.Series(r.Context(), chi.URLParam(r, "sessionId"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, series)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionId")
	// check the session before committing to a CSV response
	if _, err := s.service.Session(r.Context(), sessionID); err != nil {
		respondServiceError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="maturity_assessment_history.csv"`)
	if err := s.service.ExportHistory(r.Context(), sessionID, w); err != nil {
		slog.Error("history export failed", "session_id", sessionID, "error", err)
	}
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionId")
	body := http.MaxBytesReader(w, r.Body, maxImportBytes)
	n, err := s.service.ImportHistory(r.Context(), sessionID, body)
	if err != nil {
		slog.Warn("history import rejected", "session_id", sessionID, "error", err)
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, importResult{Imported: n})
}

func (s *Server) handleTrend(w http.ResponseWriter, r *http.Request) {
	report, err := s.service.Trend(r.Context(), chi.URLParam(r, "sessionId"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}
