package httpadapter

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"securereport/internal/domain"
	"securereport/internal/services/assistant"
	authsvc "securereport/internal/services/auth"
	mediasvc "securereport/internal/services/media"
	reportsvc "securereport/internal/services/reports"
)

const maxUploadBytes = 10 << 20

// Server translates HTTP requests into lifecycle-service calls and domain
// results back into response payloads.
type Server struct {
	reports   *reportsvc.Service
	auth      *authsvc.Service
	media     *mediasvc.Service
	assistant *assistant.Service
	adminKey  string
	uploadDir string
}

func New(reports *reportsvc.Service, auth *authsvc.Service, media *mediasvc.Service, asst *assistant.Service, adminKey, uploadDir string) *Server {
	return &Server{reports: reports, auth: auth, media: media, assistant: asst, adminKey: adminKey, uploadDir: uploadDir}
}

func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	if s.uploadDir != "" {
		fs := http.StripPrefix("/uploads/", http.FileServer(http.Dir(s.uploadDir)))
		r.Get("/uploads/*", fs.ServeHTTP)
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)

		r.Route("/reports", func(r chi.Router) {
			r.Post("/", s.handleCreateReport)
			r.Get("/", s.handleListReports)
			r.Get("/user/{anonymousUserId}", s.handleListUserReports)
			r.Get("/{id}", s.handleGetReport)
			r.Patch("/{id}/status", s.handleTransitionStatus)
		})

		r.Put("/admin/reports/{id}/status", s.handleForceStatus)

		r.Post("/auth/register", s.handleRegister)
		r.Post("/auth/login", s.handleLogin)
		r.Post("/media/upload", s.handleMediaUpload)
		r.Post("/chat", s.handleChat)
	})
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"app":    "SecureReport",
	})
}

func (s *Server) handleCreateReport(w http.ResponseWriter, r *http.Request) {
	var req createReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body", nil)
		return
	}
	report, err := s.reports.Create(r.Context(), req.toInput())
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toReportResponse(report))
}

func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	report, err := s.reports.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toReportResponse(report))
}

func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	list, err := s.reports.ListAll(r.Context())
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toReportList(list))
}

func (s *Server) handleListUserReports(w http.ResponseWriter, r *http.Request) {
	list, err := s.reports.ListForUser(r.Context(), chi.URLParam(r, "anonymousUserId"))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toReportList(list))
}

func (s *Server) handleTransitionStatus(w http.ResponseWriter, r *http.Request) {
	var req statusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body", nil)
		return
	}
	report, err := s.reports.Transition(r.Context(), chi.URLParam(r, "id"), domain.Status(req.Status))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toReportResponse(report))
}

// handleForceStatus is the legacy-compatible override: any valid status, no
// transition-table check, admin key required.
func (s *Server) handleForceStatus(w http.ResponseWriter, r *http.Request) {
	if s.adminKey == "" || r.Header.Get("X-Admin-Key") != s.adminKey {
		writeError(w, http.StatusUnauthorized, "admin key required", nil)
		return
	}
	var req statusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body", nil)
		return
	}
	report, err := s.reports.Force(r.Context(), chi.URLParam(r, "id"), domain.Status(req.Status))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toReportResponse(report))
}

func (s *Server) writeDomainError(w http.ResponseWriter, err error) {
	if ve, ok := domain.AsValidation(err); ok {
		writeError(w, http.StatusBadRequest, "validation failed", ve.Fields)
		return
	}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "report not found", nil)
	case errors.Is(err, domain.ErrInvalidTransition):
		writeError(w, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, domain.ErrStoreUnavailable):
		log.Printf("http: store unavailable: %v", err)
		writeError(w, http.StatusServiceUnavailable, "store unavailable", nil)
	default:
		log.Printf("http: internal error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error", nil)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("http: encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string, fields map[string]string) {
	writeJSON(w, status, errorResponse{Error: msg, Fields: fields})
}
