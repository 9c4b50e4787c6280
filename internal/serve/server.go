// Package serve exposes the consultant pipeline over a small JSON HTTP API.
package serve

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/yhlin/n8n-consultant/internal/consult"
)

// Server holds the shared pipeline and logger for all handlers. Handlers only
// read from the pipeline, so no locking is needed.
type Server struct {
	pipeline *consult.Pipeline
	log      *slog.Logger
}

func NewServer(pipeline *consult.Pipeline, log *slog.Logger) *Server {
	return &Server{pipeline: pipeline, log: log}
}

// Handler builds the route table. Exposed separately from ListenAndServe so
// tests can drive it through httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/industries", s.handleIndustries)
	mux.HandleFunc("/api/departments", s.handleDepartments)
	mux.HandleFunc("/api/analyze", s.handleAnalyze)
	return s.logRequests(mux)
}

func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.log.Info("HTTP server listening", "addr", addr)
	return srv.ListenAndServe()
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Info("Request handled", "method", r.Method, "path", r.URL.Path, "duration_ms", time.Since(start).Milliseconds())
	})
}

func (s *Server) handleIndustries(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"industries": s.pipeline.Adapter.Industries(),
	})
}

type departmentDetail struct {
	Description       string   `json:"description"`
	PrimaryDimensions []string `json:"primary_dimensions"`
}

func (s *Server) handleDepartments(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}
	industryName := r.URL.Query().Get("industry")
	departments := s.pipeline.Adapter.Departments(industryName)

	details := make(map[string]departmentDetail)
	for _, name := range departments {
		if info, ok := s.pipeline.Adapter.DepartmentInfo(industryName, name); ok {
			details[name] = departmentDetail{
				Description:       info.Description,
				PrimaryDimensions: info.PrimaryDimensions,
			}
		}
	}
	if departments == nil {
		departments = []string{}
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"departments": departments,
		"details":     details,
	})
}

type analyzeRequest struct {
	Industry   string `json:"industry"`
	Department string `json:"department"`
	PainPoint  string `json:"pain_point"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("invalid request body: %v", err)})
		return
	}
	if req.PainPoint == "" {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "缺少痛點描述"})
		return
	}

	rm := s.pipeline.Assembler.Generate(req.Industry, req.Department, req.PainPoint)
	s.writeJSON(w, http.StatusOK, rm)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(payload); err != nil {
		s.log.Error("Failed to encode response", "error", err)
	}
}
