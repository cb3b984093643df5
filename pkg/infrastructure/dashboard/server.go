// Package dashboard provides a web-based UI for browsing assessments.
package dashboard

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/heuristiq/strategist/internal/infrastructure/watch"
	"github.com/heuristiq/strategist/pkg/domain/assessment"
)

//go:embed templates/*
var templatesFS embed.FS

// DataProvider provides data for the dashboard.
type DataProvider interface {
	GetAssessment() (*assessment.Assessment, error)
	GetRuns() ([]assessment.AssessmentRun, error)
}

// Server is the dashboard HTTP server. It serves the rendered overview,
// a JSON API and a websocket that notifies browsers when the workspace
// assessment changes on disk.
type Server struct {
	addr      string
	workspace string
	provider  DataProvider
	server    *http.Server
	tmpl      *template.Template
	hub       *Hub
}

// NewServer creates a new dashboard server. workspace is the directory
// holding .strategist/; it is watched for assessment updates.
func NewServer(addr, workspace string, provider DataProvider) (*Server, error) {
	funcMap := template.FuncMap{
		"coverageClass": coverageClass,
		"formatTime":    formatTime,
		"json":          toJSON,
	}

	tmpl, err := template.New("").Funcs(funcMap).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	return &Server{
		addr:      addr,
		workspace: workspace,
		provider:  provider,
		tmpl:      tmpl,
		hub:       NewHub(),
	}, nil
}

// Start starts the dashboard server and the assessment watcher. It
// blocks until the server stops.
func (s *Server) Start(ctx context.Context) error {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /", s.handleIndex)
	mux.HandleFunc("GET /api/assessment", s.handleAPIAssessment)
	mux.HandleFunc("GET /api/runs", s.handleAPIRuns)
	mux.Handle("GET /ws", s.hub)

	s.server = &http.Server{
		Addr:         s.addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	if err := s.watchAssessment(ctx); err != nil {
		log.Printf("assessment watch disabled: %v", err)
	}

	log.Printf("Dashboard server starting on %s", s.addr)
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// watchAssessment pushes a websocket notification whenever the persisted
// assessment changes, so open dashboards refresh live.
func (s *Server) watchAssessment(ctx context.Context) error {
	filter := watch.NewPatternFilter([]string{"assessment.json"}, nil)
	w, err := watch.NewFSWatcher(500*time.Millisecond, filter, func(e watch.ChangeEvent) {
		s.hub.Broadcast(map[string]string{
			"type": "assessment.updated",
			"path": e.Path,
		})
	})
	if err != nil {
		return err
	}
	if err := w.WatchRecursive(s.workspace); err != nil {
		return err
	}
	go func() {
		if err := w.Run(ctx); err != nil && err != context.Canceled {
			log.Printf("assessment watcher stopped: %v", err)
		}
	}()
	return nil
}

// PageData holds data for template rendering.
type PageData struct {
	Title      string
	Assessment *assessment.Assessment
	Categories []assessment.CategoryAssessment
	Runs       []assessment.AssessmentRun
	Error      string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := PageData{Title: "Assessment"}

	a, err := s.provider.GetAssessment()
	if err != nil {
		data.Error = "No assessment yet. Import documents and run an assessment."
	} else {
		data.Assessment = a
		data.Categories = orderedCategories(a)
	}

	runs, _ := s.provider.GetRuns()
	data.Runs = runs

	s.render(w, "index.html", data)
}

func (s *Server) handleAPIAssessment(w http.ResponseWriter, r *http.Request) {
	a, err := s.provider.GetAssessment()
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(a) //nolint:errcheck
}

func (s *Server) handleAPIRuns(w http.ResponseWriter, r *http.Request) {
	runs, err := s.provider.GetRuns()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(runs) //nolint:errcheck
}

func (s *Server) render(w http.ResponseWriter, name string, data interface{}) {
	if err := s.tmpl.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("Template error: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func orderedCategories(a *assessment.Assessment) []assessment.CategoryAssessment {
	out := make([]assessment.CategoryAssessment, 0, len(a.Categories))
	for _, cat := range assessment.Categories() {
		if ca, ok := a.Categories[cat]; ok {
			out = append(out, ca)
		}
	}
	return out
}

// Template helper functions
func coverageClass(percent int) string {
	switch {
	case percent >= 80:
		return "coverage-high"
	case percent >= 50:
		return "coverage-mid"
	default:
		return "coverage-low"
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02 15:04")
}

func toJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
