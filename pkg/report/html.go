package report

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/heuristiq/strategist/pkg/domain/assessment"
)

//go:embed templates/*
var templatesFS embed.FS

// HTMLRenderer renders assessments into a standalone HTML report.
type HTMLRenderer struct {
	tmpl *template.Template
}

func NewHTMLRenderer() (*HTMLRenderer, error) {
	funcMap := template.FuncMap{
		"coverageClass": coverageClass,
		"formatTime":    formatTime,
		"upper":         strings.ToUpper,
	}

	tmpl, err := template.New("").Funcs(funcMap).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	return &HTMLRenderer{tmpl: tmpl}, nil
}

// ReportData holds data for template rendering.
type ReportData struct {
	Assessment *assessment.Assessment
	Categories []assessment.CategoryAssessment
}

// Render writes the HTML report for the assessment.
func (r *HTMLRenderer) Render(w io.Writer, a *assessment.Assessment) error {
	data := ReportData{
		Assessment: a,
		Categories: orderedCategories(a),
	}
	if err := r.tmpl.ExecuteTemplate(w, "report.html", data); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

// orderedCategories returns category results in canonical SFDIPOT order,
// since map iteration would shuffle the report between runs.
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
