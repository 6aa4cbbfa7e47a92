package server

import (
	"bytes"
	"embed"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/jonathan/jobtracker/internal/joblist"
	"github.com/jonathan/jobtracker/internal/types"
)

//go:embed templates/dashboard.html
var templateFS embed.FS

var dashboardTemplate = template.Must(template.ParseFS(templateFS, "templates/dashboard.html"))

type sortOption struct {
	Key   types.SortKey
	Label string
}

var sortOptions = []sortOption{
	{types.SortTitle, "Job Title"},
	{types.SortLocation, "Location"},
	{types.SortCompany, "Company"},
}

type dashboardData struct {
	types.DerivedView
	Sort        types.SortKey
	SortOptions []sortOption
	Year        int
}

// handleDashboard renders the job browser as HTML
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	view := joblist.View(s.jobs, queryFromRequest(r))

	var buf bytes.Buffer
	err := dashboardTemplate.Execute(&buf, dashboardData{
		DerivedView: view,
		Sort:        view.Query.Sort,
		SortOptions: sortOptions,
		Year:        time.Now().Year(),
	})
	if err != nil {
		log.Printf("Error rendering dashboard: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to render dashboard")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("Error writing dashboard: %v", err)
	}
}
