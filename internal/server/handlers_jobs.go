package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/jonathan/jobtracker/internal/joblist"
	"github.com/jonathan/jobtracker/internal/types"
)

// queryFromRequest reads the search, location and sort query parameters.
func queryFromRequest(r *http.Request) types.Query {
	params := r.URL.Query()
	return types.Query{
		Search:   params.Get("search"),
		Location: params.Get("location"),
		Sort:     types.ParseSortKey(params.Get("sort")),
	}
}

// handleListJobs returns the catalog filtered and sorted by the query parameters
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, joblist.View(s.jobs, queryFromRequest(r)))
}

// handleGetJob retrieves a job by its ID
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	job, err := s.lookupJob(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), jobErrorMessage(err))
		return
	}
	s.jsonResponse(w, http.StatusOK, job)
}

// handleDownloadCV acknowledges a CV download for a job. No file is produced.
func (s *Server) handleDownloadCV(w http.ResponseWriter, r *http.Request) {
	job, err := s.lookupJob(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), jobErrorMessage(err))
		return
	}
	s.messageResponse(w, http.StatusOK, fmt.Sprintf("CV for job #%d downloading...", job.ID))
}

func (s *Server) lookupJob(idStr string) (types.Job, error) {
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return types.Job{}, &ErrValidation{Field: "id", Message: "not a number"}
	}
	job, ok := joblist.Find(s.jobs, id)
	if !ok {
		return types.Job{}, &ErrNotFound{Resource: "job", ID: idStr}
	}
	return job, nil
}

func jobErrorMessage(err error) string {
	if HTTPStatus(err) == http.StatusNotFound {
		return "Job not found"
	}
	return "Invalid job ID"
}
