package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/jobtracker/internal/resumeparse"
	"github.com/jonathan/jobtracker/internal/server/middleware"
	"github.com/jonathan/jobtracker/internal/types"
)

// multipartOverhead is the room left for multipart framing on top of the file size limit.
const multipartOverhead = 1 << 20

// UploadResponse is returned when a resume upload starts a parse
type UploadResponse struct {
	SessionID uuid.UUID          `json:"session_id"`
	TaskID    uuid.UUID          `json:"task_id"`
	File      types.UploadedFile `json:"file"`
	Status    resumeparse.Status `json:"status"`
}

// ResumeResponse is the current state of a resume session
type ResumeResponse struct {
	SessionID uuid.UUID `json:"session_id"`
	resumeparse.Snapshot
}

// ParsedEvent is the payload of the "parsed" event
type ParsedEvent struct {
	TaskID uuid.UUID          `json:"task_id"`
	File   types.UploadedFile `json:"file"`
	Form   types.ResumeForm   `json:"form"`
}

// handleCreateResume opens a resume session and starts parsing the uploaded file
func (s *Server) handleCreateResume(w http.ResponseWriter, r *http.Request) {
	file, err := s.readUpload(w, r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	id, ws := s.sessions.Create()
	task, err := s.startParse(ws, file)
	if err != nil {
		s.sessions.Close(id)
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusAccepted, UploadResponse{
		SessionID: id,
		TaskID:    task.ID,
		File:      task.File,
		Status:    task.Status(),
	})
}

// handleReplaceResumeFile swaps the file of an open session, cancelling any parse in flight
func (s *Server) handleReplaceResumeFile(w http.ResponseWriter, r *http.Request) {
	session, err := middleware.GetSession(r)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	file, err := s.readUpload(w, r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	task, err := s.startParse(session.Workspace, file)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusAccepted, UploadResponse{
		SessionID: session.ID,
		TaskID:    task.ID,
		File:      task.File,
		Status:    task.Status(),
	})
}

// handleGetResume returns the current form and parse status of a session
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	session, err := middleware.GetSession(r)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, ResumeResponse{SessionID: session.ID, Snapshot: session.Workspace.Snapshot()})
}

// handleUpdateResume applies field edits given as a JSON object of field name to value
func (s *Server) handleUpdateResume(w http.ResponseWriter, r *http.Request) {
	session, err := middleware.GetSession(r)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	var fields map[string]string
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := session.Workspace.SetFields(fields); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, ResumeResponse{SessionID: session.ID, Snapshot: session.Workspace.Snapshot()})
}

// handleDeleteResume dismisses a session, cancelling its parse
func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	session, err := middleware.GetSession(r)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.sessions.Close(session.ID)
	w.WriteHeader(http.StatusNoContent)
}

// handleResumeEvents streams the outcome of the session's current parse
func (s *Server) handleResumeEvents(w http.ResponseWriter, r *http.Request) {
	session, err := middleware.GetSession(r)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	task := session.Workspace.Task()
	if task == nil {
		s.errorResponse(w, http.StatusNotFound, "No parse started for this session")
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	// Disconnecting stops the stream, not the parse.
	form, err := task.Wait(r.Context())
	if r.Context().Err() != nil {
		return
	}
	if err != nil {
		sse.WriteError(err.Error())
		return
	}

	if err := sse.WriteEvent("parsed", ParsedEvent{TaskID: task.ID, File: task.File, Form: form}); err != nil {
		log.Printf("[resume] failed to write event for session %s: %v", session.ID, err)
	}
}

// handleSaveResume acknowledges a save. The form is not persisted anywhere.
func (s *Server) handleSaveResume(w http.ResponseWriter, r *http.Request) {
	session, err := middleware.GetSession(r)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	log.Printf("[resume] save requested for session %s", session.ID)
	s.messageResponse(w, http.StatusOK, "Resume data saved successfully!")
}

// handleDownloadResume returns the form as plain text
func (s *Server) handleDownloadResume(w http.ResponseWriter, r *http.Request) {
	session, err := middleware.GetSession(r)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="resume.txt"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(renderResumeText(session.Workspace.Form()))); err != nil {
		log.Printf("Error writing resume download: %v", err)
	}
}

// readUpload reads the "file" part of a multipart request. Only the part's
// metadata is kept; nothing is parsed from the content.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) (types.UploadedFile, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload+multipartOverhead)

	f, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return types.UploadedFile{}, fmt.Errorf("upload exceeds %d bytes: %w", s.maxUpload, err)
		}
		return types.UploadedFile{}, &ErrValidation{Field: "file", Message: "a resume file is required"}
	}
	defer f.Close() //nolint:errcheck

	return types.UploadedFile{
		Name:        header.Filename,
		Size:        header.Size,
		ContentType: header.Header.Get("Content-Type"),
	}, nil
}

// startParse runs the parse detached from the request so it outlives the upload call.
func (s *Server) startParse(ws *resumeparse.Workspace, file types.UploadedFile) (*resumeparse.Task, error) {
	return ws.Upload(context.Background(), file)
}

func renderResumeText(form types.ResumeForm) string {
	var sb strings.Builder
	for _, name := range types.ResumeFields {
		value, _ := form.Field(name)
		fmt.Fprintf(&sb, "%s: %s\n", types.FieldLabel(name), value)
	}
	return sb.String()
}
