// Package middleware provides HTTP middleware for resume session routes.
package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/jobtracker/internal/resumeparse"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

// sessionKey is the context key for the resolved resume session.
const sessionKey ContextKey = "resumeSession"

// WorkspaceLookup finds the workspace of an open resume session.
// resumeparse.Sessions implements it.
type WorkspaceLookup interface {
	Get(id uuid.UUID) (*resumeparse.Workspace, bool)
}

// Session is a resolved resume session.
type Session struct {
	ID        uuid.UUID
	Workspace *resumeparse.Workspace
}

// SessionMiddleware resolves the {id} path value to an open session and adds
// it to the request context. Malformed ids get 400, unknown ids 404.
func SessionMiddleware(sessions WorkspaceLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := uuid.Parse(r.PathValue("id"))
			if err != nil {
				writeError(w, http.StatusBadRequest, "Invalid session ID")
				return
			}

			ws, ok := sessions.Get(id)
			if !ok {
				writeError(w, http.StatusNotFound, "Resume session not found")
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey, Session{ID: id, Workspace: ws})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSession extracts the resolved session from the request context.
func GetSession(r *http.Request) (Session, error) {
	s, ok := r.Context().Value(sessionKey).(Session)
	if !ok {
		return Session{}, fmt.Errorf("resume session not found in request context")
	}
	return s, nil
}

// SessionKey returns the context key for the session (for testing purposes).
func SessionKey() ContextKey {
	return sessionKey
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message}) //nolint:errcheck
}
