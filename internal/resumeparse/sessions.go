package resumeparse

import (
	"sync"

	"github.com/google/uuid"
)

// Sessions tracks the open resume panels of the HTTP dashboard.
type Sessions struct {
	parser   *Parser
	maxBytes int64

	mu         sync.RWMutex
	workspaces map[uuid.UUID]*Workspace
}

// NewSessions returns an empty registry whose workspaces share parser.
func NewSessions(parser *Parser, maxBytes int64) *Sessions {
	return &Sessions{
		parser:     parser,
		maxBytes:   maxBytes,
		workspaces: make(map[uuid.UUID]*Workspace),
	}
}

// Create opens a new workspace.
func (s *Sessions) Create() (uuid.UUID, *Workspace) {
	id := uuid.New()
	ws := NewWorkspace(s.parser, s.maxBytes)

	s.mu.Lock()
	s.workspaces[id] = ws
	s.mu.Unlock()

	return id, ws
}

// Get returns the workspace for id.
func (s *Sessions) Get(id uuid.UUID) (*Workspace, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ws, ok := s.workspaces[id]
	return ws, ok
}

// Close closes and forgets a workspace. It reports whether id existed.
func (s *Sessions) Close(id uuid.UUID) bool {
	s.mu.Lock()
	ws, ok := s.workspaces[id]
	delete(s.workspaces, id)
	s.mu.Unlock()

	if ok {
		ws.Close()
	}
	return ok
}

// CloseAll closes every workspace, cancelling their tasks.
func (s *Sessions) CloseAll() {
	s.mu.Lock()
	all := s.workspaces
	s.workspaces = make(map[uuid.UUID]*Workspace)
	s.mu.Unlock()

	for _, ws := range all {
		ws.Close()
	}
}

// Len reports the number of open workspaces.
func (s *Sessions) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.workspaces)
}
