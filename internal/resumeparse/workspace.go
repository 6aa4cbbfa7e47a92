package resumeparse

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/jonathan/jobtracker/internal/types"
)

var (
	// ErrUnknownField is returned when editing a field the form does not have.
	ErrUnknownField = errors.New("unknown resume field")
	// ErrClosed is returned by Upload once the workspace has been closed.
	ErrClosed = errors.New("resume workspace closed")
)

// Snapshot is a point-in-time copy of a workspace.
type Snapshot struct {
	File   *types.UploadedFile `json:"file"`
	Form   types.ResumeForm    `json:"form"`
	TaskID *uuid.UUID          `json:"task_id,omitempty"`
	Status Status              `json:"status,omitempty"`
}

// Workspace is the state of one resume panel: the chosen file, the form,
// and at most one active parse task.
type Workspace struct {
	parser   *Parser
	maxBytes int64

	mu     sync.Mutex
	file   *types.UploadedFile
	form   types.ResumeForm
	task   *Task
	closed bool
}

// NewWorkspace returns an empty workspace. maxBytes <= 0 uses DefaultMaxUploadBytes.
func NewWorkspace(parser *Parser, maxBytes int64) *Workspace {
	return &Workspace{parser: parser, maxBytes: maxBytes}
}

// Upload selects a new file and starts parsing it, cancelling any parse
// still running for the previous file. The form is filled when the returned
// task completes, unless another upload or Dismiss came first.
func (w *Workspace) Upload(ctx context.Context, file types.UploadedFile) (*Task, error) {
	if err := CheckUpload(file, w.maxBytes); err != nil {
		return nil, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil, ErrClosed
	}
	if w.task != nil {
		w.task.Cancel()
	}
	f := file
	w.file = &f
	w.task = w.parser.Start(ctx, file, w.apply)
	return w.task, nil
}

// apply runs on the task goroutine.
func (w *Workspace) apply(t *Task) {
	form, err := t.Result()

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.task != t {
		log.Printf("[resume] discarding result of superseded task %s", t.ID)
		return
	}
	if err != nil {
		log.Printf("[resume] task %s for %q ended: %v", t.ID, t.File.Name, err)
		return
	}
	w.form = form
	log.Printf("[resume] parsed %q (task %s)", t.File.Name, t.ID)
}

// SetField edits one form field by name.
func (w *Workspace) SetField(name, value string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.form.SetField(name, value); err != nil {
		return errors.Join(ErrUnknownField, err)
	}
	return nil
}

// SetFields applies several edits. Nothing is changed if any name is unknown.
func (w *Workspace) SetFields(fields map[string]string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	next := w.form
	for name, value := range fields {
		if err := next.SetField(name, value); err != nil {
			return errors.Join(ErrUnknownField, err)
		}
	}
	w.form = next
	return nil
}

// Form returns the current form contents.
func (w *Workspace) Form() types.ResumeForm {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.form
}

// Task returns the most recent parse task, or nil.
func (w *Workspace) Task() *Task {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.task
}

// Snapshot copies the workspace state.
func (w *Workspace) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	s := Snapshot{Form: w.form}
	if w.file != nil {
		f := *w.file
		s.File = &f
	}
	if w.task != nil {
		id := w.task.ID
		s.TaskID = &id
		s.Status = w.task.Status()
	}
	return s
}

// Dismiss cancels any running parse and clears the panel.
func (w *Workspace) Dismiss() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.clear()
}

// Close dismisses the workspace for good. Later uploads fail with ErrClosed.
func (w *Workspace) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	w.clear()
}

// clear must be called with mu held.
func (w *Workspace) clear() {
	if w.task != nil {
		w.task.Cancel()
	}
	w.task = nil
	w.file = nil
	w.form = types.ResumeForm{}
}
