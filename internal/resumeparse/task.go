// Package resumeparse simulates resume extraction for the upload panel.
//
// No document is read: after a fixed delay a task resolves to a canned form.
// Tasks are explicitly cancellable so that a dismissed or replaced upload never
// delivers a stale result.
package resumeparse

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/jobtracker/internal/types"
)

// DefaultDelay is how long a mock parse takes.
const DefaultDelay = 1500 * time.Millisecond

// ErrCancelled is the result of a task cancelled before it finished.
var ErrCancelled = errors.New("resume parse cancelled")

// Status is the lifecycle state of a Task.
type Status string

// Task states.
const (
	StatusPending   Status = "pending"
	StatusDone      Status = "done"
	StatusCancelled Status = "cancelled"
)

// MockForm returns the canned parse result.
func MockForm() types.ResumeForm {
	return types.ResumeForm{
		Name:       "John Doe",
		Email:      "john.doe@example.com",
		Phone:      "(555) 123-4567",
		Experience: "5 years of experience in software development",
		Education:  "BS in Computer Science, University of Technology",
		Skills:     "JavaScript, React, Node.js, Python, SQL, AWS",
	}
}

// Parser starts mock parse tasks.
type Parser struct {
	Delay time.Duration
}

// NewParser returns a parser with the given delay. Non-positive delays use DefaultDelay.
func NewParser(delay time.Duration) *Parser {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Parser{Delay: delay}
}

// Start begins parsing file. The task is cancelled when ctx is.
// A non-nil then is called exactly once with the finished task, on the
// task's goroutine and before Done is closed.
func (p *Parser) Start(ctx context.Context, file types.UploadedFile, then func(*Task)) *Task {
	taskCtx, cancel := context.WithCancel(ctx)
	t := &Task{
		ID:        uuid.New(),
		File:      file,
		StartedAt: time.Now(),
		cancel:    cancel,
		done:      make(chan struct{}),
		status:    StatusPending,
	}
	go t.run(taskCtx, p.Delay, then)
	return t
}

// Task is one in-flight or finished mock parse.
type Task struct {
	ID        uuid.UUID
	File      types.UploadedFile
	StartedAt time.Time

	cancel context.CancelFunc
	done   chan struct{}

	mu     sync.Mutex
	status Status
	form   types.ResumeForm
	err    error
}

func (t *Task) run(ctx context.Context, delay time.Duration, then func(*Task)) {
	defer close(t.done)
	defer t.cancel()

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		t.finish(StatusDone, MockForm(), nil)
	case <-ctx.Done():
		t.finish(StatusCancelled, types.ResumeForm{}, ErrCancelled)
	}

	if then != nil {
		then(t)
	}
}

func (t *Task) finish(status Status, form types.ResumeForm, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status = status
	t.form = form
	t.err = err
}

// Cancel stops the task if it is still pending. It is safe to call more than once.
func (t *Task) Cancel() {
	t.cancel()
}

// Done is closed once the task has a result.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Status reports the current lifecycle state.
func (t *Task) Status() Status {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status
}

// Result returns the outcome so far. While pending it returns an empty form and nil error.
func (t *Task) Result() (types.ResumeForm, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.form, t.err
}

// Wait blocks until the task finishes or ctx ends. Giving up on the wait
// does not cancel the task.
func (t *Task) Wait(ctx context.Context) (types.ResumeForm, error) {
	select {
	case <-t.done:
		return t.Result()
	case <-ctx.Done():
		return types.ResumeForm{}, ctx.Err()
	}
}
