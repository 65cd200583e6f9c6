package export

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-builder/internal/types"
)

// Status is the observable state of an export job.
type Status string

// Export job states.
const (
	StatusRunning   Status = "running"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Manager starts export jobs against a renderer.
type Manager struct {
	renderer Renderer
	timeout  time.Duration
}

// NewManager returns a Manager using the given renderer. A non-positive
// timeout falls back to DefaultTimeout.
func NewManager(renderer Renderer, timeout time.Duration) *Manager {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Manager{renderer: renderer, timeout: timeout}
}

// Job is a single in-flight or finished export. It operates on the HTML
// snapshot taken at invocation time; concurrent document edits do not affect
// it, and a failed job leaves no partial output behind.
type Job struct {
	mu     sync.Mutex
	status Status
	err    error

	g      *errgroup.Group
	cancel context.CancelFunc
}

// Start launches an export of the given rendered HTML to filename. The job
// runs on its own goroutine, bounded by the manager's timeout, and moves from
// running to succeeded or failed exactly once.
func (m *Manager) Start(ctx context.Context, html, filename string, size types.PageSize) *Job {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	g, ctx := errgroup.WithContext(ctx)

	job := &Job{status: StatusRunning, g: g, cancel: cancel}
	g.Go(func() error {
		err := m.export(ctx, html, filename, size)
		job.finish(err)
		return err
	})
	return job
}

// export rasterizes and then replaces filename atomically via temp-file and
// rename, so a failed or interrupted job never leaves a truncated PDF behind.
func (m *Manager) export(ctx context.Context, html, filename string, size types.PageSize) error {
	pdf, err := m.renderer.HTMLToPDF(ctx, html, size)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(filename), ".export-*.pdf")
	if err != nil {
		return &Error{Message: "failed to stage " + filename, Cause: err}
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(pdf); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &Error{Message: "failed to write " + filename, Cause: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &Error{Message: "failed to flush " + filename, Cause: err}
	}
	if err := os.Rename(tmpName, filename); err != nil {
		os.Remove(tmpName)
		return &Error{Message: "failed to replace " + filename, Cause: err}
	}
	return nil
}

func (j *Job) finish(err error) {
	j.mu.Lock()
	if err != nil {
		j.status = StatusFailed
		j.err = err
	} else {
		j.status = StatusSucceeded
	}
	j.mu.Unlock()
}

// Status reports the job's current state.
func (j *Job) Status() Status {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.status
}

// Err returns the failure cause once the job has failed, nil otherwise.
func (j *Job) Err() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.err
}

// Wait blocks until the job finishes and returns its error, releasing the
// job's resources.
func (j *Job) Wait() error {
	defer j.cancel()
	return j.g.Wait()
}

// Cancel aborts an in-flight job.
func (j *Job) Cancel() {
	j.cancel()
}
