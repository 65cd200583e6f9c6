package export

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/types"
)

// stubRenderer satisfies Renderer without a browser.
type stubRenderer struct {
	pdf   []byte
	err   error
	delay time.Duration

	gotHTML string
	gotSize types.PageSize
}

func (s *stubRenderer) HTMLToPDF(ctx context.Context, html string, size types.PageSize) ([]byte, error) {
	s.gotHTML = html
	s.gotSize = size
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.pdf, nil
}

func TestJob_Succeeds(t *testing.T) {
	stub := &stubRenderer{pdf: []byte("%PDF-1.4 fake")}
	manager := NewManager(stub, time.Second)
	out := filepath.Join(t.TempDir(), "resume.pdf")

	job := manager.Start(context.Background(), "<html></html>", out, types.PageA4)
	require.NoError(t, job.Wait())

	assert.Equal(t, StatusSucceeded, job.Status())
	assert.NoError(t, job.Err())
	assert.Equal(t, "<html></html>", stub.gotHTML)
	assert.Equal(t, types.PageA4, stub.gotSize)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 fake"), data)

	// The staged temp file was renamed away, not left behind.
	entries, err := os.ReadDir(filepath.Dir(out))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestJob_OverwritesExistingFile(t *testing.T) {
	stub := &stubRenderer{pdf: []byte("new pdf")}
	manager := NewManager(stub, time.Second)
	out := filepath.Join(t.TempDir(), "resume.pdf")
	require.NoError(t, os.WriteFile(out, []byte("stale pdf"), 0o644))

	job := manager.Start(context.Background(), "<html></html>", out, types.PageA4)
	require.NoError(t, job.Wait())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, []byte("new pdf"), data)
}

func TestJob_RunningBeforeCompletion(t *testing.T) {
	stub := &stubRenderer{pdf: []byte("pdf"), delay: 200 * time.Millisecond}
	manager := NewManager(stub, time.Second)
	out := filepath.Join(t.TempDir(), "resume.pdf")

	job := manager.Start(context.Background(), "<html></html>", out, types.PageLetter)
	assert.Equal(t, StatusRunning, job.Status())

	require.NoError(t, job.Wait())
	assert.Equal(t, StatusSucceeded, job.Status())
}

func TestJob_FailureSurfacesCause(t *testing.T) {
	cause := errors.New("browser exploded")
	stub := &stubRenderer{err: cause}
	manager := NewManager(stub, time.Second)
	out := filepath.Join(t.TempDir(), "resume.pdf")

	job := manager.Start(context.Background(), "<html></html>", out, types.PageA4)
	err := job.Wait()

	require.ErrorIs(t, err, cause)
	assert.Equal(t, StatusFailed, job.Status())
	assert.ErrorIs(t, job.Err(), cause)

	// No partial output on failure.
	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestJob_Timeout(t *testing.T) {
	stub := &stubRenderer{pdf: []byte("pdf"), delay: 5 * time.Second}
	manager := NewManager(stub, 50*time.Millisecond)
	out := filepath.Join(t.TempDir(), "resume.pdf")

	job := manager.Start(context.Background(), "<html></html>", out, types.PageA4)
	err := job.Wait()

	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, StatusFailed, job.Status())
}

func TestJob_Cancel(t *testing.T) {
	stub := &stubRenderer{pdf: []byte("pdf"), delay: 5 * time.Second}
	manager := NewManager(stub, time.Minute)
	out := filepath.Join(t.TempDir(), "resume.pdf")

	job := manager.Start(context.Background(), "<html></html>", out, types.PageA4)
	job.Cancel()
	err := job.Wait()

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, StatusFailed, job.Status())
}

func TestNewManager_DefaultTimeout(t *testing.T) {
	manager := NewManager(&stubRenderer{}, 0)
	assert.Equal(t, DefaultTimeout, manager.timeout)

	manager = NewManager(&stubRenderer{}, -time.Second)
	assert.Equal(t, DefaultTimeout, manager.timeout)
}

func TestChromeRenderer_UnsupportedPageSize(t *testing.T) {
	renderer := &ChromeRenderer{}

	_, err := renderer.HTMLToPDF(context.Background(), "<html></html>", "tabloid")

	var exportErr *Error
	require.ErrorAs(t, err, &exportErr)
	assert.Contains(t, exportErr.Message, "tabloid")
}
