package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-builder/internal/types"
)

// Version is the current snapshot format version. Version 0 (the field absent)
// identifies snapshots written before versioning existed and is accepted;
// anything newer than Version is treated as corrupt.
const Version = 1

// Snapshot is the durable serialized form of the document store: the full
// resume collection and the active resume ID. The derived active-resume cache
// is deliberately not persisted; it is reconstructible and persisting it would
// risk divergence.
type Snapshot struct {
	Version        int             `json:"version"`
	Resumes        []*types.Resume `json:"resumes"`
	ActiveResumeID string          `json:"active_resume_id"`
}

// Empty returns a snapshot with no resumes and no active ID.
func Empty() *Snapshot {
	return &Snapshot{Version: Version, Resumes: []*types.Resume{}}
}

// ErrCorrupt reports that a snapshot file existed but could not be used and
// was replaced by empty state. Callers surface it as a best-effort warning.
var ErrCorrupt = errors.New("snapshot corrupt")

// Load reads the snapshot at path. A missing file yields an empty snapshot
// and no error. An unreadable, schema-invalid, or future-version file yields
// an empty snapshot and an error wrapping ErrCorrupt, so the caller can warn
// while the store falls back to default-resume synthesis.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Empty(), nil
		}
		return Empty(), fmt.Errorf("%w: reading %s: %v", ErrCorrupt, path, err)
	}

	if err := validateBytes(data); err != nil {
		return Empty(), fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Empty(), fmt.Errorf("%w: parsing %s: %v", ErrCorrupt, path, err)
	}
	if snap.Version > Version {
		return Empty(), fmt.Errorf("%w: unsupported snapshot version %d", ErrCorrupt, snap.Version)
	}
	if snap.Resumes == nil {
		snap.Resumes = []*types.Resume{}
	}
	snap.Version = Version
	return &snap, nil
}

// Save writes the snapshot to path atomically: the bytes go to a temp file in
// the same directory, which is then renamed over the target. The parent
// directory is created if needed.
func Save(path string, snap *Snapshot) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create snapshot directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize snapshot: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".snapshot-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to flush snapshot: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace snapshot %s: %w", path, err)
	}
	return nil
}

// Saver persists store state to a fixed path. It is wired to the store's
// change notification so every mutation is followed by a snapshot write.
type Saver struct {
	path string
}

// NewSaver returns a Saver writing to path.
func NewSaver(path string) *Saver {
	return &Saver{path: path}
}

// Save snapshots the given store state. Failures are returned, not retried;
// in-memory state remains authoritative for the session.
func (s *Saver) Save(resumes []*types.Resume, activeID string) error {
	if resumes == nil {
		resumes = []*types.Resume{}
	}
	return Save(s.path, &Snapshot{
		Version:        Version,
		Resumes:        resumes,
		ActiveResumeID: activeID,
	})
}
