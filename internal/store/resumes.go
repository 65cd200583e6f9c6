package store

import (
	"github.com/jonathan/resume-builder/internal/types"
)

// CreateResume appends a freshly initialized default resume, makes it active,
// and returns its ID. It never fails.
func (s *Store) CreateResume() string {
	s.mu.Lock()
	r := types.NewDefaultResume(s.now())
	s.resumes = append(s.resumes, r)
	s.activeID = r.ID
	s.deriveActive()
	s.mu.Unlock()

	s.notify()
	return r.ID
}

// DeleteResume removes the resume with the given ID. When the deleted resume
// was active, the first remaining resume becomes active, or the active
// pointer is cleared if none remain. Unknown IDs are a no-op.
func (s *Store) DeleteResume(id string) {
	s.mu.Lock()
	idx := -1
	for i, r := range s.resumes {
		if r.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.resumes = append(s.resumes[:idx], s.resumes[idx+1:]...)
	if s.activeID == id {
		if len(s.resumes) > 0 {
			s.activeID = s.resumes[0].ID
		} else {
			s.activeID = ""
		}
	}
	s.deriveActive()
	s.mu.Unlock()

	s.notify()
}

// SetActiveResume switches the active pointer to the resume with the given
// ID. When no resume matches, the state is left unchanged.
func (s *Store) SetActiveResume(id string) {
	s.mu.Lock()
	found := false
	for _, r := range s.resumes {
		if r.ID == id {
			found = true
			break
		}
	}
	if !found {
		s.mu.Unlock()
		return
	}
	s.activeID = id
	s.deriveActive()
	s.mu.Unlock()

	s.notify()
}

// DuplicateResume deep-copies the resume with the given ID, assigns the copy
// a fresh top-level ID, fresh timestamps, and a "(Copy)" name suffix, appends
// it, and makes it active. Nested entity IDs are preserved from the source;
// children are never referenced across resumes, so duplicates sharing child
// IDs is acceptable. Returns the new ID, or "" when the source is not found.
func (s *Store) DuplicateResume(id string) string {
	s.mu.Lock()
	var src *types.Resume
	for _, r := range s.resumes {
		if r.ID == id {
			src = r
			break
		}
	}
	if src == nil {
		s.mu.Unlock()
		return ""
	}

	dup := src.Clone()
	dup.ID = types.NewID()
	dup.Name = src.Name + " (Copy)"
	ts := types.Timestamp(s.now())
	dup.CreatedAt = ts
	dup.UpdatedAt = ts

	s.resumes = append(s.resumes, dup)
	s.activeID = dup.ID
	s.deriveActive()
	s.mu.Unlock()

	s.notify()
	return dup.ID
}
