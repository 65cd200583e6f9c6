// Package store implements the in-memory resume document store: an ordered
// collection of resumes, the active-resume pointer, and every mutation
// operation exposed to editors. The store is the sole mutation surface of the
// document model.
//
// Every mutation follows the same copy-on-write discipline: read the current
// active resume, produce a new resume value with the change applied, swap it
// into the collection by ID match, and re-derive the active cache. The cached
// active resume is therefore always pointer-identical to its collection entry,
// and consumers may use pointer equality as a change-detection signal.
//
// The store raises no errors. Not-found conditions degrade to no-ops or
// empty-sentinel returns; callers are trusted UI code operating on IDs they
// just observed.
package store

import (
	"sync"
	"time"

	"github.com/jonathan/resume-builder/internal/types"
)

// Store holds the resume collection and the active-resume pointer. All
// operations are serialized by an internal mutex: single-writer, synchronous
// apply.
type Store struct {
	mu       sync.Mutex
	resumes  []*types.Resume
	activeID string
	active   *types.Resume

	now  func() time.Time
	subs []func()
}

// New returns an empty store. Call Hydrate and Ensure before first use so the
// non-empty collection invariant holds.
func New() *Store {
	return &Store{now: time.Now}
}

// NewWithClock returns a store using the given clock. Tests use this for
// deterministic timestamps.
func NewWithClock(now func() time.Time) *Store {
	return &Store{now: now}
}

// Subscribe registers fn to be called after every state change. The callback
// runs outside the store lock, on the mutating goroutine.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

// Resumes returns the resume collection in insertion order. The slice is a
// copy; the elements are the live document references.
func (s *Store) Resumes() []*types.Resume {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*types.Resume(nil), s.resumes...)
}

// ActiveResumeID returns the ID of the active resume, or "" if none.
func (s *Store) ActiveResumeID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeID
}

// ActiveResume returns the active resume, or nil if none. The returned
// pointer is identical to the corresponding collection entry.
func (s *Store) ActiveResume() *types.Resume {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Hydrate installs previously persisted state and reconciles the active
// pointer: the persisted active ID wins when it matches a loaded resume,
// otherwise the first resume becomes active, otherwise both stay empty.
// Hydrate does not notify subscribers; the installed state is already durable.
func (s *Store) Hydrate(resumes []*types.Resume, activeID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resumes = append([]*types.Resume(nil), resumes...)
	s.activeID = activeID
	s.deriveActive()
	if s.active == nil {
		if len(s.resumes) > 0 {
			s.activeID = s.resumes[0].ID
		} else {
			s.activeID = ""
		}
		s.deriveActive()
	}
}

// Ensure synthesizes a default resume when the collection is empty, keeping
// the non-empty invariant after initialization. Returns the active resume ID.
func (s *Store) Ensure() string {
	s.mu.Lock()
	if len(s.resumes) > 0 {
		id := s.activeID
		s.mu.Unlock()
		return id
	}
	r := types.NewDefaultResume(s.now())
	s.resumes = append(s.resumes, r)
	s.activeID = r.ID
	s.deriveActive()
	s.mu.Unlock()

	s.notify()
	return r.ID
}

// deriveActive recomputes the active cache from resumes and activeID. It is
// the only place the cache is written, so it cannot drift from the
// collection. Callers hold s.mu.
func (s *Store) deriveActive() {
	s.active = nil
	if s.activeID == "" {
		return
	}
	for _, r := range s.resumes {
		if r.ID == s.activeID {
			s.active = r
			return
		}
	}
}

// swap replaces the collection entry matching r.ID and re-derives the active
// cache. Callers hold s.mu.
func (s *Store) swap(r *types.Resume) {
	for i, cur := range s.resumes {
		if cur.ID == r.ID {
			s.resumes[i] = r
			break
		}
	}
	s.deriveActive()
}

// touch returns the new UpdatedAt value: the current time, but never earlier
// than prev so the timestamp only advances (or repeats under rapid calls).
func (s *Store) touch(prev string) string {
	ts := types.Timestamp(s.now())
	if ts < prev {
		return prev
	}
	return ts
}

// mutateActive runs one copy-on-write mutation against the active resume.
// fn receives a value copy of the active resume and returns the modified
// value, or ok=false to abort without any state change. A no-op is returned
// unchanged when there is no active resume.
func (s *Store) mutateActive(fn func(r types.Resume) (types.Resume, bool)) {
	s.mu.Lock()
	if s.active == nil {
		s.mu.Unlock()
		return
	}
	next, ok := fn(*s.active)
	if !ok {
		s.mu.Unlock()
		return
	}
	next.UpdatedAt = s.touch(s.active.UpdatedAt)
	s.swap(&next)
	s.mu.Unlock()

	s.notify()
}

func (s *Store) notify() {
	s.mu.Lock()
	subs := make([]func(), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}
