package store

import (
	"github.com/jonathan/resume-builder/internal/types"
)

// UpdatePersonalInfo shallow-merges the patch into the active resume's
// personal info and bumps UpdatedAt. No-op when there is no active resume.
func (s *Store) UpdatePersonalInfo(patch types.PersonalInfoPatch) {
	s.mutateActive(func(r types.Resume) (types.Resume, bool) {
		r.PersonalInfo = patch.Apply(r.PersonalInfo)
		return r, true
	})
}

// UpdateTheme shallow-merges the patch into the active resume's theme and
// bumps UpdatedAt.
func (s *Store) UpdateTheme(patch types.ThemePatch) {
	s.mutateActive(func(r types.Resume) (types.Resume, bool) {
		r.Theme = patch.Apply(r.Theme)
		return r, true
	})
}

// UpdateTemplate replaces the active resume's template and bumps UpdatedAt.
// The value is not validated here; unrecognized templates fall back to modern
// at render time.
func (s *Store) UpdateTemplate(t types.Template) {
	s.mutateActive(func(r types.Resume) (types.Resume, bool) {
		r.Template = t
		return r, true
	})
}

// UpdateResumeName replaces the active resume's name and bumps UpdatedAt.
func (s *Store) UpdateResumeName(name string) {
	s.mutateActive(func(r types.Resume) (types.Resume, bool) {
		r.Name = name
		return r, true
	})
}

// ToggleSection flips the visible flag of the section with the given ID and
// bumps UpdatedAt. Unknown section IDs are a pure no-op: no new revision, no
// timestamp bump.
func (s *Store) ToggleSection(sectionID string) {
	s.mutateActive(func(r types.Resume) (types.Resume, bool) {
		idx := -1
		for i, sec := range r.Sections {
			if sec.ID == sectionID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return r, false
		}
		sections := append([]types.ResumeSection(nil), r.Sections...)
		sections[idx].Visible = !sections[idx].Visible
		r.Sections = sections
		return r, true
	})
}

// ReorderSections replaces the active resume's section list wholesale and
// bumps UpdatedAt. The caller is responsible for supplying a complete,
// consistent list; the store does not validate completeness.
func (s *Store) ReorderSections(sections []types.ResumeSection) {
	s.mutateActive(func(r types.Resume) (types.Resume, bool) {
		next := make([]types.ResumeSection, len(sections))
		copy(next, sections)
		r.Sections = next
		return r, true
	})
}
