package store

import (
	"github.com/jonathan/resume-builder/internal/types"
)

// Entity operations. Each Add appends a default-valued entity with a fresh ID
// to the active resume and returns that ID ("" when no resume is active).
// Each Update shallow-merges a patch into the entity matching the given ID;
// each Delete removes it. Update and Delete with an unknown ID are pure
// no-ops, as is every operation when no resume is active.

// removeAt returns a copy of list without the element at idx. The result is
// never nil, so a collection emptied by its last delete still serializes as a
// JSON array.
func removeAt[T any](list []T, idx int) []T {
	out := make([]T, 0, len(list)-1)
	out = append(out, list[:idx]...)
	return append(out, list[idx+1:]...)
}

// AddExperience appends a placeholder experience entry.
func (s *Store) AddExperience() string {
	var id string
	s.mutateActive(func(r types.Resume) (types.Resume, bool) {
		exp := types.NewExperience()
		id = exp.ID
		r.Experiences = append(append([]types.Experience(nil), r.Experiences...), exp)
		return r, true
	})
	return id
}

// UpdateExperience merges the patch into the experience with the given ID.
func (s *Store) UpdateExperience(id string, patch types.ExperiencePatch) {
	s.mutateActive(func(r types.Resume) (types.Resume, bool) {
		idx := findExperience(r.Experiences, id)
		if idx < 0 {
			return r, false
		}
		list := append([]types.Experience(nil), r.Experiences...)
		list[idx] = patch.Apply(list[idx])
		r.Experiences = list
		return r, true
	})
}

// DeleteExperience removes the experience with the given ID.
func (s *Store) DeleteExperience(id string) {
	s.mutateActive(func(r types.Resume) (types.Resume, bool) {
		idx := findExperience(r.Experiences, id)
		if idx < 0 {
			return r, false
		}
		r.Experiences = removeAt(r.Experiences, idx)
		return r, true
	})
}

// AddEducation appends a placeholder education entry.
func (s *Store) AddEducation() string {
	var id string
	s.mutateActive(func(r types.Resume) (types.Resume, bool) {
		edu := types.NewEducation()
		id = edu.ID
		r.Education = append(append([]types.Education(nil), r.Education...), edu)
		return r, true
	})
	return id
}

// UpdateEducation merges the patch into the education entry with the given ID.
func (s *Store) UpdateEducation(id string, patch types.EducationPatch) {
	s.mutateActive(func(r types.Resume) (types.Resume, bool) {
		idx := findEducation(r.Education, id)
		if idx < 0 {
			return r, false
		}
		list := append([]types.Education(nil), r.Education...)
		list[idx] = patch.Apply(list[idx])
		r.Education = list
		return r, true
	})
}

// DeleteEducation removes the education entry with the given ID.
func (s *Store) DeleteEducation(id string) {
	s.mutateActive(func(r types.Resume) (types.Resume, bool) {
		idx := findEducation(r.Education, id)
		if idx < 0 {
			return r, false
		}
		r.Education = removeAt(r.Education, idx)
		return r, true
	})
}

// AddSkill appends a placeholder skill.
func (s *Store) AddSkill() string {
	var id string
	s.mutateActive(func(r types.Resume) (types.Resume, bool) {
		skill := types.NewSkill()
		id = skill.ID
		r.Skills = append(append([]types.Skill(nil), r.Skills...), skill)
		return r, true
	})
	return id
}

// UpdateSkill merges the patch into the skill with the given ID.
func (s *Store) UpdateSkill(id string, patch types.SkillPatch) {
	s.mutateActive(func(r types.Resume) (types.Resume, bool) {
		idx := findSkill(r.Skills, id)
		if idx < 0 {
			return r, false
		}
		list := append([]types.Skill(nil), r.Skills...)
		list[idx] = patch.Apply(list[idx])
		r.Skills = list
		return r, true
	})
}

// DeleteSkill removes the skill with the given ID.
func (s *Store) DeleteSkill(id string) {
	s.mutateActive(func(r types.Resume) (types.Resume, bool) {
		idx := findSkill(r.Skills, id)
		if idx < 0 {
			return r, false
		}
		r.Skills = removeAt(r.Skills, idx)
		return r, true
	})
}

// AddProject appends a placeholder project.
func (s *Store) AddProject() string {
	var id string
	s.mutateActive(func(r types.Resume) (types.Resume, bool) {
		proj := types.NewProject()
		id = proj.ID
		r.Projects = append(append([]types.Project(nil), r.Projects...), proj)
		return r, true
	})
	return id
}

// UpdateProject merges the patch into the project with the given ID.
func (s *Store) UpdateProject(id string, patch types.ProjectPatch) {
	s.mutateActive(func(r types.Resume) (types.Resume, bool) {
		idx := findProject(r.Projects, id)
		if idx < 0 {
			return r, false
		}
		list := append([]types.Project(nil), r.Projects...)
		list[idx] = patch.Apply(list[idx])
		r.Projects = list
		return r, true
	})
}

// DeleteProject removes the project with the given ID.
func (s *Store) DeleteProject(id string) {
	s.mutateActive(func(r types.Resume) (types.Resume, bool) {
		idx := findProject(r.Projects, id)
		if idx < 0 {
			return r, false
		}
		r.Projects = removeAt(r.Projects, idx)
		return r, true
	})
}

// AddCertificate appends a placeholder certificate.
func (s *Store) AddCertificate() string {
	var id string
	s.mutateActive(func(r types.Resume) (types.Resume, bool) {
		cert := types.NewCertificate()
		id = cert.ID
		r.Certificates = append(append([]types.Certificate(nil), r.Certificates...), cert)
		return r, true
	})
	return id
}

// UpdateCertificate merges the patch into the certificate with the given ID.
func (s *Store) UpdateCertificate(id string, patch types.CertificatePatch) {
	s.mutateActive(func(r types.Resume) (types.Resume, bool) {
		idx := findCertificate(r.Certificates, id)
		if idx < 0 {
			return r, false
		}
		list := append([]types.Certificate(nil), r.Certificates...)
		list[idx] = patch.Apply(list[idx])
		r.Certificates = list
		return r, true
	})
}

// DeleteCertificate removes the certificate with the given ID.
func (s *Store) DeleteCertificate(id string) {
	s.mutateActive(func(r types.Resume) (types.Resume, bool) {
		idx := findCertificate(r.Certificates, id)
		if idx < 0 {
			return r, false
		}
		r.Certificates = removeAt(r.Certificates, idx)
		return r, true
	})
}

// AddLanguage appends a placeholder language.
func (s *Store) AddLanguage() string {
	var id string
	s.mutateActive(func(r types.Resume) (types.Resume, bool) {
		lang := types.NewLanguage()
		id = lang.ID
		r.Languages = append(append([]types.Language(nil), r.Languages...), lang)
		return r, true
	})
	return id
}

// UpdateLanguage merges the patch into the language with the given ID.
func (s *Store) UpdateLanguage(id string, patch types.LanguagePatch) {
	s.mutateActive(func(r types.Resume) (types.Resume, bool) {
		idx := findLanguage(r.Languages, id)
		if idx < 0 {
			return r, false
		}
		list := append([]types.Language(nil), r.Languages...)
		list[idx] = patch.Apply(list[idx])
		r.Languages = list
		return r, true
	})
}

// DeleteLanguage removes the language with the given ID.
func (s *Store) DeleteLanguage(id string) {
	s.mutateActive(func(r types.Resume) (types.Resume, bool) {
		idx := findLanguage(r.Languages, id)
		if idx < 0 {
			return r, false
		}
		r.Languages = removeAt(r.Languages, idx)
		return r, true
	})
}

func findExperience(list []types.Experience, id string) int {
	for i, e := range list {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func findEducation(list []types.Education, id string) int {
	for i, e := range list {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func findSkill(list []types.Skill, id string) int {
	for i, sk := range list {
		if sk.ID == id {
			return i
		}
	}
	return -1
}

func findProject(list []types.Project, id string) int {
	for i, p := range list {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func findCertificate(list []types.Certificate, id string) int {
	for i, c := range list {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func findLanguage(list []types.Language, id string) int {
	for i, l := range list {
		if l.ID == id {
			return i
		}
	}
	return -1
}
