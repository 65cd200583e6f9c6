// Package types provides type definitions for the resume document model used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Clone returns a deep copy of the resume over the known entity shapes.
// Nested entity IDs are preserved; only a caller that wants a fresh identity
// (duplication) replaces the top-level ID and timestamps afterwards.
// Every collection in the copy is non-nil, even when empty, so the clone
// always serializes its collections as JSON arrays.
func (r *Resume) Clone() *Resume {
	if r == nil {
		return nil
	}

	out := *r
	out.Sections = cloneSlice(r.Sections)
	out.Experiences = cloneExperiences(r.Experiences)
	out.Education = cloneSlice(r.Education)
	out.Skills = cloneSlice(r.Skills)
	out.Projects = cloneProjects(r.Projects)
	out.Certificates = cloneSlice(r.Certificates)
	out.Languages = cloneSlice(r.Languages)
	return &out
}

// cloneSlice copies a slice. The result is never nil; empty input yields an
// empty non-nil slice so it marshals as [] rather than null.
func cloneSlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func cloneExperiences(in []Experience) []Experience {
	out := make([]Experience, len(in))
	for i, e := range in {
		e.Achievements = cloneSlice(e.Achievements)
		out[i] = e
	}
	return out
}

func cloneProjects(in []Project) []Project {
	out := make([]Project, len(in))
	for i, p := range in {
		p.Technologies = cloneSlice(p.Technologies)
		out[i] = p
	}
	return out
}
