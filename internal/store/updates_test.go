package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/types"
)

func TestUpdatePersonalInfo_ShallowMerge(t *testing.T) {
	s := newTestStore(t)
	before := s.ActiveResume()

	s.UpdatePersonalInfo(types.PersonalInfoPatch{
		FullName: types.String("Sam Lee"),
		JobTitle: types.String("Staff Engineer"),
	})

	after := s.ActiveResume()
	assert.Equal(t, "Sam Lee", after.PersonalInfo.FullName)
	assert.Equal(t, "Staff Engineer", after.PersonalInfo.JobTitle)
	assert.Equal(t, before.PersonalInfo.Email, after.PersonalInfo.Email)
	assert.Equal(t, before.PersonalInfo.Summary, after.PersonalInfo.Summary)
	assert.Greater(t, after.UpdatedAt, before.UpdatedAt)
}

func TestUpdateTheme_ShallowMerge(t *testing.T) {
	s := newTestStore(t)

	font := types.FontMerriweather
	s.UpdateTheme(types.ThemePatch{
		PrimaryColor: types.String("#7c3aed"),
		FontFamily:   &font,
	})

	theme := s.ActiveResume().Theme
	assert.Equal(t, "#7c3aed", theme.PrimaryColor)
	assert.Equal(t, types.FontMerriweather, theme.FontFamily)
	assert.Equal(t, types.FontSizeMedium, theme.FontSize)
}

func TestUpdateTemplate(t *testing.T) {
	s := newTestStore(t)

	s.UpdateTemplate(types.TemplateClassic)
	assert.Equal(t, types.TemplateClassic, s.ActiveResume().Template)

	// Unrecognized values are stored as-is; rendering falls back to modern.
	s.UpdateTemplate("vintage")
	assert.Equal(t, types.Template("vintage"), s.ActiveResume().Template)
}

func TestUpdateResumeName(t *testing.T) {
	s := newTestStore(t)

	s.UpdateResumeName("Backend Resume")
	assert.Equal(t, "Backend Resume", s.ActiveResume().Name)
}

func TestToggleSection(t *testing.T) {
	s := newTestStore(t)
	before := s.ActiveResume()
	require.True(t, sectionByID(t, before, "skills").Visible)

	s.ToggleSection("skills")
	assert.False(t, sectionByID(t, s.ActiveResume(), "skills").Visible)

	s.ToggleSection("skills")
	assert.True(t, sectionByID(t, s.ActiveResume(), "skills").Visible)

	// Toggling twice restores visibility but each toggle is a revision.
	assert.Greater(t, s.ActiveResume().UpdatedAt, before.UpdatedAt)
}

func TestToggleSection_UnknownIDIsPureNoOp(t *testing.T) {
	s := newTestStore(t)
	before := s.ActiveResume()

	s.ToggleSection("no-such-section")

	after := s.ActiveResume()
	assert.Same(t, before, after)
	assert.Equal(t, before.UpdatedAt, after.UpdatedAt)
}

func TestReorderSections(t *testing.T) {
	s := newTestStore(t)
	sections := s.ActiveResume().Sections

	// Move skills ahead of experience.
	reordered := append([]types.ResumeSection(nil), sections...)
	reordered[1], reordered[3] = reordered[3], reordered[1]
	for i := range reordered {
		reordered[i].Order = i
	}

	s.ReorderSections(reordered)

	got := s.ActiveResume().Sections
	require.Len(t, got, 7)
	assert.Equal(t, "skills", got[1].ID)
	assert.Equal(t, "experience", got[3].ID)
	assert.Equal(t, 1, got[1].Order)
}

func TestReorderSections_CopiesInput(t *testing.T) {
	s := newTestStore(t)
	sections := append([]types.ResumeSection(nil), s.ActiveResume().Sections...)

	s.ReorderSections(sections)
	sections[0].Visible = false

	assert.True(t, s.ActiveResume().Sections[0].Visible)
}

func sectionByID(t *testing.T, r *types.Resume, id string) types.ResumeSection {
	t.Helper()
	for _, sec := range r.Sections {
		if sec.ID == id {
			return sec
		}
	}
	t.Fatalf("section %s not found", id)
	return types.ResumeSection{}
}
