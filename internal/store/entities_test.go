package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/types"
)

func TestAddExperience(t *testing.T) {
	s := newTestStore(t)
	before := s.ActiveResume()

	id := s.AddExperience()

	require.NotEmpty(t, id)
	after := s.ActiveResume()
	require.Len(t, after.Experiences, len(before.Experiences)+1)

	added := after.Experiences[len(after.Experiences)-1]
	assert.Equal(t, id, added.ID)
	assert.Equal(t, "Company Name", added.Company)
	assert.Equal(t, "Job Title", added.Role)

	// The prior revision is untouched.
	assert.Len(t, before.Experiences, 2)
}

func TestUpdateExperience_MarkCurrent(t *testing.T) {
	s := newTestStore(t)
	exp := s.ActiveResume().Experiences[1]
	require.NotEmpty(t, exp.EndDate)

	s.UpdateExperience(exp.ID, types.ExperiencePatch{
		Current: types.Bool(true),
		EndDate: types.String(""),
	})

	got := s.ActiveResume().Experiences[1]
	assert.Equal(t, exp.ID, got.ID)
	assert.True(t, got.Current)
	assert.Empty(t, got.EndDate)
	assert.Equal(t, exp.Company, got.Company)
	assert.Equal(t, exp.Achievements, got.Achievements)
}

func TestDeleteExperience(t *testing.T) {
	s := newTestStore(t)
	experiences := s.ActiveResume().Experiences
	require.Len(t, experiences, 2)

	s.DeleteExperience(experiences[0].ID)

	got := s.ActiveResume().Experiences
	require.Len(t, got, 1)
	assert.Equal(t, experiences[1].ID, got[0].ID)
}

func TestUpdateExperience_UnknownIDIsPureNoOp(t *testing.T) {
	s := newTestStore(t)
	before := s.ActiveResume()

	s.UpdateExperience("no-such-id", types.ExperiencePatch{Company: types.String("x")})
	s.DeleteExperience("no-such-id")

	assert.Same(t, before, s.ActiveResume())
}

func TestAddUpdateDeleteEducation(t *testing.T) {
	s := newTestStore(t)

	id := s.AddEducation()
	require.NotEmpty(t, id)

	s.UpdateEducation(id, types.EducationPatch{
		Institution: types.String("MIT"),
		Degree:      types.String("Bachelor of Science"),
	})

	edu := s.ActiveResume().Education
	require.Len(t, edu, 2)
	assert.Equal(t, "MIT", edu[1].Institution)
	assert.Equal(t, "Bachelor of Science", edu[1].Degree)

	s.DeleteEducation(id)
	assert.Len(t, s.ActiveResume().Education, 1)
}

func TestAddUpdateDeleteSkill(t *testing.T) {
	s := newTestStore(t)

	id := s.AddSkill()
	require.NotEmpty(t, id)

	skills := s.ActiveResume().Skills
	require.Len(t, skills, 7)
	assert.Equal(t, "New Skill", skills[6].Name)
	assert.Equal(t, 3, skills[6].Level)

	// Levels outside 1..5 are stored verbatim.
	s.UpdateSkill(id, types.SkillPatch{Name: types.String("Rust"), Level: types.Int(8)})
	got := s.ActiveResume().Skills[6]
	assert.Equal(t, "Rust", got.Name)
	assert.Equal(t, 8, got.Level)

	s.DeleteSkill(id)
	assert.Len(t, s.ActiveResume().Skills, 6)
}

func TestAddUpdateDeleteProject(t *testing.T) {
	s := newTestStore(t)

	id := s.AddProject()
	require.NotEmpty(t, id)

	s.UpdateProject(id, types.ProjectPatch{
		Title:        types.String("CLI Toolkit"),
		Technologies: []string{"Go", "Cobra"},
	})

	projects := s.ActiveResume().Projects
	require.Len(t, projects, 2)
	assert.Equal(t, "CLI Toolkit", projects[1].Title)
	assert.Equal(t, []string{"Go", "Cobra"}, projects[1].Technologies)

	s.DeleteProject(id)
	assert.Len(t, s.ActiveResume().Projects, 1)
}

func TestAddUpdateDeleteCertificate(t *testing.T) {
	s := newTestStore(t)

	id := s.AddCertificate()
	require.NotEmpty(t, id)

	s.UpdateCertificate(id, types.CertificatePatch{
		Name:   types.String("AWS Solutions Architect"),
		Issuer: types.String("Amazon"),
	})

	certs := s.ActiveResume().Certificates
	require.Len(t, certs, 1)
	assert.Equal(t, "AWS Solutions Architect", certs[0].Name)

	s.DeleteCertificate(id)
	assert.Empty(t, s.ActiveResume().Certificates)
}

func TestAddUpdateDeleteLanguage(t *testing.T) {
	s := newTestStore(t)

	id := s.AddLanguage()
	require.NotEmpty(t, id)

	prof := types.ProficiencyFluent
	s.UpdateLanguage(id, types.LanguagePatch{
		Name:        types.String("Spanish"),
		Proficiency: &prof,
	})

	langs := s.ActiveResume().Languages
	require.Len(t, langs, 1)
	assert.Equal(t, "Spanish", langs[0].Name)
	assert.Equal(t, types.ProficiencyFluent, langs[0].Proficiency)

	s.DeleteLanguage(id)
	assert.Empty(t, s.ActiveResume().Languages)
}

func TestDeleteLastEntry_CollectionStaysNonNil(t *testing.T) {
	s := newTestStore(t)

	for _, edu := range s.ActiveResume().Education {
		s.DeleteEducation(edu.ID)
	}
	for _, proj := range s.ActiveResume().Projects {
		s.DeleteProject(proj.ID)
	}

	active := s.ActiveResume()
	assert.NotNil(t, active.Education)
	assert.Empty(t, active.Education)
	assert.NotNil(t, active.Projects)
	assert.Empty(t, active.Projects)
}

func TestEntityMutation_DoesNotLeakIntoPriorRevision(t *testing.T) {
	s := newTestStore(t)
	before := s.ActiveResume()
	skillID := before.Skills[0].ID

	s.UpdateSkill(skillID, types.SkillPatch{Name: types.String("Changed")})

	assert.Equal(t, "React", before.Skills[0].Name)
	assert.Equal(t, "Changed", s.ActiveResume().Skills[0].Name)
}
