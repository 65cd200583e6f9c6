// Package types provides type definitions for the resume document model used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Patch structs carry partial updates for the update operations of the
// document store. A nil field leaves the target field unchanged; a non-nil
// field replaces it wholesale. Slice fields follow the same rule: nil means
// unchanged, a non-nil slice (including an empty one) replaces the whole list.
// This preserves shallow-merge semantics while keeping the contract statically
// checkable.

// PersonalInfoPatch is a partial update of PersonalInfo.
type PersonalInfoPatch struct {
	FullName *string
	JobTitle *string
	Email    *string
	Phone    *string
	Location *string
	Website  *string
	LinkedIn *string
	GitHub   *string
	Summary  *string
}

// Apply merges the patch into info and returns the result.
func (p PersonalInfoPatch) Apply(info PersonalInfo) PersonalInfo {
	setString(&info.FullName, p.FullName)
	setString(&info.JobTitle, p.JobTitle)
	setString(&info.Email, p.Email)
	setString(&info.Phone, p.Phone)
	setString(&info.Location, p.Location)
	setString(&info.Website, p.Website)
	setString(&info.LinkedIn, p.LinkedIn)
	setString(&info.GitHub, p.GitHub)
	setString(&info.Summary, p.Summary)
	return info
}

// ThemePatch is a partial update of ResumeTheme.
type ThemePatch struct {
	PrimaryColor *string
	FontFamily   *FontFamily
	FontSize     *FontSize
	Spacing      *Spacing
}

// Apply merges the patch into theme and returns the result.
func (p ThemePatch) Apply(theme ResumeTheme) ResumeTheme {
	setString(&theme.PrimaryColor, p.PrimaryColor)
	if p.FontFamily != nil {
		theme.FontFamily = *p.FontFamily
	}
	if p.FontSize != nil {
		theme.FontSize = *p.FontSize
	}
	if p.Spacing != nil {
		theme.Spacing = *p.Spacing
	}
	return theme
}

// ExperiencePatch is a partial update of an Experience entry.
type ExperiencePatch struct {
	Company      *string
	Role         *string
	StartDate    *string
	EndDate      *string
	Current      *bool
	Description  *string
	Achievements []string
}

// Apply merges the patch into exp and returns the result. The entity ID is
// never patched.
func (p ExperiencePatch) Apply(exp Experience) Experience {
	setString(&exp.Company, p.Company)
	setString(&exp.Role, p.Role)
	setString(&exp.StartDate, p.StartDate)
	setString(&exp.EndDate, p.EndDate)
	if p.Current != nil {
		exp.Current = *p.Current
	}
	setString(&exp.Description, p.Description)
	if p.Achievements != nil {
		exp.Achievements = cloneSlice(p.Achievements)
	}
	return exp
}

// EducationPatch is a partial update of an Education entry.
type EducationPatch struct {
	Institution *string
	Degree      *string
	Field       *string
	StartDate   *string
	EndDate     *string
	Description *string
}

// Apply merges the patch into edu and returns the result.
func (p EducationPatch) Apply(edu Education) Education {
	setString(&edu.Institution, p.Institution)
	setString(&edu.Degree, p.Degree)
	setString(&edu.Field, p.Field)
	setString(&edu.StartDate, p.StartDate)
	setString(&edu.EndDate, p.EndDate)
	setString(&edu.Description, p.Description)
	return edu
}

// SkillPatch is a partial update of a Skill entry. Level is not range-checked
// here; out-of-range values are clamped at the display boundary only.
type SkillPatch struct {
	Name     *string
	Level    *int
	Category *string
}

// Apply merges the patch into skill and returns the result.
func (p SkillPatch) Apply(skill Skill) Skill {
	setString(&skill.Name, p.Name)
	if p.Level != nil {
		skill.Level = *p.Level
	}
	setString(&skill.Category, p.Category)
	return skill
}

// ProjectPatch is a partial update of a Project entry.
type ProjectPatch struct {
	Title        *string
	Description  *string
	Technologies []string
	Link         *string
	GitHub       *string
}

// Apply merges the patch into proj and returns the result.
func (p ProjectPatch) Apply(proj Project) Project {
	setString(&proj.Title, p.Title)
	setString(&proj.Description, p.Description)
	if p.Technologies != nil {
		proj.Technologies = cloneSlice(p.Technologies)
	}
	setString(&proj.Link, p.Link)
	setString(&proj.GitHub, p.GitHub)
	return proj
}

// CertificatePatch is a partial update of a Certificate entry.
type CertificatePatch struct {
	Name   *string
	Issuer *string
	Date   *string
	Link   *string
}

// Apply merges the patch into cert and returns the result.
func (p CertificatePatch) Apply(cert Certificate) Certificate {
	setString(&cert.Name, p.Name)
	setString(&cert.Issuer, p.Issuer)
	setString(&cert.Date, p.Date)
	setString(&cert.Link, p.Link)
	return cert
}

// LanguagePatch is a partial update of a Language entry.
type LanguagePatch struct {
	Name        *string
	Proficiency *Proficiency
}

// Apply merges the patch into lang and returns the result.
func (p LanguagePatch) Apply(lang Language) Language {
	setString(&lang.Name, p.Name)
	if p.Proficiency != nil {
		lang.Proficiency = *p.Proficiency
	}
	return lang
}

func setString(dst, src *string) {
	if src != nil {
		*dst = *src
	}
}

// String returns a pointer to s, for building patches inline.
func String(s string) *string { return &s }

// Bool returns a pointer to b, for building patches inline.
func Bool(b bool) *bool { return &b }

// Int returns a pointer to i, for building patches inline.
func Int(i int) *int { return &i }
