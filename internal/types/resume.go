// Package types provides type definitions for the resume document model used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Template names a rendering variant. It selects visual layout, not data shape.
type Template string

// Supported template variants. Unrecognized values fall back to TemplateModern
// at render time.
const (
	TemplateModern  Template = "modern"
	TemplateClassic Template = "classic"
	TemplateMinimal Template = "minimal"
)

// SectionType identifies one of the seven section kinds of a resume.
type SectionType string

// Section kinds, in their default display order.
const (
	SectionPersonal     SectionType = "personal"
	SectionExperience   SectionType = "experience"
	SectionEducation    SectionType = "education"
	SectionSkills       SectionType = "skills"
	SectionProjects     SectionType = "projects"
	SectionCertificates SectionType = "certificates"
	SectionLanguages    SectionType = "languages"
)

// Proficiency is a self-assessed language proficiency level.
type Proficiency string

// Language proficiency levels.
const (
	ProficiencyNative       Proficiency = "native"
	ProficiencyFluent       Proficiency = "fluent"
	ProficiencyAdvanced     Proficiency = "advanced"
	ProficiencyIntermediate Proficiency = "intermediate"
	ProficiencyBasic        Proficiency = "basic"
)

// FontFamily names one of the supported theme font stacks.
type FontFamily string

// Theme font families.
const (
	FontInter        FontFamily = "inter"
	FontGeorgia      FontFamily = "georgia"
	FontRoboto       FontFamily = "roboto"
	FontMerriweather FontFamily = "merriweather"
)

// FontSize is a theme font size step.
type FontSize string

// Theme font sizes.
const (
	FontSizeSmall  FontSize = "small"
	FontSizeMedium FontSize = "medium"
	FontSizeLarge  FontSize = "large"
)

// Spacing is a theme vertical density step.
type Spacing string

// Theme spacing steps.
const (
	SpacingCompact     Spacing = "compact"
	SpacingComfortable Spacing = "comfortable"
	SpacingSpacious    Spacing = "spacious"
)

// PersonalInfo holds the scalar contact and summary fields of a resume.
// Exactly one exists per resume and it is never nil; fields default to
// placeholder text.
type PersonalInfo struct {
	FullName string `json:"full_name"`
	JobTitle string `json:"job_title"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Website  string `json:"website"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Summary  string `json:"summary"`
}

// Experience represents a single work history entry. Achievements are an
// ordered list of free-text bullet points.
type Experience struct {
	ID           string   `json:"id"`
	Company      string   `json:"company"`
	Role         string   `json:"role"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	Current      bool     `json:"current"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
}

// Education represents a single education entry.
type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description"`
}

// Skill represents a named skill with a 1-5 level. The level is a convention,
// not a store-enforced range; out-of-range values round-trip unchanged and are
// clamped only at the display boundary.
type Skill struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Level    int    `json:"level"`
	Category string `json:"category"`
}

// Project represents a portfolio project. Technologies are an ordered list of
// free-text names.
type Project struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Link         string   `json:"link"`
	GitHub       string   `json:"github"`
}

// Certificate represents a certification entry.
type Certificate struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
	Link   string `json:"link"`
}

// Language represents a spoken language entry.
type Language struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Proficiency Proficiency `json:"proficiency"`
}

// ResumeSection is layout and visibility metadata for one section of a resume.
// Order values are not guaranteed contiguous or unique; renderers sort
// ascending and break ties by the stable original order.
type ResumeSection struct {
	ID      string      `json:"id"`
	Type    SectionType `json:"type"`
	Visible bool        `json:"visible"`
	Order   int         `json:"order"`
}

// ResumeTheme holds visual styling choices. A theme is always fully populated;
// there is no partial or nil theme.
type ResumeTheme struct {
	PrimaryColor string     `json:"primary_color"`
	FontFamily   FontFamily `json:"font_family"`
	FontSize     FontSize   `json:"font_size"`
	Spacing      Spacing    `json:"spacing"`
}

// Resume is the root aggregate of the document model. A resume exclusively
// owns all of its nested collections; entities are never shared across
// resumes. CreatedAt and UpdatedAt are fixed-width UTC ISO-8601 strings with
// millisecond precision (see Timestamp in defaults.go).
type Resume struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Template     Template        `json:"template"`
	Theme        ResumeTheme     `json:"theme"`
	Sections     []ResumeSection `json:"sections"`
	PersonalInfo PersonalInfo    `json:"personal_info"`
	Experiences  []Experience    `json:"experiences"`
	Education    []Education     `json:"education"`
	Skills       []Skill         `json:"skills"`
	Projects     []Project       `json:"projects"`
	Certificates []Certificate   `json:"certificates"`
	Languages    []Language      `json:"languages"`
	CreatedAt    string          `json:"created_at"`
	UpdatedAt    string          `json:"updated_at"`
}
