package rendering

import (
	"embed"
	"html/template"
	"sort"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(
	template.New("resume").Funcs(template.FuncMap{
		"skillPercent": skillPercent,
	}).ParseFS(templateFS, "templates/*.tmpl"),
)

// templateNames maps template enum values to embedded template files.
// Unrecognized values fall back to modern.
var templateNames = map[types.Template]string{
	types.TemplateModern:  "modern.tmpl",
	types.TemplateClassic: "classic.tmpl",
	types.TemplateMinimal: "minimal.tmpl",
}

// TemplateData is the view model passed to the HTML templates.
type TemplateData struct {
	Name         string
	PersonalInfo types.PersonalInfo
	Sections     []SectionData
	Styles       Styles
}

// SectionData is one visible section in display order. Only the collection
// matching Type is populated.
type SectionData struct {
	Type         types.SectionType
	PersonalInfo types.PersonalInfo
	Experiences  []types.Experience
	Education    []types.Education
	Skills       []SkillData
	Projects     []types.Project
	Certificates []types.Certificate
	Languages    []types.Language
}

// SkillData carries a skill plus its display level, clamped to [1,5]. The
// store and snapshot keep out-of-range levels untouched; the clamp happens
// only here, at the display boundary.
type SkillData struct {
	types.Skill
	Display int
}

// Styles holds the theme resolved to concrete CSS values. The fixed lookup
// values are template.CSS so the quoted font stacks survive the HTML
// templater's CSS context; the user-supplied primary color stays a plain
// string and goes through normal sanitization.
type Styles struct {
	PrimaryColor string
	FontStack    template.CSS
	BaseSize     template.CSS
	SectionGap   template.CSS
	ItemGap      template.CSS
}

// Render projects a resume into a standalone HTML document. It is a pure,
// deterministic function of its input; rendering never mutates the resume.
func Render(r *types.Resume) (string, error) {
	if r == nil {
		return "", &RenderError{Message: "nil resume"}
	}

	name, ok := templateNames[r.Template]
	if !ok {
		name = templateNames[types.TemplateModern]
	}

	data := buildTemplateData(r)

	var sb strings.Builder
	if err := templates.ExecuteTemplate(&sb, name, data); err != nil {
		return "", &TemplateError{Message: "failed to execute template " + name, Cause: err}
	}
	return sb.String(), nil
}

func buildTemplateData(r *types.Resume) *TemplateData {
	return &TemplateData{
		Name:         r.Name,
		PersonalInfo: r.PersonalInfo,
		Sections:     buildSections(r),
		Styles:       resolveStyles(r.Theme),
	}
}

// buildSections filters the resume's sections to the visible ones and sorts
// them ascending by order. The sort is stable, so equal orders keep their
// original relative position.
func buildSections(r *types.Resume) []SectionData {
	visible := make([]types.ResumeSection, 0, len(r.Sections))
	for _, sec := range r.Sections {
		if sec.Visible {
			visible = append(visible, sec)
		}
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].Order < visible[j].Order
	})

	out := make([]SectionData, 0, len(visible))
	for _, sec := range visible {
		sd := SectionData{Type: sec.Type}
		switch sec.Type {
		case types.SectionPersonal:
			sd.PersonalInfo = r.PersonalInfo
		case types.SectionExperience:
			sd.Experiences = r.Experiences
		case types.SectionEducation:
			sd.Education = r.Education
		case types.SectionSkills:
			sd.Skills = buildSkills(r.Skills)
		case types.SectionProjects:
			sd.Projects = r.Projects
		case types.SectionCertificates:
			sd.Certificates = r.Certificates
		case types.SectionLanguages:
			sd.Languages = r.Languages
		}
		out = append(out, sd)
	}
	return out
}

func buildSkills(skills []types.Skill) []SkillData {
	out := make([]SkillData, 0, len(skills))
	for _, sk := range skills {
		out = append(out, SkillData{Skill: sk, Display: clampLevel(sk.Level)})
	}
	return out
}

func clampLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > 5 {
		return 5
	}
	return level
}

// skillPercent converts a display level into a bar width percentage.
func skillPercent(display int) int {
	return clampLevel(display) * 20
}

var fontStacks = map[types.FontFamily]template.CSS{
	types.FontInter:        `"Inter", "Helvetica Neue", Arial, sans-serif`,
	types.FontGeorgia:      `Georgia, "Times New Roman", serif`,
	types.FontRoboto:       `"Roboto", "Segoe UI", Arial, sans-serif`,
	types.FontMerriweather: `"Merriweather", Georgia, serif`,
}

var baseSizes = map[types.FontSize]template.CSS{
	types.FontSizeSmall:  "12px",
	types.FontSizeMedium: "14px",
	types.FontSizeLarge:  "16px",
}

var sectionGaps = map[types.Spacing]template.CSS{
	types.SpacingCompact:     "12px",
	types.SpacingComfortable: "20px",
	types.SpacingSpacious:    "32px",
}

var itemGaps = map[types.Spacing]template.CSS{
	types.SpacingCompact:     "6px",
	types.SpacingComfortable: "10px",
	types.SpacingSpacious:    "16px",
}

func resolveStyles(theme types.ResumeTheme) Styles {
	styles := Styles{
		PrimaryColor: theme.PrimaryColor,
		FontStack:    fontStacks[theme.FontFamily],
		BaseSize:     baseSizes[theme.FontSize],
		SectionGap:   sectionGaps[theme.Spacing],
		ItemGap:      itemGaps[theme.Spacing],
	}
	if styles.FontStack == "" {
		styles.FontStack = fontStacks[types.FontInter]
	}
	if styles.BaseSize == "" {
		styles.BaseSize = baseSizes[types.FontSizeMedium]
	}
	if styles.SectionGap == "" {
		styles.SectionGap = sectionGaps[types.SpacingComfortable]
	}
	if styles.ItemGap == "" {
		styles.ItemGap = itemGaps[types.SpacingComfortable]
	}
	return styles
}
