// Package types provides type definitions for the resume document model used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/google/uuid"
)

// timestampLayout is the fixed-width serialized form of document timestamps.
// Millisecond precision, always UTC with a literal Z, so timestamps compare
// correctly as strings.
const timestampLayout = "2006-01-02T15:04:05.000Z"

// Timestamp formats t as a document timestamp.
func Timestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// NewID returns a fresh opaque entity ID. IDs are client-generated and unique
// within their own collection; they are never reused after deletion.
func NewID() string {
	return uuid.NewString()
}

// DefaultTheme returns the theme applied to freshly created resumes.
func DefaultTheme() ResumeTheme {
	return ResumeTheme{
		PrimaryColor: "#1e293b",
		FontFamily:   FontInter,
		FontSize:     FontSizeMedium,
		Spacing:      SpacingComfortable,
	}
}

// DefaultSections returns the seven standard sections in default order.
// Certificates and languages start hidden.
func DefaultSections() []ResumeSection {
	return []ResumeSection{
		{ID: "personal", Type: SectionPersonal, Visible: true, Order: 0},
		{ID: "experience", Type: SectionExperience, Visible: true, Order: 1},
		{ID: "education", Type: SectionEducation, Visible: true, Order: 2},
		{ID: "skills", Type: SectionSkills, Visible: true, Order: 3},
		{ID: "projects", Type: SectionProjects, Visible: true, Order: 4},
		{ID: "certificates", Type: SectionCertificates, Visible: false, Order: 5},
		{ID: "languages", Type: SectionLanguages, Visible: false, Order: 6},
	}
}

func defaultPersonalInfo() PersonalInfo {
	return PersonalInfo{
		FullName: "Alex Johnson",
		JobTitle: "Senior Software Engineer",
		Email:    "alex.johnson@email.com",
		Phone:    "+1 (555) 123-4567",
		Location: "San Francisco, CA",
		Website:  "alexjohnson.dev",
		LinkedIn: "linkedin.com/in/alexjohnson",
		GitHub:   "github.com/alexjohnson",
		Summary: "Passionate software engineer with 8+ years of experience building scalable web applications. " +
			"Expertise in React, TypeScript, and Node.js. Led teams of 5+ engineers and delivered products used by millions of users.",
	}
}

func defaultExperiences() []Experience {
	return []Experience{
		{
			ID:          NewID(),
			Company:     "TechCorp Inc.",
			Role:        "Senior Software Engineer",
			StartDate:   "2021-01",
			Current:     true,
			Description: "Leading frontend architecture for enterprise SaaS platform serving 500K+ users.",
			Achievements: []string{
				"Reduced page load time by 40% through performance optimization",
				"Mentored 4 junior developers and established code review practices",
				"Designed and implemented component library used across 3 products",
			},
		},
		{
			ID:          NewID(),
			Company:     "StartupXYZ",
			Role:        "Full Stack Developer",
			StartDate:   "2018-06",
			EndDate:     "2020-12",
			Description: "Built core features for B2B marketplace platform from ground up.",
			Achievements: []string{
				"Developed real-time notification system handling 1M+ daily events",
				"Implemented payment integration processing $2M+ monthly transactions",
			},
		},
	}
}

func defaultEducation() []Education {
	return []Education{
		{
			ID:          NewID(),
			Institution: "Stanford University",
			Degree:      "Master of Science",
			Field:       "Computer Science",
			StartDate:   "2014-09",
			EndDate:     "2016-06",
			Description: "Focus on Distributed Systems and Machine Learning",
		},
	}
}

func defaultSkills() []Skill {
	return []Skill{
		{ID: NewID(), Name: "React", Level: 5, Category: "Frontend"},
		{ID: NewID(), Name: "TypeScript", Level: 5, Category: "Languages"},
		{ID: NewID(), Name: "Node.js", Level: 4, Category: "Backend"},
		{ID: NewID(), Name: "PostgreSQL", Level: 4, Category: "Database"},
		{ID: NewID(), Name: "AWS", Level: 4, Category: "Cloud"},
		{ID: NewID(), Name: "Docker", Level: 3, Category: "DevOps"},
	}
}

func defaultProjects() []Project {
	return []Project{
		{
			ID:           NewID(),
			Title:        "Open Source Component Library",
			Description:  "Built a React component library with 2K+ GitHub stars, featuring accessible and customizable UI components.",
			Technologies: []string{"React", "TypeScript", "Storybook", "Jest"},
			Link:         "components.dev",
			GitHub:       "github.com/alexjohnson/components",
		},
	}
}

// NewDefaultResume returns a freshly initialized resume seeded with sample
// content. CreatedAt and UpdatedAt are both set to now.
func NewDefaultResume(now time.Time) *Resume {
	ts := Timestamp(now)
	return &Resume{
		ID:           NewID(),
		Name:         "My Resume",
		Template:     TemplateModern,
		Theme:        DefaultTheme(),
		Sections:     DefaultSections(),
		PersonalInfo: defaultPersonalInfo(),
		Experiences:  defaultExperiences(),
		Education:    defaultEducation(),
		Skills:       defaultSkills(),
		Projects:     defaultProjects(),
		Certificates: []Certificate{},
		Languages:    []Language{},
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}
}

// NewExperience returns a placeholder experience entry with a fresh ID.
func NewExperience() Experience {
	return Experience{
		ID:           NewID(),
		Company:      "Company Name",
		Role:         "Job Title",
		Achievements: []string{},
	}
}

// NewEducation returns a placeholder education entry with a fresh ID.
func NewEducation() Education {
	return Education{
		ID:          NewID(),
		Institution: "University Name",
		Degree:      "Degree",
		Field:       "Field of Study",
	}
}

// NewSkill returns a placeholder skill with a fresh ID.
func NewSkill() Skill {
	return Skill{
		ID:       NewID(),
		Name:     "New Skill",
		Level:    3,
		Category: "General",
	}
}

// NewProject returns a placeholder project with a fresh ID.
func NewProject() Project {
	return Project{
		ID:           NewID(),
		Title:        "Project Title",
		Technologies: []string{},
	}
}

// NewCertificate returns a placeholder certificate with a fresh ID.
func NewCertificate() Certificate {
	return Certificate{
		ID:     NewID(),
		Name:   "Certificate Name",
		Issuer: "Issuing Organization",
	}
}

// NewLanguage returns a placeholder language with a fresh ID.
func NewLanguage() Language {
	return Language{
		ID:          NewID(),
		Name:        "Language",
		Proficiency: ProficiencyIntermediate,
	}
}
