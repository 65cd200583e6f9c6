package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/types"
)

var editCommand = &cobra.Command{
	Use:   "edit",
	Short: "Edit an entry of the active resume by ID",
	Long: `Edits one entry of the active resume. Only flags that are explicitly
provided are applied. List-valued fields (achievements, technologies) are
replaced wholesale: pass the complete new list as repeated flags.`,
}

var editExperienceCommand = &cobra.Command{
	Use:   "experience <entry-id>",
	Short: "Edit an experience entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runEditExperienceCmd,
}

var (
	editExpCompany      string
	editExpRole         string
	editExpStartDate    string
	editExpEndDate      string
	editExpCurrent      bool
	editExpDescription  string
	editExpAchievements []string
)

var editEducationCommand = &cobra.Command{
	Use:   "education <entry-id>",
	Short: "Edit an education entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runEditEducationCmd,
}

var (
	editEduInstitution string
	editEduDegree      string
	editEduField       string
	editEduStartDate   string
	editEduEndDate     string
	editEduDescription string
)

var editSkillCommand = &cobra.Command{
	Use:   "skill <entry-id>",
	Short: "Edit a skill entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runEditSkillCmd,
}

var (
	editSkillName     string
	editSkillLevel    int
	editSkillCategory string
)

var editProjectCommand = &cobra.Command{
	Use:   "project <entry-id>",
	Short: "Edit a project entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runEditProjectCmd,
}

var (
	editProjTitle        string
	editProjDescription  string
	editProjTechnologies []string
	editProjLink         string
	editProjGitHub       string
)

var editCertificateCommand = &cobra.Command{
	Use:   "certificate <entry-id>",
	Short: "Edit a certificate entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runEditCertificateCmd,
}

var (
	editCertName   string
	editCertIssuer string
	editCertDate   string
	editCertLink   string
)

var editLanguageCommand = &cobra.Command{
	Use:   "language <entry-id>",
	Short: "Edit a language entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runEditLanguageCmd,
}

var (
	editLangName        string
	editLangProficiency string
)

func init() {
	editExperienceCommand.Flags().StringVar(&editExpCompany, "company", "", "Company name")
	editExperienceCommand.Flags().StringVar(&editExpRole, "role", "", "Role title")
	editExperienceCommand.Flags().StringVar(&editExpStartDate, "start-date", "", "Start date (YYYY-MM)")
	editExperienceCommand.Flags().StringVar(&editExpEndDate, "end-date", "", "End date (YYYY-MM, empty for current roles)")
	editExperienceCommand.Flags().BoolVar(&editExpCurrent, "current", false, "Whether this is the current role")
	editExperienceCommand.Flags().StringVar(&editExpDescription, "description", "", "Role description")
	editExperienceCommand.Flags().StringArrayVar(&editExpAchievements, "achievement", nil, "Achievement bullet (repeatable; replaces the whole list)")

	editEducationCommand.Flags().StringVar(&editEduInstitution, "institution", "", "Institution name")
	editEducationCommand.Flags().StringVar(&editEduDegree, "degree", "", "Degree")
	editEducationCommand.Flags().StringVar(&editEduField, "field", "", "Field of study")
	editEducationCommand.Flags().StringVar(&editEduStartDate, "start-date", "", "Start date (YYYY-MM)")
	editEducationCommand.Flags().StringVar(&editEduEndDate, "end-date", "", "End date (YYYY-MM)")
	editEducationCommand.Flags().StringVar(&editEduDescription, "description", "", "Description")

	editSkillCommand.Flags().StringVar(&editSkillName, "name", "", "Skill name")
	editSkillCommand.Flags().IntVar(&editSkillLevel, "level", 0, "Skill level (1-5 by convention; stored as-is)")
	editSkillCommand.Flags().StringVar(&editSkillCategory, "category", "", "Skill category")

	editProjectCommand.Flags().StringVar(&editProjTitle, "title", "", "Project title")
	editProjectCommand.Flags().StringVar(&editProjDescription, "description", "", "Project description")
	editProjectCommand.Flags().StringArrayVar(&editProjTechnologies, "tech", nil, "Technology (repeatable; replaces the whole list)")
	editProjectCommand.Flags().StringVar(&editProjLink, "link", "", "Project link")
	editProjectCommand.Flags().StringVar(&editProjGitHub, "github", "", "GitHub link")

	editCertificateCommand.Flags().StringVar(&editCertName, "name", "", "Certificate name")
	editCertificateCommand.Flags().StringVar(&editCertIssuer, "issuer", "", "Issuing organization")
	editCertificateCommand.Flags().StringVar(&editCertDate, "date", "", "Issue date")
	editCertificateCommand.Flags().StringVar(&editCertLink, "link", "", "Credential link")

	editLanguageCommand.Flags().StringVar(&editLangName, "name", "", "Language name")
	editLanguageCommand.Flags().StringVar(&editLangProficiency, "proficiency", "", "Proficiency (native, fluent, advanced, intermediate, basic)")

	editCommand.AddCommand(editExperienceCommand)
	editCommand.AddCommand(editEducationCommand)
	editCommand.AddCommand(editSkillCommand)
	editCommand.AddCommand(editProjectCommand)
	editCommand.AddCommand(editCertificateCommand)
	editCommand.AddCommand(editLanguageCommand)
	rootCmd.AddCommand(editCommand)
}

func runEditExperienceCmd(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}

	patch := types.ExperiencePatch{}
	changed := false
	stringFlag(cmd, "company", editExpCompany, &patch.Company, &changed)
	stringFlag(cmd, "role", editExpRole, &patch.Role, &changed)
	stringFlag(cmd, "start-date", editExpStartDate, &patch.StartDate, &changed)
	stringFlag(cmd, "end-date", editExpEndDate, &patch.EndDate, &changed)
	stringFlag(cmd, "description", editExpDescription, &patch.Description, &changed)
	if cmd.Flags().Changed("current") {
		patch.Current = types.Bool(editExpCurrent)
		changed = true
	}
	if cmd.Flags().Changed("achievement") {
		patch.Achievements = editExpAchievements
		changed = true
	}

	if changed {
		a.store.UpdateExperience(args[0], patch)
	}
	if a.verbose {
		a.printer.PrintResume(a.store.ActiveResume())
	}
	return nil
}

func runEditEducationCmd(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}

	patch := types.EducationPatch{}
	changed := false
	stringFlag(cmd, "institution", editEduInstitution, &patch.Institution, &changed)
	stringFlag(cmd, "degree", editEduDegree, &patch.Degree, &changed)
	stringFlag(cmd, "field", editEduField, &patch.Field, &changed)
	stringFlag(cmd, "start-date", editEduStartDate, &patch.StartDate, &changed)
	stringFlag(cmd, "end-date", editEduEndDate, &patch.EndDate, &changed)
	stringFlag(cmd, "description", editEduDescription, &patch.Description, &changed)

	if changed {
		a.store.UpdateEducation(args[0], patch)
	}
	return nil
}

func runEditSkillCmd(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}

	patch := types.SkillPatch{}
	changed := false
	stringFlag(cmd, "name", editSkillName, &patch.Name, &changed)
	stringFlag(cmd, "category", editSkillCategory, &patch.Category, &changed)
	if cmd.Flags().Changed("level") {
		patch.Level = types.Int(editSkillLevel)
		changed = true
	}

	if changed {
		a.store.UpdateSkill(args[0], patch)
	}
	return nil
}

func runEditProjectCmd(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}

	patch := types.ProjectPatch{}
	changed := false
	stringFlag(cmd, "title", editProjTitle, &patch.Title, &changed)
	stringFlag(cmd, "description", editProjDescription, &patch.Description, &changed)
	stringFlag(cmd, "link", editProjLink, &patch.Link, &changed)
	stringFlag(cmd, "github", editProjGitHub, &patch.GitHub, &changed)
	if cmd.Flags().Changed("tech") {
		patch.Technologies = editProjTechnologies
		changed = true
	}

	if changed {
		a.store.UpdateProject(args[0], patch)
	}
	return nil
}

func runEditCertificateCmd(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}

	patch := types.CertificatePatch{}
	changed := false
	stringFlag(cmd, "name", editCertName, &patch.Name, &changed)
	stringFlag(cmd, "issuer", editCertIssuer, &patch.Issuer, &changed)
	stringFlag(cmd, "date", editCertDate, &patch.Date, &changed)
	stringFlag(cmd, "link", editCertLink, &patch.Link, &changed)

	if changed {
		a.store.UpdateCertificate(args[0], patch)
	}
	return nil
}

func runEditLanguageCmd(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}

	patch := types.LanguagePatch{}
	changed := false
	stringFlag(cmd, "name", editLangName, &patch.Name, &changed)
	if cmd.Flags().Changed("proficiency") {
		prof := types.Proficiency(editLangProficiency)
		patch.Proficiency = &prof
		changed = true
	}

	if changed {
		a.store.UpdateLanguage(args[0], patch)
	}
	return nil
}
