package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/types"
)

var setCommand = &cobra.Command{
	Use:   "set",
	Short: "Update fields of the active resume",
	Long: `Updates personal info, theme, or template fields of the active resume.
Only flags that are explicitly provided are applied; everything else is left
unchanged.`,
	RunE: runSetCmd,
}

var (
	setFullName     string
	setJobTitle     string
	setEmail        string
	setPhone        string
	setLocation     string
	setWebsite      string
	setLinkedIn     string
	setGitHub       string
	setSummary      string
	setPrimaryColor string
	setFontFamily   string
	setFontSize     string
	setSpacing      string
	setTemplate     string
)

func init() {
	setCommand.Flags().StringVar(&setFullName, "full-name", "", "Full name")
	setCommand.Flags().StringVar(&setJobTitle, "job-title", "", "Job title")
	setCommand.Flags().StringVar(&setEmail, "email", "", "Email address")
	setCommand.Flags().StringVar(&setPhone, "phone", "", "Phone number")
	setCommand.Flags().StringVar(&setLocation, "location", "", "Location")
	setCommand.Flags().StringVar(&setWebsite, "website", "", "Website URL")
	setCommand.Flags().StringVar(&setLinkedIn, "linkedin", "", "LinkedIn profile")
	setCommand.Flags().StringVar(&setGitHub, "github", "", "GitHub profile")
	setCommand.Flags().StringVar(&setSummary, "summary", "", "Professional summary")

	setCommand.Flags().StringVar(&setPrimaryColor, "primary-color", "", "Theme primary color (hex)")
	setCommand.Flags().StringVar(&setFontFamily, "font-family", "", "Theme font family (inter, georgia, roboto, merriweather)")
	setCommand.Flags().StringVar(&setFontSize, "font-size", "", "Theme font size (small, medium, large)")
	setCommand.Flags().StringVar(&setSpacing, "spacing", "", "Theme spacing (compact, comfortable, spacious)")

	setCommand.Flags().StringVar(&setTemplate, "template", "", "Rendering template (modern, classic, minimal)")

	rootCmd.AddCommand(setCommand)
}

func runSetCmd(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}

	info := types.PersonalInfoPatch{}
	infoChanged := false
	stringFlag(cmd, "full-name", setFullName, &info.FullName, &infoChanged)
	stringFlag(cmd, "job-title", setJobTitle, &info.JobTitle, &infoChanged)
	stringFlag(cmd, "email", setEmail, &info.Email, &infoChanged)
	stringFlag(cmd, "phone", setPhone, &info.Phone, &infoChanged)
	stringFlag(cmd, "location", setLocation, &info.Location, &infoChanged)
	stringFlag(cmd, "website", setWebsite, &info.Website, &infoChanged)
	stringFlag(cmd, "linkedin", setLinkedIn, &info.LinkedIn, &infoChanged)
	stringFlag(cmd, "github", setGitHub, &info.GitHub, &infoChanged)
	stringFlag(cmd, "summary", setSummary, &info.Summary, &infoChanged)
	if infoChanged {
		a.store.UpdatePersonalInfo(info)
	}

	theme := types.ThemePatch{}
	themeChanged := false
	if cmd.Flags().Changed("primary-color") {
		theme.PrimaryColor = types.String(setPrimaryColor)
		themeChanged = true
	}
	if cmd.Flags().Changed("font-family") {
		family := types.FontFamily(setFontFamily)
		theme.FontFamily = &family
		themeChanged = true
	}
	if cmd.Flags().Changed("font-size") {
		size := types.FontSize(setFontSize)
		theme.FontSize = &size
		themeChanged = true
	}
	if cmd.Flags().Changed("spacing") {
		spacing := types.Spacing(setSpacing)
		theme.Spacing = &spacing
		themeChanged = true
	}
	if themeChanged {
		a.store.UpdateTheme(theme)
	}

	if cmd.Flags().Changed("template") {
		a.store.UpdateTemplate(types.Template(setTemplate))
	}

	if a.verbose {
		a.printer.PrintResume(a.store.ActiveResume())
	}
	return nil
}

// stringFlag copies a changed string flag value into a patch field.
func stringFlag(cmd *cobra.Command, name, value string, dst **string, changed *bool) {
	if cmd.Flags().Changed(name) {
		*dst = types.String(value)
		*changed = true
	}
}
