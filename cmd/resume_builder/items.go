package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var addCommand = &cobra.Command{
	Use:       "add <kind>",
	Short:     "Append a new entry to the active resume",
	Long:      "Appends a placeholder entry of the given kind (experience, education, skill, project, certificate, language) to the active resume and prints its ID.",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"experience", "education", "skill", "project", "certificate", "language"},
	RunE:      runAddCmd,
}

var removeCommand = &cobra.Command{
	Use:       "remove <kind> <entry-id>",
	Short:     "Remove an entry from the active resume",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"experience", "education", "skill", "project", "certificate", "language"},
	RunE:      runRemoveCmd,
}

func init() {
	rootCmd.AddCommand(addCommand)
	rootCmd.AddCommand(removeCommand)
}

func runAddCmd(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}

	var id string
	switch args[0] {
	case "experience":
		id = a.store.AddExperience()
	case "education":
		id = a.store.AddEducation()
	case "skill":
		id = a.store.AddSkill()
	case "project":
		id = a.store.AddProject()
	case "certificate":
		id = a.store.AddCertificate()
	case "language":
		id = a.store.AddLanguage()
	default:
		return fmt.Errorf("unknown entry kind %q", args[0])
	}

	if id == "" {
		fmt.Println("No active resume")
		return nil
	}
	fmt.Printf("Added %s %s\n", args[0], id)
	return nil
}

func runRemoveCmd(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}

	kind, id := args[0], args[1]
	switch kind {
	case "experience":
		a.store.DeleteExperience(id)
	case "education":
		a.store.DeleteEducation(id)
	case "skill":
		a.store.DeleteSkill(id)
	case "project":
		a.store.DeleteProject(id)
	case "certificate":
		a.store.DeleteCertificate(id)
	case "language":
		a.store.DeleteLanguage(id)
	default:
		return fmt.Errorf("unknown entry kind %q", kind)
	}

	if a.verbose {
		a.printer.PrintResume(a.store.ActiveResume())
	}
	return nil
}
