package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var newCommand = &cobra.Command{
	Use:   "new",
	Short: "Create a new resume and make it active",
	RunE:  runNewCmd,
}

var listCommand = &cobra.Command{
	Use:   "list",
	Short: "List all resumes; the active one is marked with *",
	RunE:  runListCmd,
}

var useCommand = &cobra.Command{
	Use:   "use <resume-id>",
	Short: "Switch the active resume",
	Args:  cobra.ExactArgs(1),
	RunE:  runUseCmd,
}

var duplicateCommand = &cobra.Command{
	Use:   "duplicate <resume-id>",
	Short: "Duplicate a resume, including all of its entries, and make the copy active",
	Args:  cobra.ExactArgs(1),
	RunE:  runDuplicateCmd,
}

var deleteCommand = &cobra.Command{
	Use:   "delete <resume-id>",
	Short: "Delete a resume",
	Args:  cobra.ExactArgs(1),
	RunE:  runDeleteCmd,
}

var renameCommand = &cobra.Command{
	Use:   "rename <name>",
	Short: "Rename the active resume",
	Args:  cobra.ExactArgs(1),
	RunE:  runRenameCmd,
}

func init() {
	rootCmd.AddCommand(newCommand)
	rootCmd.AddCommand(listCommand)
	rootCmd.AddCommand(useCommand)
	rootCmd.AddCommand(duplicateCommand)
	rootCmd.AddCommand(deleteCommand)
	rootCmd.AddCommand(renameCommand)
}

func runNewCmd(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}

	id := a.store.CreateResume()
	fmt.Printf("Created resume %s\n", id)
	if a.verbose {
		a.printer.PrintResume(a.store.ActiveResume())
	}
	return nil
}

func runListCmd(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}

	a.printer.PrintResumeList(a.store.Resumes(), a.store.ActiveResumeID())
	return nil
}

func runUseCmd(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}

	a.store.SetActiveResume(args[0])
	active := a.store.ActiveResume()
	if active == nil || active.ID != args[0] {
		fmt.Printf("No resume with ID %s; active resume unchanged\n", args[0])
		return nil
	}
	fmt.Printf("Active resume: %s (%s)\n", active.Name, active.ID)
	return nil
}

func runDuplicateCmd(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}

	id := a.store.DuplicateResume(args[0])
	if id == "" {
		fmt.Printf("No resume with ID %s\n", args[0])
		return nil
	}
	fmt.Printf("Created resume %s\n", id)
	if a.verbose {
		a.printer.PrintResume(a.store.ActiveResume())
	}
	return nil
}

func runDeleteCmd(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}

	a.store.DeleteResume(args[0])
	if active := a.store.ActiveResume(); active != nil {
		fmt.Printf("Active resume: %s (%s)\n", active.Name, active.ID)
	} else {
		fmt.Println("No resumes remain")
	}
	return nil
}

func runRenameCmd(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}

	a.store.UpdateResumeName(args[0])
	return nil
}
