package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/snapshot"
	"github.com/jonathan/resume-builder/internal/store"
)

// app bundles the wired-up pieces every command needs: effective config, the
// hydrated document store with the snapshot saver attached, and the verbose
// printer.
type app struct {
	cfg     config.Config
	store   *store.Store
	printer *observability.Printer
	verbose bool
}

// openApp resolves configuration (defaults <- config file <- flags), loads the
// persisted snapshot, hydrates the store, and subscribes the saver so every
// subsequent mutation is snapshotted. A corrupt snapshot degrades to empty
// state with a warning; the store then synthesizes a default resume.
func openApp(cmd *cobra.Command) (*app, error) {
	cfg := config.Defaults()

	if rootConfigPath != "" {
		loaded, err := config.LoadConfig(rootConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return nil, err
		}
		cfg = loaded.MergeWithDefaults(cfg)
	}

	if cmd.Flags().Changed("storage") {
		cfg.SnapshotPath = rootStoragePath
	}
	if cmd.Flags().Changed("chrome-path") {
		cfg.ChromePath = rootChromePath
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = rootVerbose
	}

	snap, err := snapshot.Load(cfg.SnapshotPath)
	if err != nil {
		if !errors.Is(err, snapshot.ErrCorrupt) {
			return nil, err
		}
		fmt.Fprintf(os.Stderr, "Warning: %v; starting from empty state\n", err)
	}

	st := store.New()
	st.Hydrate(snap.Resumes, snap.ActiveResumeID)

	saver := snapshot.NewSaver(cfg.SnapshotPath)
	st.Subscribe(func() {
		if err := saver.Save(st.Resumes(), st.ActiveResumeID()); err != nil {
			// Durability risk only; in-memory state stays correct.
			fmt.Fprintf(os.Stderr, "Warning: failed to persist snapshot: %v\n", err)
		}
	})
	st.Ensure()

	return &app{
		cfg:     cfg,
		store:   st,
		printer: observability.NewPrinter(os.Stdout),
		verbose: cfg.Verbose,
	}, nil
}
