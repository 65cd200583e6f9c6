package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/types"
)

func TestSetCommand_OnlyChangedFlagsApplied(t *testing.T) {
	isolateStorage(t)

	changed := []string{"job-title", "primary-color", "template"}
	require.NoError(t, setCommand.Flags().Set("job-title", "Staff Engineer"))
	require.NoError(t, setCommand.Flags().Set("primary-color", "#7c3aed"))
	require.NoError(t, setCommand.Flags().Set("template", "classic"))
	t.Cleanup(func() {
		// Clear the Changed markers so the shared command can run again.
		for _, name := range changed {
			f := setCommand.Flags().Lookup(name)
			f.Changed = false
			_ = f.Value.Set(f.DefValue)
		}
	})

	require.NoError(t, runSetCmd(setCommand, nil))

	a, err := openApp(newRootFlagsCommand(t))
	require.NoError(t, err)
	active := a.store.ActiveResume()

	assert.Equal(t, "Staff Engineer", active.PersonalInfo.JobTitle)
	assert.Equal(t, "#7c3aed", active.Theme.PrimaryColor)
	assert.Equal(t, types.TemplateClassic, active.Template)

	// Untouched fields keep their defaults.
	assert.Equal(t, "Alex Johnson", active.PersonalInfo.FullName)
	assert.Equal(t, types.FontInter, active.Theme.FontFamily)
}
