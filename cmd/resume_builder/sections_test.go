package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultSectionIDs() []string {
	return []string{"personal", "experience", "education", "skills", "projects", "certificates", "languages"}
}

func TestSectionReorder_AppliesNewOrder(t *testing.T) {
	isolateStorage(t)

	args := []string{"personal", "skills", "experience", "education", "projects", "certificates", "languages"}
	require.NoError(t, runSectionReorderCmd(newRootFlagsCommand(t), args))

	// The new order survives a fresh open via the persisted snapshot.
	a, err := openApp(newRootFlagsCommand(t))
	require.NoError(t, err)
	sections := a.store.ActiveResume().Sections
	require.Len(t, sections, 7)
	for i, id := range args {
		assert.Equal(t, id, sections[i].ID)
		assert.Equal(t, i, sections[i].Order)
	}
}

func TestSectionReorder_RejectsIncompleteList(t *testing.T) {
	isolateStorage(t)

	err := runSectionReorderCmd(newRootFlagsCommand(t), []string{"skills"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all 7 section IDs")
}

func TestSectionReorder_RejectsUnknownSection(t *testing.T) {
	isolateStorage(t)

	args := defaultSectionIDs()
	args[6] = "awards"
	err := runSectionReorderCmd(newRootFlagsCommand(t), args)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "awards")
}

func TestSectionReorder_RejectsDuplicateSection(t *testing.T) {
	isolateStorage(t)

	args := defaultSectionIDs()
	args[6] = "skills"
	err := runSectionReorderCmd(newRootFlagsCommand(t), args)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "skills")
}

func TestSectionToggle_PersistsVisibility(t *testing.T) {
	isolateStorage(t)

	require.NoError(t, runSectionToggleCmd(newRootFlagsCommand(t), []string{"languages"}))

	a, err := openApp(newRootFlagsCommand(t))
	require.NoError(t, err)
	for _, sec := range a.store.ActiveResume().Sections {
		if sec.ID == "languages" {
			assert.True(t, sec.Visible)
		}
	}
}
