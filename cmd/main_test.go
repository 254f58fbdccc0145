package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_Subcommands(t *testing.T) {
	cmd := newRootCommand()

	serve, _, err := cmd.Find([]string{"serve"})
	require.NoError(t, err)
	assert.Equal(t, "serve", serve.Name())

	migrate, _, err := cmd.Find([]string{"migrate"})
	require.NoError(t, err)
	assert.Equal(t, "migrate", migrate.Name())
}

func TestMigrateCommand_RejectsUnknownDirection(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetArgs([]string{"migrate", "sideways"})

	err := cmd.Execute()
	assert.Error(t, err)
}

func TestMigrateCommand_RejectsExtraArgs(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetArgs([]string{"migrate", "up", "down"})

	err := cmd.Execute()
	assert.Error(t, err)
}
