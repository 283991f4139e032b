package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamfctl/jamfctl/internal/config"
)

func TestInitCommand(t *testing.T) {
	setNoColor(t)

	old := configPath
	configPath = filepath.Join(t.TempDir(), ".jamfctl.json")
	t.Cleanup(func() { configPath = old })

	cmd := newInitCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Created sample config at "+configPath)
	assert.Contains(t, buf.String(), "Edit this file")

	cfg, err := config.Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, "oauth2", cfg.AuthMethod)
}
