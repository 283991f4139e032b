package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jamfctl/jamfctl/internal/jamf"
)

// setFormat overrides the global --output value for one test.
func setFormat(t *testing.T, format string) {
	t.Helper()
	old := outputFormat
	outputFormat = format
	t.Cleanup(func() { outputFormat = old })
}

// setNoColor disables ANSI codes for one test.
func setNoColor(t *testing.T) {
	t.Helper()
	old := noColor
	noColor = true
	t.Cleanup(func() { noColor = old })
}

// withClient wraps a mock in a clientFunc.
func withClient(c jamf.Client) clientFunc {
	return func() (jamf.Client, error) { return c, nil }
}

func TestTenantClient_MissingConfig(t *testing.T) {
	old := configPath
	configPath = filepath.Join(t.TempDir(), "nope.json")
	t.Cleanup(func() { configPath = old })

	// Absent file falls through to an empty config, which fails client
	// construction with a pointer to 'jamfctl init'.
	_, err := tenantClient()
	assert.ErrorContains(t, err, "fqdn not configured")
}

func TestGetEnvOrDefault(t *testing.T) {
	t.Setenv("JAMFCTL_TEST_KEY", "set")
	assert.Equal(t, "set", getEnvOrDefault("JAMFCTL_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", getEnvOrDefault("JAMFCTL_TEST_KEY_UNSET", "fallback"))
}
