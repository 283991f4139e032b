package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamfctl/jamfctl/internal/jamf"
)

func inventoryFixture() *jamf.MockClient {
	return &jamf.MockClient{
		ListFunc: func(ctx context.Context, ep jamf.Endpoint) ([]jamf.Summary, error) {
			switch ep.Name {
			case "computers":
				return []jamf.Summary{
					jamf.NewSummary(1, "mac-01", nil),
					jamf.NewSummary(2, "mac-02", nil),
				}, nil
			case "policies":
				return []jamf.Summary{jamf.NewSummary(10, "Install Chrome", nil)}, nil
			default:
				return nil, nil
			}
		},
	}
}

func TestReportCommand_Stdout(t *testing.T) {
	cmd := newReportCmd(withClient(inventoryFixture()))
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, `"generated_at"`)
	assert.Contains(t, out, `"total_computers": 2`)
	assert.Contains(t, out, `"total_policies": 1`)
}

func TestReportCommand_File(t *testing.T) {
	setNoColor(t)

	path := filepath.Join(t.TempDir(), "inventory.json")
	cmd := newReportCmd(withClient(inventoryFixture()))
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--out", path})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Report saved to "+path)
	assert.Contains(t, buf.String(), "computers: 2")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var report map[string]any
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Contains(t, report, "summary")
	assert.Contains(t, report, "details")
}
