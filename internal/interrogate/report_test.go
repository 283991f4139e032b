package interrogate

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jamfctl/jamfctl/internal/jamf"
)

func TestBuildInventory(t *testing.T) {
	mock := &jamf.MockClient{
		ListFunc: func(ctx context.Context, ep jamf.Endpoint) ([]jamf.Summary, error) {
			switch ep.Name {
			case "computers":
				return []jamf.Summary{
					jamf.NewSummary(1, "mac-01", map[string]any{"serial_number": "C02A"}),
					jamf.NewSummary(2, "mac-02", nil),
				}, nil
			case "policies":
				return []jamf.Summary{jamf.NewSummary(10, "Install Chrome", nil)}, nil
			case "scripts":
				return nil, nil
			}
			t.Fatalf("unexpected endpoint %s", ep.Name)
			return nil, nil
		},
	}

	now := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	inv := BuildInventory(context.Background(), mock, zap.NewNop(), now)

	assert.Equal(t, now, inv.GeneratedAt)
	assert.Equal(t, 2, inv.Summary["total_computers"])
	assert.Equal(t, 1, inv.Summary["total_policies"])
	assert.Equal(t, 0, inv.Summary["total_scripts"])
	assert.Len(t, inv.Details["computers"], 2)
}

func TestBuildInventory_PartialOnFailure(t *testing.T) {
	mock := &jamf.MockClient{
		ListFunc: func(ctx context.Context, ep jamf.Endpoint) ([]jamf.Summary, error) {
			if ep.Name == "policies" {
				return nil, &jamf.APIError{StatusCode: 500}
			}
			return []jamf.Summary{jamf.NewSummary(1, "x", nil)}, nil
		},
	}

	inv := BuildInventory(context.Background(), mock, zap.NewNop(), time.Now())
	assert.NotContains(t, inv.Summary, "total_policies")
	assert.NotContains(t, inv.Details, "policies")
	assert.Equal(t, 1, inv.Summary["total_computers"])
	assert.Equal(t, 1, inv.Summary["total_scripts"])
}

func TestExportAll(t *testing.T) {
	mock := &jamf.MockClient{
		ListFunc: func(ctx context.Context, ep jamf.Endpoint) ([]jamf.Summary, error) {
			if ep.Name == "policies" {
				return []jamf.Summary{jamf.NewSummary(1, "Install Chrome", nil)}, nil
			}
			return nil, nil
		},
	}

	dir := filepath.Join(t.TempDir(), "export")
	written, err := ExportAll(context.Background(), mock, dir)
	require.NoError(t, err)
	require.Len(t, written, len(jamf.Endpoints))

	data, err := os.ReadFile(filepath.Join(dir, "policies.json"))
	require.NoError(t, err)
	var body map[string][]map[string]any
	require.NoError(t, json.Unmarshal(data, &body))
	require.Len(t, body["policies"], 1)
	assert.Equal(t, "Install Chrome", body["policies"][0]["name"])

	// Empty collections still produce a file with an empty list, keyed
	// the way the API keys it.
	data, err = os.ReadFile(filepath.Join(dir, "groups.json"))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &body))
	assert.NotNil(t, body["computer_groups"])
	assert.Empty(t, body["computer_groups"])
}

func TestExportAll_StopsOnEndpointFailure(t *testing.T) {
	mock := &jamf.MockClient{
		ListFunc: func(ctx context.Context, ep jamf.Endpoint) ([]jamf.Summary, error) {
			if ep.Name == "scripts" {
				return nil, &jamf.APIError{StatusCode: 503}
			}
			return nil, nil
		},
	}

	_, err := ExportAll(context.Background(), mock, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "export scripts")
}
