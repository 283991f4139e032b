package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamfctl/jamfctl/internal/jamf"
)

func groupsFixture() *jamf.MockClient {
	details := map[int]map[string]any{
		1: {"name": "All Laptops", "computers": []any{map[string]any{"id": float64(9)}}},
		2: {"name": "Retired", "computers": []any{}},
		3: {"name": "Broken", "computers": []any{}},
	}
	return &jamf.MockClient{
		ListFunc: func(ctx context.Context, ep jamf.Endpoint) ([]jamf.Summary, error) {
			return []jamf.Summary{
				jamf.NewSummary(1, "All Laptops", nil),
				jamf.NewSummary(2, "Retired", nil),
				jamf.NewSummary(3, "Broken", nil),
			}, nil
		},
		GetFunc: func(ctx context.Context, ep jamf.Endpoint, id int) (map[string]any, error) {
			if id == 3 {
				return nil, &jamf.APIError{StatusCode: 500}
			}
			return details[id], nil
		},
	}
}

func TestAuditEmptyGroupsCommand(t *testing.T) {
	setNoColor(t)

	cmd := newAuditEmptyGroupsCmd(withClient(groupsFixture()))
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "Checked 3 groups, found 1 empty:")
	assert.Contains(t, out, "[2] Retired")
	assert.Contains(t, out, "1 groups skipped")
	assert.NotContains(t, out, "All Laptops")
}

func TestAuditEmptyGroupsCommand_JSON(t *testing.T) {
	setFormat(t, "json")

	cmd := newAuditEmptyGroupsCmd(withClient(groupsFixture()))
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), `"checked": 3`)
	assert.Contains(t, buf.String(), `"skipped": 1`)
	assert.Contains(t, buf.String(), `"Retired"`)
}

func TestAuditEmptyGroupsCommand_ListFailure(t *testing.T) {
	mock := &jamf.MockClient{
		ListFunc: func(ctx context.Context, ep jamf.Endpoint) ([]jamf.Summary, error) {
			return nil, &jamf.APIError{StatusCode: 502}
		},
	}

	cmd := newAuditEmptyGroupsCmd(withClient(mock))
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{})

	require.Error(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Failed to fetch groups")
}

func TestAuditCommand_HasEmptyGroupsSubcommand(t *testing.T) {
	cmd := newAuditCmd(withClient(&jamf.MockClient{}))
	sub, _, err := cmd.Find([]string{"empty-groups"})
	require.NoError(t, err)
	assert.Equal(t, "empty-groups", sub.Name())
}
