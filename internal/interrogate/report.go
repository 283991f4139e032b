package interrogate

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/jamfctl/jamfctl/internal/jamf"
)

// Inventory is a combined snapshot of the tenant's main collections.
type Inventory struct {
	GeneratedAt time.Time                 `json:"generated_at"`
	Summary     map[string]int            `json:"summary"`
	Details     map[string][]jamf.Summary `json:"details"`
}

// inventoryEndpoints are the collections included in an inventory
// report.
var inventoryEndpoints = []jamf.Endpoint{jamf.Computers, jamf.Policies, jamf.Scripts}

// BuildInventory fetches computers, policies, and scripts and folds
// them into one report. Endpoints that fail to fetch are left out of
// the report rather than failing it.
func BuildInventory(ctx context.Context, c jamf.Client, log *zap.Logger, now time.Time) *Inventory {
	inv := &Inventory{
		GeneratedAt: now,
		Summary:     make(map[string]int),
		Details:     make(map[string][]jamf.Summary),
	}
	for _, ep := range inventoryEndpoints {
		items, err := c.List(ctx, ep)
		if err != nil {
			log.Warn("endpoint left out of report", zap.String("endpoint", ep.Name), zap.Error(err))
			continue
		}
		inv.Summary["total_"+ep.Name] = len(items)
		inv.Details[ep.Name] = items
		log.Debug("added to report", zap.String("endpoint", ep.Name), zap.Int("count", len(items)))
	}
	return inv
}

// ExportAll fetches every endpoint and writes one pretty-printed JSON
// file per collection into dir, named <endpoint>.json and keyed the
// way the API keys its list responses. It returns the written paths.
func ExportAll(ctx context.Context, c jamf.Client, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}

	var written []string
	for _, ep := range jamf.Endpoints {
		items, err := c.List(ctx, ep)
		if err != nil {
			return written, fmt.Errorf("export %s: %w", ep.Name, err)
		}
		if items == nil {
			items = []jamf.Summary{}
		}
		data, err := json.MarshalIndent(map[string][]jamf.Summary{ep.ListKey: items}, "", "  ")
		if err != nil {
			return written, fmt.Errorf("export %s: %w", ep.Name, err)
		}
		path := filepath.Join(dir, ep.Name+".json")
		if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
			return written, fmt.Errorf("export %s: %w", ep.Name, err)
		}
		written = append(written, path)
	}
	return written, nil
}
