package interrogate

import (
	"context"

	"go.uber.org/zap"

	"github.com/jamfctl/jamfctl/internal/jamf"
)

// GroupAudit is the outcome of an empty-groups check.
type GroupAudit struct {
	// Checked is the number of groups in the tenant.
	Checked int `json:"checked"`
	// Skipped counts groups whose detail fetch failed.
	Skipped int `json:"skipped"`
	// Empty lists the groups with zero member computers.
	Empty []jamf.Summary `json:"empty"`
}

// EmptyGroups fetches every computer group's detail and reports the
// groups whose member list is empty. A failed detail fetch skips that
// group rather than aborting the audit.
func EmptyGroups(ctx context.Context, c jamf.Client, log *zap.Logger) (*GroupAudit, error) {
	groups, err := c.List(ctx, jamf.Groups)
	if err != nil {
		return nil, err
	}

	audit := &GroupAudit{Checked: len(groups)}
	for i, group := range groups {
		log.Debug("checking group",
			zap.Int("index", i+1),
			zap.Int("total", len(groups)),
			zap.String("name", group.Name))

		detail, err := c.Get(ctx, jamf.Groups, group.ID)
		if err != nil {
			log.Warn("skipping group, detail fetch failed",
				zap.Int("id", group.ID), zap.Error(err))
			audit.Skipped++
			continue
		}
		members, _ := detail["computers"].([]any)
		if len(members) == 0 {
			audit.Empty = append(audit.Empty, group)
			log.Debug("group is empty", zap.Int("id", group.ID))
		}
	}
	return audit, nil
}
