package jamf

import (
	"context"
)

// Client is the read-only interface to a tenant's Classic API.
type Client interface {
	// List fetches every item of the endpoint's collection.
	List(ctx context.Context, ep Endpoint) ([]Summary, error)
	// Get fetches one item by id. The returned map is the resource
	// object itself, unwrapped from the endpoint's detail key.
	Get(ctx context.Context, ep Endpoint, id int) (map[string]any, error)
}
