// Package jamf is a minimal read-only client for the Jamf Pro Classic
// API: OAuth2 or basic auth, get-all and get-by-id per resource
// collection, nothing else.
package jamf

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/jamfctl/jamfctl/internal/config"
)

const (
	classicPrefix  = "/JSSResource"
	oauthTokenPath = "/api/oauth/token"
	requestTimeout = 30 * time.Second

	// Cap on how much of an error response body is carried in APIError.
	maxErrorBody = 4 << 10
)

// Tenant is the HTTP implementation of Client against a live tenant.
type Tenant struct {
	baseURL string
	hc      *http.Client
	log     *zap.Logger

	// Set only for basic auth; oauth2 is handled by the transport.
	username, password string
}

// NewTenant builds a client from the loaded configuration. The auth
// method defaults to oauth2 (client credentials against the tenant's
// token endpoint); "basic" uses the username/password fields.
func NewTenant(cfg *config.Config, log *zap.Logger) (*Tenant, error) {
	if cfg.FQDN == "" {
		return nil, errors.New("tenant fqdn not configured (run 'jamfctl init' and edit the config)")
	}
	if log == nil {
		log = zap.NewNop()
	}
	t := &Tenant{
		baseURL: strings.TrimRight(cfg.FQDN, "/"),
		log:     log,
	}

	switch cfg.AuthMethod {
	case "", "oauth2":
		cc := &clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     t.baseURL + oauthTokenPath,
			AuthStyle:    oauth2.AuthStyleInParams,
		}
		t.hc = cc.Client(context.Background())
		t.hc.Timeout = requestTimeout
	case "basic":
		t.hc = &http.Client{Timeout: requestTimeout}
		t.username = cfg.Username
		t.password = cfg.Password
	default:
		return nil, fmt.Errorf("unknown auth_method %q (available: oauth2, basic)", cfg.AuthMethod)
	}

	return t, nil
}

// List fetches the endpoint's full collection.
func (t *Tenant) List(ctx context.Context, ep Endpoint) ([]Summary, error) {
	t.log.Debug("fetching collection", zap.String("endpoint", ep.Name))

	var body map[string]json.RawMessage
	if err := t.get(ctx, classicPrefix+"/"+ep.Path, &body); err != nil {
		return nil, err
	}

	var items []Summary
	if raw, ok := body[ep.ListKey]; ok {
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, fmt.Errorf("parse %s response: %w", ep.Name, err)
		}
	}
	t.log.Debug("received items", zap.String("endpoint", ep.Name), zap.Int("count", len(items)))
	return items, nil
}

// Get fetches one item and unwraps the detail key, returning the
// resource object itself.
func (t *Tenant) Get(ctx context.Context, ep Endpoint, id int) (map[string]any, error) {
	t.log.Debug("fetching item", zap.String("endpoint", ep.Name), zap.Int("id", id))

	var body map[string]any
	path := fmt.Sprintf("%s/%s/id/%d", classicPrefix, ep.Path, id)
	if err := t.get(ctx, path, &body); err != nil {
		return nil, err
	}
	if inner, ok := body[ep.DetailKey].(map[string]any); ok {
		return inner, nil
	}
	return body, nil
}

func (t *Tenant) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if t.username != "" || t.password != "" {
		req.SetBasicAuth(t.username, t.password)
	}

	resp, err := t.hc.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		t.log.Error("api error", zap.String("path", path), zap.Int("status", resp.StatusCode))
		return &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
