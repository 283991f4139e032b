// Package config loads the jamfctl configuration file: a JSON object
// holding the tenant FQDN and credentials.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileName is the config file name under the user's home directory.
const FileName = ".jamfctl.json"

// Config holds tenant connection settings.
type Config struct {
	FQDN         string `json:"fqdn"`
	AuthMethod   string `json:"auth_method,omitempty"`
	ClientID     string `json:"client_id,omitempty"`
	ClientSecret string `json:"client_secret,omitempty"`
	Username     string `json:"username,omitempty"`
	Password     string `json:"password,omitempty"`
}

// DefaultPath returns the per-user config path ($HOME/.jamfctl.json).
// If the home directory cannot be determined it falls back to the
// working directory.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return FileName
	}
	return filepath.Join(home, FileName)
}

// Load reads and decodes the config file at path. A missing file is
// reported as-is so callers can distinguish it (errors.Is with
// fs.ErrNotExist) and continue with an empty configuration.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// WriteSample writes a sample config with placeholder credentials to
// path, overwriting any existing file.
func WriteSample(path string) error {
	sample := Config{
		FQDN:         "https://your-tenant.jamfcloud.com",
		AuthMethod:   "oauth2",
		ClientID:     "your_client_id_here",
		ClientSecret: "your_client_secret_here",
	}
	data, err := json.MarshalIndent(sample, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o600)
}
