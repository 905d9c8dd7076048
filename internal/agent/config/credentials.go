// Package config handles the local state of the CLI client.
//
// The state holds the session token, the cached user identity and the
// theme preference, stored in the user's home directory at:
//
//	~/.fbivvpn/credentials.json
//
// The package provides the default path plus Load and Save in JSON
// format.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Theme values for the UI preference. Stored, surfaced in output, not
// interpreted further anywhere.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Credentials is the locally persisted CLI state.
//
// Token authorizes requests against the server. Name/Email are a
// display cache from the last login; the server stays the source of
// truth. Theme is the visual preference. The Connected* fields record
// the active connection so fbivctl status works across invocations.
type Credentials struct {
	Token string `json:"token"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Theme string `json:"theme,omitempty"`

	ConnectedServerID   int64      `json:"connected_server_id,omitempty"`
	ConnectedServerName string     `json:"connected_server_name,omitempty"`
	ConnectedAt         *time.Time `json:"connected_at,omitempty"`
}

// Connected reports whether a connection is recorded.
func (c *Credentials) Connected() bool {
	return c.ConnectedServerID != 0
}

// ClearConnection drops the recorded connection.
func (c *Credentials) ClearConnection() {
	c.ConnectedServerID = 0
	c.ConnectedServerName = ""
	c.ConnectedAt = nil
}

// DefaultPath returns the state file path in the user's home directory.
//
// Format:
//
//	<home>/.fbivvpn/credentials.json
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".fbivvpn", "credentials.json"), nil
}

// Load loads the state from the given file.
//
// A missing file yields an empty state without error. A present file
// with invalid JSON is an error.
func Load(path string) (*Credentials, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Credentials{Theme: ThemeLight}, nil
		}
		return nil, err
	}
	var c Credentials
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	if c.Theme == "" {
		c.Theme = ThemeLight
	}
	return &c, nil
}

// Save writes the state to the given file in JSON format.
//
// The directory is created with 0700 when needed; the file itself is
// written with 0600.
func Save(path string, c *Credentials) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}
