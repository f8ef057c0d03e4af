// Package config provides configuration utilities for the application.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/plumline/claimdesk/internal/common"
)

// Defaults for a local development backend.
const (
	defaultBackendURL = "http://localhost:8000"
)

// Settings holds the resolved configuration for a run.
type Settings struct {
	// BackendURL is the base URL of the adjudication backend. The single
	// external setting the core depends on.
	BackendURL string
	// AssetBase is where previously uploaded files are served from.
	// Defaults to the backend's /uploads path.
	AssetBase string
	// DBPath is the local SQLite state file.
	DBPath string
}

// Load resolves settings from Viper (config file or CLAIMDESK_ env vars)
// with sensible defaults.
func Load() (*Settings, error) {
	backend := viper.GetString("backend.url")
	if backend == "" {
		backend = defaultBackendURL
	}
	backend = strings.TrimSuffix(backend, "/")

	assetBase := viper.GetString("backend.asset_base")
	if assetBase == "" {
		assetBase = backend + "/uploads"
	}

	dbPath := ExpandPath(viper.GetString("storage.db_path"))
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("%w: cannot determine home directory for db path: %v", common.ErrInvalidConfig, err)
		}
		dbPath = filepath.Join(home, ".local", "share", "claimdesk", "claimdesk.db")
	}

	return &Settings{
		BackendURL: backend,
		AssetBase:  assetBase,
		DBPath:     dbPath,
	}, nil
}

// ExpandPath expands ~ and environment variables in a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}
