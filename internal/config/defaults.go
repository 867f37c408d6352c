package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	errs "bqbridge/cli/internal/errors"
	"bqbridge/cli/internal/xdg"
)

// Defaults holds non-secret settings persisted between invocations in the
// XDG config dir. They sit below environment variables in precedence and are
// only ever written by an explicit `bqbridge config set`, so resolution still
// fails fast when the user configured nothing.
type Defaults struct {
	Project  string `json:"project,omitempty"`
	Location string `json:"location,omitempty"`
}

// path returns the path to the defaults file.
func path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadDefaults reads persisted defaults; a missing file returns zero values.
func LoadDefaults() (Defaults, error) {
	var d Defaults
	p, err := path()
	if err != nil {
		return d, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return d, nil
		}
		return d, errs.Wrap(errs.Configuration, "invalid persisted defaults: "+p+" is not readable", err)
	}
	if err := json.Unmarshal(data, &d); err != nil {
		return d, errs.Wrap(errs.Configuration, "invalid persisted defaults in "+p, err)
	}
	return d, nil
}

// SaveDefaults writes persisted defaults with 0600 permissions.
func SaveDefaults(d Defaults) error {
	p, err := path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}
