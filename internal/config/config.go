// Package config resolves the immutable runtime configuration for bqbridge.
// Values are merged from explicit command-line overrides, environment
// variables and persisted defaults in the XDG config dir, in that order of
// precedence. Project and location are required and never default silently.
package config

import (
	"fmt"
	"strings"

	errs "bqbridge/cli/internal/errors"
)

// Environment variables read by Resolve.
const (
	EnvProject         = "BIGQUERY_PROJECT"
	EnvLocation        = "BIGQUERY_LOCATION"
	EnvCredentialsFile = "GOOGLE_APPLICATION_CREDENTIALS"
	EnvDatasetFilter   = "BIGQUERY_DATASET_FILTER"
)

// Config holds the resolved runtime settings. It is constructed once at
// startup and never mutated afterwards.
type Config struct {
	Project         string
	Location        string
	DatasetFilter   []string
	CredentialsFile string
}

// Overrides carries explicit values (typically command-line flags) that take
// precedence over environment variables and persisted defaults.
type Overrides struct {
	Project         string
	Location        string
	CredentialsFile string
	DatasetFilter   string
}

// DatasetAllowed reports whether datasetID passes the dataset filter.
// An empty filter allows everything.
func (c Config) DatasetAllowed(datasetID string) bool {
	if len(c.DatasetFilter) == 0 {
		return true
	}
	for _, id := range c.DatasetFilter {
		if id == datasetID {
			return true
		}
	}
	return false
}

// Resolve merges overrides, environment variables and persisted defaults into
// a Config. getenv abstracts the environment for testability (pass os.Getenv
// in production). Missing project or location fails with a configuration
// error naming the field; no network access happens here.
func Resolve(getenv func(string) string, ov Overrides, defaults Defaults) (Config, error) {
	cfg := Config{
		Project:         firstNonEmpty(ov.Project, getenv(EnvProject), defaults.Project),
		Location:        firstNonEmpty(ov.Location, getenv(EnvLocation), defaults.Location),
		CredentialsFile: firstNonEmpty(ov.CredentialsFile, getenv(EnvCredentialsFile)),
	}

	if cfg.Project == "" {
		return Config{}, missing("project", "--project", EnvProject)
	}
	if cfg.Location == "" {
		return Config{}, missing("location", "--location", EnvLocation)
	}

	cfg.DatasetFilter = ParseFilter(firstNonEmpty(ov.DatasetFilter, getenv(EnvDatasetFilter)))

	return cfg, nil
}

// ParseFilter splits a comma-separated dataset allow-list. Whitespace around
// entries is ignored; an empty input means no restriction.
func ParseFilter(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if id := strings.TrimSpace(part); id != "" {
			out = append(out, id)
		}
	}
	return out
}

func missing(field, flag, env string) error {
	return errs.New(errs.Configuration,
		fmt.Sprintf("missing required configuration: %s (set %s or pass %s)", field, env, flag))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
