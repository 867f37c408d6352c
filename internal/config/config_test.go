// Copyright (c) 2025 bqbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package config

import (
	"reflect"
	"strings"
	"testing"

	errs "bqbridge/cli/internal/errors"
)

func envOf(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		env       map[string]string
		overrides Overrides
		defaults  Defaults
		want      Config
		wantErr   string
	}{
		{
			name: "environment only",
			env: map[string]string{
				EnvProject:  "analytics",
				EnvLocation: "EU",
			},
			want: Config{Project: "analytics", Location: "EU"},
		},
		{
			name: "override beats environment",
			env: map[string]string{
				EnvProject:  "analytics",
				EnvLocation: "EU",
			},
			overrides: Overrides{Project: "sandbox"},
			want:      Config{Project: "sandbox", Location: "EU"},
		},
		{
			name:     "environment beats persisted defaults",
			env:      map[string]string{EnvProject: "analytics", EnvLocation: "EU"},
			defaults: Defaults{Project: "old-project", Location: "US"},
			want:     Config{Project: "analytics", Location: "EU"},
		},
		{
			name:     "persisted defaults fill gaps",
			env:      map[string]string{},
			defaults: Defaults{Project: "saved", Location: "US"},
			want:     Config{Project: "saved", Location: "US"},
		},
		{
			name:    "missing project names the field",
			env:     map[string]string{EnvLocation: "EU"},
			wantErr: "project",
		},
		{
			name:    "missing location names the field",
			env:     map[string]string{EnvProject: "analytics"},
			wantErr: "location",
		},
		{
			name: "whitespace-only project is missing",
			env: map[string]string{
				EnvProject:  "   ",
				EnvLocation: "EU",
			},
			wantErr: "project",
		},
		{
			name: "credentials file and filter from environment",
			env: map[string]string{
				EnvProject:         "analytics",
				EnvLocation:        "EU",
				EnvCredentialsFile: "/keys/sa.json",
				EnvDatasetFilter:   "sales, marketing",
			},
			want: Config{
				Project:         "analytics",
				Location:        "EU",
				CredentialsFile: "/keys/sa.json",
				DatasetFilter:   []string{"sales", "marketing"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(envOf(tt.env), tt.overrides, tt.defaults)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("Resolve() = %+v, want error naming %q", got, tt.wantErr)
				}
				if errs.KindOf(err) != errs.Configuration {
					t.Errorf("error kind = %q, want %q", errs.KindOf(err), errs.Configuration)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("error %q does not name %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve() error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Resolve() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: nil},
		{name: "whitespace only", input: "  ", want: nil},
		{name: "single dataset", input: "sales", want: []string{"sales"}},
		{name: "multiple datasets", input: "sales,marketing", want: []string{"sales", "marketing"}},
		{name: "spaces around entries", input: " sales , marketing ", want: []string{"sales", "marketing"}},
		{name: "empty entries dropped", input: "sales,,marketing,", want: []string{"sales", "marketing"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseFilter(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseFilter(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDatasetAllowed(t *testing.T) {
	unrestricted := Config{}
	if !unrestricted.DatasetAllowed("anything") {
		t.Error("empty filter must allow every dataset")
	}

	filtered := Config{DatasetFilter: []string{"sales", "marketing"}}
	if !filtered.DatasetAllowed("sales") {
		t.Error("dataset in filter must be allowed")
	}
	if filtered.DatasetAllowed("finance") {
		t.Error("dataset outside filter must be rejected")
	}
}
