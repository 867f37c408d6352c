// Copyright (c) 2025 bqbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package bq

import (
	"strings"
	"testing"

	"google.golang.org/api/googleapi"

	"bqbridge/cli/internal/config"
	errs "bqbridge/cli/internal/errors"
)

func TestCheckFilter(t *testing.T) {
	tests := []struct {
		name      string
		filter    []string
		datasetID string
		wantKind  errs.Kind
	}{
		{name: "no filter allows all", filter: nil, datasetID: "anything"},
		{name: "dataset in filter", filter: []string{"sales"}, datasetID: "sales"},
		{name: "dataset outside filter", filter: []string{"sales"}, datasetID: "finance", wantKind: errs.NotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Adapter{cfg: config.Config{Project: "analytics", DatasetFilter: tt.filter}}
			err := a.checkFilter(tt.datasetID)
			if tt.wantKind == "" {
				if err != nil {
					t.Fatalf("checkFilter(%q) error: %v", tt.datasetID, err)
				}
				return
			}
			if errs.KindOf(err) != tt.wantKind {
				t.Fatalf("checkFilter(%q) kind = %q, want %q", tt.datasetID, errs.KindOf(err), tt.wantKind)
			}
			if !strings.Contains(err.Error(), tt.datasetID) {
				t.Errorf("error %q does not reference dataset %q", err, tt.datasetID)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantKind errs.Kind
	}{
		{
			name:     "404 maps to not found",
			err:      &googleapi.Error{Code: 404, Message: "Not found: Dataset analytics:nonexistent_ds"},
			wantKind: errs.NotFound,
		},
		{
			name:     "403 maps to client error",
			err:      &googleapi.Error{Code: 403, Message: "Access Denied"},
			wantKind: errs.Client,
		},
		{
			name:     "401 maps to client error",
			err:      &googleapi.Error{Code: 401, Message: "Unauthorized"},
			wantKind: errs.Client,
		},
		{
			name:     "transport error maps to client error",
			err:      errForTest("connection refused"),
			wantKind: errs.Client,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classify(tt.err, "dataset nonexistent_ds")
			if errs.KindOf(err) != tt.wantKind {
				t.Errorf("classify kind = %q, want %q", errs.KindOf(err), tt.wantKind)
			}
			// The underlying diagnostic is preserved, never swallowed.
			if !strings.Contains(err.Error(), tt.err.Error()) {
				t.Errorf("classified error %q lost the original diagnostic %q", err, tt.err)
			}
		})
	}
}

type errForTest string

func (e errForTest) Error() string { return string(e) }
