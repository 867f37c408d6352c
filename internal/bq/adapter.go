// Copyright (c) 2025 bqbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package bq wraps the BigQuery Go SDK behind a small synchronous API that
// returns plain data structures instead of provider types. All calls block
// until the SDK finishes; nothing is cached or retried here, so failures
// surface verbatim to the dispatcher.
//
// One Adapter serves at most one in-flight command at a time; concurrent
// callers must queue or create independent adapters.
package bq

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"bqbridge/cli/internal/config"
	errs "bqbridge/cli/internal/errors"
)

// API defines the BigQuery operations the dispatcher depends on.
// Implementations may call the real SDK or provide fakes for tests.
type API interface {
	ListDatasets(ctx context.Context) ([]string, error)
	ListTables(ctx context.Context, datasetID string) ([]TableDescriptor, error)
	DescribeTable(ctx context.Context, datasetID, tableID string) ([]SchemaField, error)
	ExecuteQuery(ctx context.Context, sql string) (*QueryResult, error)
}

// Adapter implements API against a real BigQuery client. Construct it once
// per process with NewAdapter and release it with Close.
type Adapter struct {
	client *bigquery.Client
	cfg    config.Config
}

var _ API = (*Adapter)(nil)

// NewAdapter opens a BigQuery client bound to the configured project and
// location. The credentials file from the configuration is used when present;
// otherwise the SDK falls back to application default credentials.
func NewAdapter(ctx context.Context, cfg config.Config) (*Adapter, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := bigquery.NewClient(ctx, cfg.Project, opts...)
	if err != nil {
		return nil, errs.Wrap(errs.Client, "failed to create BigQuery client", err)
	}
	client.Location = cfg.Location

	return &Adapter{client: client, cfg: cfg}, nil
}

// Close releases the underlying client.
func (a *Adapter) Close() error {
	return a.client.Close()
}

// ListDatasets enumerates dataset ids visible to the credential, restricted
// to the dataset filter when one is configured.
func (a *Adapter) ListDatasets(ctx context.Context) ([]string, error) {
	var ids []string
	it := a.client.Datasets(ctx)
	for {
		ds, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, classify(err, "project "+a.cfg.Project)
		}
		if a.cfg.DatasetAllowed(ds.DatasetID) {
			ids = append(ids, ds.DatasetID)
		}
	}
	return ids, nil
}

// ListTables enumerates the tables of one dataset. A dataset outside the
// filter fails NotFound before any network call is made.
func (a *Adapter) ListTables(ctx context.Context, datasetID string) ([]TableDescriptor, error) {
	if err := a.checkFilter(datasetID); err != nil {
		return nil, err
	}

	var tables []TableDescriptor
	it := a.client.Dataset(datasetID).Tables(ctx)
	for {
		tbl, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, classify(err, "dataset "+datasetID)
		}
		tables = append(tables, TableDescriptor{
			DatasetID: tbl.DatasetID,
			TableID:   tbl.TableID,
			FullName:  tbl.DatasetID + "." + tbl.TableID,
		})
	}
	return tables, nil
}

// DescribeTable fetches the schema of one table as an ordered field list.
func (a *Adapter) DescribeTable(ctx context.Context, datasetID, tableID string) ([]SchemaField, error) {
	if err := a.checkFilter(datasetID); err != nil {
		return nil, err
	}

	md, err := a.client.Dataset(datasetID).Table(tableID).Metadata(ctx)
	if err != nil {
		return nil, classify(err, fmt.Sprintf("table %s.%s", datasetID, tableID))
	}

	fields := make([]SchemaField, 0, len(md.Schema))
	for _, f := range md.Schema {
		fields = append(fields, SchemaField{
			Name:        f.Name,
			Type:        string(f.Type),
			Mode:        fieldMode(f),
			Description: f.Description,
		})
	}
	return fields, nil
}

// ExecuteQuery runs one SQL statement and materializes the full result.
// Any failure, from a syntax error to a dataset/location mismatch, is wrapped
// as a query error carrying the SDK's diagnostic text. No retries.
func (a *Adapter) ExecuteQuery(ctx context.Context, sql string) (*QueryResult, error) {
	q := a.client.Query(sql)

	it, err := q.Read(ctx)
	if err != nil {
		return nil, errs.Wrap(errs.Query, "query failed", err)
	}

	result := &QueryResult{Rows: []Row{}}
	for {
		var vals []bigquery.Value
		err := it.Next(&vals)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errs.Wrap(errs.Query, "query failed while reading results", err)
		}
		result.Rows = append(result.Rows, rowFromValues(it.Schema, vals))
	}
	// Schema is populated once the iterator has been advanced.
	for _, f := range it.Schema {
		result.Columns = append(result.Columns, f.Name)
	}
	result.RowCount = len(result.Rows)
	return result, nil
}

// checkFilter rejects datasets outside a non-empty filter. The failure is
// reported as NotFound so filtered datasets are indistinguishable from absent
// ones.
func (a *Adapter) checkFilter(datasetID string) error {
	if a.cfg.DatasetAllowed(datasetID) {
		return nil
	}
	return errs.New(errs.NotFound, fmt.Sprintf("dataset %s not found in project %s", datasetID, a.cfg.Project))
}

// classify maps SDK errors onto the error taxonomy using the HTTP status
// carried by googleapi.Error.
func classify(err error, subject string) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case http.StatusNotFound:
			return errs.Wrap(errs.NotFound, subject+" not found", err)
		case http.StatusUnauthorized, http.StatusForbidden:
			return errs.Wrap(errs.Client, "access denied for "+subject, err)
		}
	}
	return errs.Wrap(errs.Client, "BigQuery request failed for "+subject, err)
}

func fieldMode(f *bigquery.FieldSchema) string {
	switch {
	case f.Repeated:
		return "REPEATED"
	case f.Required:
		return "REQUIRED"
	default:
		return "NULLABLE"
	}
}
