// Copyright (c) 2025 bqbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package bq

// TableDescriptor identifies a table within a dataset.
// Derived once from the BigQuery listing and never mutated.
type TableDescriptor struct {
	DatasetID string `json:"dataset_id"`
	TableID   string `json:"table_id"`
	FullName  string `json:"full_name"`
}

// SchemaField describes one column of a table schema.
type SchemaField struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Mode        string `json:"mode"`
	Description string `json:"description,omitempty"`
}

// Row maps column names to plain Go values; iteration order of the columns is
// preserved separately by the schema.
type Row map[string]any

// QueryResult holds the fully materialized result of one query execution.
// Columns preserves the schema order the row maps cannot.
type QueryResult struct {
	Columns  []string `json:"columns,omitempty"`
	Rows     []Row    `json:"rows"`
	RowCount int      `json:"row_count"`
}
