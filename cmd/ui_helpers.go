// Copyright (c) 2025 bqbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"sort"

	"github.com/pterm/pterm"

	"bqbridge/cli/internal/bq"
	"bqbridge/cli/internal/dispatch"
)

// renderEnvelope prints one response envelope. In --json mode the raw
// envelope goes to stdout unchanged, including on errors, so scripted callers
// always get the same shape. Returns errReported for error envelopes.
func renderEnvelope(command string, env dispatch.Envelope) error {
	if jsonOutput {
		out, err := env.JSON()
		if err != nil {
			return err
		}
		fmt.Println(out)
		if env.Failed() {
			return errReported
		}
		return nil
	}

	if env.Failed() {
		pterm.Printf("❌ %s failed\n", command)
		pterm.Println("   " + env.Error.Kind + ": " + env.Error.Message)
		return errReported
	}

	switch payload := env.Payload.(type) {
	case []string:
		renderDatasets(payload)
	case []bq.TableDescriptor:
		renderTables(payload)
	case []bq.SchemaField:
		renderSchema(payload)
	case *bq.QueryResult:
		renderQueryResult(payload)
	default:
		pterm.Println(fmt.Sprintf("%v", payload))
	}
	return nil
}

func renderDatasets(ids []string) {
	if len(ids) == 0 {
		pterm.Println("No datasets found.")
		return
	}
	pterm.Printf("Found %d dataset(s):\n", len(ids))
	for _, id := range ids {
		pterm.Println("- " + id)
	}
}

func renderTables(tables []bq.TableDescriptor) {
	if len(tables) == 0 {
		pterm.Println("No tables found.")
		return
	}
	data := pterm.TableData{{"Dataset", "Table", "Full name"}}
	for _, t := range tables {
		data = append(data, []string{t.DatasetID, t.TableID, t.FullName})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func renderSchema(fields []bq.SchemaField) {
	if len(fields) == 0 {
		pterm.Println("Table has no columns.")
		return
	}
	data := pterm.TableData{{"Field", "Type", "Mode", "Description"}}
	for _, f := range fields {
		data = append(data, []string{f.Name, f.Type, f.Mode, f.Description})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func renderQueryResult(res *bq.QueryResult) {
	if res == nil || res.RowCount == 0 {
		pterm.Println("Query returned 0 rows.")
		return
	}

	columns := res.Columns
	if len(columns) == 0 {
		columns = columnsFromRows(res.Rows)
	}

	data := pterm.TableData{columns}
	for _, row := range res.Rows {
		line := make([]string, len(columns))
		for i, col := range columns {
			line[i] = formatCell(row[col])
		}
		data = append(data, line)
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	pterm.Printf("%d row(s)\n", res.RowCount)
}

// columnsFromRows derives a stable column order when the result carries none.
func columnsFromRows(rows []bq.Row) []string {
	seen := map[string]bool{}
	var columns []string
	for _, row := range rows {
		for col := range row {
			if !seen[col] {
				seen[col] = true
				columns = append(columns, col)
			}
		}
	}
	sort.Strings(columns)
	return columns
}

func formatCell(v any) string {
	if v == nil {
		return "NULL"
	}
	return fmt.Sprintf("%v", v)
}
