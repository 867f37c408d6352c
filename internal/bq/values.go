// Copyright (c) 2025 bqbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package bq

import (
	"encoding/base64"
	"math/big"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/civil"
)

// rowFromValues converts one iterator row into a Row keyed by column name.
// Columns beyond the value slice (or vice versa) are ignored; the SDK keeps
// both aligned with the schema.
func rowFromValues(schema bigquery.Schema, vals []bigquery.Value) Row {
	row := make(Row, len(schema))
	for i, field := range schema {
		if i >= len(vals) {
			break
		}
		row[field.Name] = convertValue(field, vals[i])
	}
	return row
}

// convertValue turns a bigquery.Value into a plain, JSON-friendly Go value.
// Civil date/time types and NUMERIC become strings, bytes become base64,
// repeated and record fields convert recursively.
func convertValue(field *bigquery.FieldSchema, value bigquery.Value) any {
	if value == nil {
		return nil
	}

	if field.Repeated {
		items, ok := value.([]bigquery.Value)
		if !ok {
			return value
		}
		scalar := *field
		scalar.Repeated = false
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = convertValue(&scalar, item)
		}
		return out
	}

	switch field.Type {
	case bigquery.RecordFieldType:
		nested, ok := value.([]bigquery.Value)
		if !ok {
			return value
		}
		return rowFromValues(field.Schema, nested)
	case bigquery.BytesFieldType:
		if b, ok := value.([]byte); ok {
			return base64.StdEncoding.EncodeToString(b)
		}
	case bigquery.DateFieldType:
		if d, ok := value.(civil.Date); ok {
			return d.String()
		}
	case bigquery.TimeFieldType:
		if t, ok := value.(civil.Time); ok {
			return t.String()
		}
	case bigquery.DateTimeFieldType:
		if dt, ok := value.(civil.DateTime); ok {
			return dt.String()
		}
	case bigquery.NumericFieldType, bigquery.BigNumericFieldType:
		if r, ok := value.(*big.Rat); ok {
			return r.FloatString(9)
		}
	}

	return value
}
