// Copyright (c) 2025 bqbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package bq

import (
	"math/big"
	"reflect"
	"testing"
	"time"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/civil"
)

func TestRowFromValues(t *testing.T) {
	schema := bigquery.Schema{
		{Name: "id", Type: bigquery.IntegerFieldType},
		{Name: "name", Type: bigquery.StringFieldType},
	}

	row := rowFromValues(schema, []bigquery.Value{int64(7), "alpha"})

	want := Row{"id": int64(7), "name": "alpha"}
	if !reflect.DeepEqual(row, want) {
		t.Errorf("rowFromValues = %v, want %v", row, want)
	}
}

func TestRowFromValuesShortValueSlice(t *testing.T) {
	schema := bigquery.Schema{
		{Name: "a", Type: bigquery.IntegerFieldType},
		{Name: "b", Type: bigquery.IntegerFieldType},
	}

	row := rowFromValues(schema, []bigquery.Value{int64(1)})
	if len(row) != 1 {
		t.Errorf("expected 1 column, got %d: %v", len(row), row)
	}
}

func TestConvertValue(t *testing.T) {
	ts := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		field *bigquery.FieldSchema
		value bigquery.Value
		want  any
	}{
		{
			name:  "nil value",
			field: &bigquery.FieldSchema{Name: "x", Type: bigquery.StringFieldType},
			value: nil,
			want:  nil,
		},
		{
			name:  "string passthrough",
			field: &bigquery.FieldSchema{Name: "x", Type: bigquery.StringFieldType},
			value: "hello",
			want:  "hello",
		},
		{
			name:  "integer passthrough",
			field: &bigquery.FieldSchema{Name: "x", Type: bigquery.IntegerFieldType},
			value: int64(42),
			want:  int64(42),
		},
		{
			name:  "timestamp passthrough",
			field: &bigquery.FieldSchema{Name: "x", Type: bigquery.TimestampFieldType},
			value: ts,
			want:  ts,
		},
		{
			name:  "bytes become base64",
			field: &bigquery.FieldSchema{Name: "x", Type: bigquery.BytesFieldType},
			value: []byte("hi"),
			want:  "aGk=",
		},
		{
			name:  "date becomes string",
			field: &bigquery.FieldSchema{Name: "x", Type: bigquery.DateFieldType},
			value: civil.Date{Year: 2026, Month: 8, Day: 30},
			want:  "2026-08-30",
		},
		{
			name:  "numeric becomes decimal string",
			field: &bigquery.FieldSchema{Name: "x", Type: bigquery.NumericFieldType},
			value: big.NewRat(5, 2),
			want:  "2.500000000",
		},
		{
			name: "repeated integers",
			field: &bigquery.FieldSchema{
				Name: "x", Type: bigquery.IntegerFieldType, Repeated: true,
			},
			value: []bigquery.Value{int64(1), int64(2)},
			want:  []any{int64(1), int64(2)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := convertValue(tt.field, tt.value)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("convertValue = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestConvertValueNestedRecord(t *testing.T) {
	field := &bigquery.FieldSchema{
		Name: "address",
		Type: bigquery.RecordFieldType,
		Schema: bigquery.Schema{
			{Name: "city", Type: bigquery.StringFieldType},
			{Name: "zip", Type: bigquery.StringFieldType},
		},
	}

	got := convertValue(field, []bigquery.Value{"Amsterdam", "1011"})
	want := Row{"city": "Amsterdam", "zip": "1011"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("convertValue record = %#v, want %#v", got, want)
	}
}

func TestFieldMode(t *testing.T) {
	tests := []struct {
		name  string
		field *bigquery.FieldSchema
		want  string
	}{
		{name: "nullable", field: &bigquery.FieldSchema{}, want: "NULLABLE"},
		{name: "required", field: &bigquery.FieldSchema{Required: true}, want: "REQUIRED"},
		{name: "repeated", field: &bigquery.FieldSchema{Repeated: true}, want: "REPEATED"},
		{name: "repeated wins over required", field: &bigquery.FieldSchema{Repeated: true, Required: true}, want: "REPEATED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fieldMode(tt.field); got != tt.want {
				t.Errorf("fieldMode = %q, want %q", got, tt.want)
			}
		})
	}
}
