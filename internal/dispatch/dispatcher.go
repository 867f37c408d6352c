// Copyright (c) 2025 bqbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package dispatch maps named commands onto BigQuery adapter operations and
// normalizes every outcome into a uniform success/error envelope. The whole
// path is stateless per call: validate, execute exactly one adapter call,
// normalize, return. No retries, no batching, nothing persisted between
// commands.
package dispatch

import (
	"context"
	"fmt"
	"strings"

	"bqbridge/cli/internal/bq"
	errs "bqbridge/cli/internal/errors"
)

// Command names accepted by Dispatch.
const (
	CmdListDatasets  = "list_datasets"
	CmdListTables    = "list_tables"
	CmdDescribeTable = "describe_table"
	CmdExecuteQuery  = "execute_query"
)

// Command pairs a command name with its positional arguments.
type Command struct {
	Name string
	Args []string
}

// argSpec declares the positional arguments of one command.
type argSpec struct {
	args []string
}

// commands is the fixed dispatch table. A name outside it never reaches the
// adapter.
var commands = map[string]argSpec{
	CmdListDatasets:  {},
	CmdListTables:    {args: []string{"dataset_id"}},
	CmdDescribeTable: {args: []string{"dataset_id", "table_id"}},
	CmdExecuteQuery:  {args: []string{"sql"}},
}

// Dispatcher validates commands and forwards them to a BigQuery adapter.
type Dispatcher struct {
	api bq.API
}

// New creates a Dispatcher over the given adapter.
func New(api bq.API) *Dispatcher {
	return &Dispatcher{api: api}
}

// Dispatch validates the command and executes it. Validation failures
// short-circuit before the adapter; adapter failures are normalized with
// their diagnostic preserved. Exactly one adapter call occurs per dispatch.
func (d *Dispatcher) Dispatch(ctx context.Context, cmd Command) Envelope {
	entry, ok := commands[cmd.Name]
	if !ok {
		return Failure(errs.New(errs.UnknownCommand, fmt.Sprintf("unknown command %q", cmd.Name)))
	}

	if err := validateArgs(cmd, entry); err != nil {
		return Failure(err)
	}

	switch cmd.Name {
	case CmdListDatasets:
		datasets, err := d.api.ListDatasets(ctx)
		if err != nil {
			return Failure(err)
		}
		if datasets == nil {
			datasets = []string{}
		}
		return Success(datasets)

	case CmdListTables:
		tables, err := d.api.ListTables(ctx, cmd.Args[0])
		if err != nil {
			return Failure(err)
		}
		if tables == nil {
			tables = []bq.TableDescriptor{}
		}
		return Success(tables)

	case CmdDescribeTable:
		schema, err := d.api.DescribeTable(ctx, cmd.Args[0], cmd.Args[1])
		if err != nil {
			return Failure(err)
		}
		if schema == nil {
			schema = []bq.SchemaField{}
		}
		return Success(schema)

	case CmdExecuteQuery:
		result, err := d.api.ExecuteQuery(ctx, cmd.Args[0])
		if err != nil {
			return Failure(err)
		}
		return Success(result)
	}

	// Unreachable: every table entry is handled above.
	return Failure(errs.New(errs.UnknownCommand, fmt.Sprintf("unknown command %q", cmd.Name)))
}

// validateArgs checks arity and rejects blank arguments before dispatch.
func validateArgs(cmd Command, entry argSpec) error {
	if len(cmd.Args) != len(entry.args) {
		return errs.New(errs.InvalidArgument, fmt.Sprintf(
			"%s expects %d argument(s) (%s), got %d",
			cmd.Name, len(entry.args), strings.Join(entry.args, ", "), len(cmd.Args)))
	}
	for i, name := range entry.args {
		if strings.TrimSpace(cmd.Args[i]) == "" {
			return errs.New(errs.InvalidArgument, fmt.Sprintf("%s: %s must not be empty", cmd.Name, name))
		}
	}
	return nil
}
