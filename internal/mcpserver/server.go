// Copyright (c) 2025 bqbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package mcpserver exposes the command dispatcher as an MCP stdio server.
// Each tool call builds the same Command the CLI uses and returns the
// serialized response envelope as tool text.
//
// The BigQuery adapter stays fully synchronous: a single worker goroutine
// owns the dispatcher and consumes a request queue, while tool handlers block
// on a reply channel. The MCP transport's own scheduling therefore never
// interleaves with in-flight BigQuery calls, and at most one command is in
// flight at a time.
package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"bqbridge/cli/internal/dispatch"
	errs "bqbridge/cli/internal/errors"
)

// request carries one command through the worker queue.
type request struct {
	ctx   context.Context
	cmd   dispatch.Command
	reply chan dispatch.Envelope
}

// Server bridges MCP tool calls onto the synchronous dispatcher.
type Server struct {
	mcp      *server.MCPServer
	requests chan request
	done     chan struct{}
}

// New builds the MCP server over the given dispatcher and starts its worker.
// Call Run to serve stdio; Run stops the worker when the transport closes.
func New(d *dispatch.Dispatcher, version string) *Server {
	s := &Server{
		requests: make(chan request),
		done:     make(chan struct{}),
	}

	m := server.NewMCPServer("bqbridge", version, server.WithToolCapabilities(false))

	m.AddTool(mcp.NewTool(dispatch.CmdListDatasets,
		mcp.WithDescription("List BigQuery dataset ids visible to the configured project, restricted by the dataset filter when one is set."),
	), s.handler(dispatch.CmdListDatasets))

	m.AddTool(mcp.NewTool(dispatch.CmdListTables,
		mcp.WithDescription("List the tables of one BigQuery dataset."),
		mcp.WithString("dataset_id", mcp.Required(), mcp.Description("Dataset id to list tables for.")),
	), s.handler(dispatch.CmdListTables, "dataset_id"))

	m.AddTool(mcp.NewTool(dispatch.CmdDescribeTable,
		mcp.WithDescription("Describe the schema of one BigQuery table as an ordered field list."),
		mcp.WithString("dataset_id", mcp.Required(), mcp.Description("Dataset containing the table.")),
		mcp.WithString("table_id", mcp.Required(), mcp.Description("Table to describe.")),
	), s.handler(dispatch.CmdDescribeTable, "dataset_id", "table_id"))

	m.AddTool(mcp.NewTool(dispatch.CmdExecuteQuery,
		mcp.WithDescription("Execute a SQL statement against BigQuery and return the materialized rows."),
		mcp.WithString("sql", mcp.Required(), mcp.Description("SQL text to execute.")),
	), s.handler(dispatch.CmdExecuteQuery, "sql"))

	s.mcp = m
	go s.worker(d)
	return s
}

// Run serves MCP over stdio until the client disconnects.
func (s *Server) Run() error {
	defer close(s.done)
	return server.ServeStdio(s.mcp)
}

// worker owns the dispatcher. Commands execute strictly one at a time in
// arrival order; callers queue on the unbuffered request channel.
func (s *Server) worker(d *dispatch.Dispatcher) {
	for {
		select {
		case req := <-s.requests:
			req.reply <- d.Dispatch(req.ctx, req.cmd)
		case <-s.done:
			return
		}
	}
}

// enqueue hands a command to the worker and blocks for the envelope.
// A caller whose context dies while queued (or after the transport shut the
// worker down) gets an error envelope instead of blocking forever; a command
// already in flight still runs to completion, only the wait is abandoned.
func (s *Server) enqueue(ctx context.Context, cmd dispatch.Command) dispatch.Envelope {
	reply := make(chan dispatch.Envelope, 1)

	select {
	case s.requests <- request{ctx: ctx, cmd: cmd, reply: reply}:
	case <-ctx.Done():
		return dispatch.Failure(errs.Wrap(errs.Client, "command cancelled while queued", ctx.Err()))
	case <-s.done:
		return dispatch.Failure(errs.New(errs.Client, "server is shutting down"))
	}

	select {
	case env := <-reply:
		return env
	case <-ctx.Done():
		return dispatch.Failure(errs.Wrap(errs.Client, "command cancelled", ctx.Err()))
	}
}

// handler adapts one dispatch command to an MCP tool handler. Missing or
// non-string arguments are rejected by the transport layer; everything else
// flows through the dispatcher's own validation.
func (s *Server) handler(name string, argNames ...string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := make([]string, 0, len(argNames))
		for _, argName := range argNames {
			v, err := req.RequireString(argName)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			args = append(args, v)
		}

		env := s.enqueue(ctx, dispatch.Command{Name: name, Args: args})

		out, err := env.JSON()
		if err != nil {
			return nil, err
		}
		if env.Failed() {
			return mcp.NewToolResultError(out), nil
		}
		return mcp.NewToolResultText(out), nil
	}
}
