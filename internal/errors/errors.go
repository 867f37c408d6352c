// Package errors defines typed errors with categories for user-friendly reporting.
// It provides a structured approach to error handling with machine-readable error kinds
// and human-friendly messages. This enables better error categorization, logging,
// and user experience by providing context-aware error information.
//
// The package supports wrapping underlying errors while maintaining error kind information,
// making it easier to handle different types of failures appropriately.
package errors

import (
	"errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// Configuration indicates missing or invalid startup configuration.
	// Raised before any command runs; fatal for the invocation.
	Configuration Kind = "configuration_error"
	// UnknownCommand indicates the caller requested a command outside the
	// dispatch table.
	UnknownCommand Kind = "unknown_command_error"
	// InvalidArgument indicates a command argument failed validation
	// (wrong arity, empty identifier) before reaching BigQuery.
	InvalidArgument Kind = "invalid_argument_error"
	// Client indicates an authentication or network failure reaching BigQuery.
	Client Kind = "client_error"
	// NotFound indicates a dataset or table that is absent or filtered out.
	NotFound Kind = "not_found_error"
	// Query indicates malformed or rejected SQL; the underlying diagnostic
	// is preserved in the message.
	Query Kind = "query_error"
)

// E wraps an error with kind and human-friendly message.
type E struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the underlying error for errors.Is/As chains.
func (e *E) Unwrap() error { return e.Err }

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// KindOf returns the kind of err when it carries one, or the zero Kind.
func KindOf(err error) Kind {
	var e *E
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
