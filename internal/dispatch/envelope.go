// Copyright (c) 2025 bqbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package dispatch

import (
	"encoding/json"

	errs "bqbridge/cli/internal/errors"
	"bqbridge/cli/internal/logging"
)

// Status marks an envelope as carrying a result or an error.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Detail carries the machine-readable kind and the preserved diagnostic text
// of a failed command.
type Detail struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Envelope is the uniform response wrapper handed to every caller, whether a
// terminal user or an MCP client. It is terminal: created once by the
// normalizer and never retained.
type Envelope struct {
	Status  Status  `json:"status"`
	Payload any     `json:"payload,omitempty"`
	Error   *Detail `json:"error,omitempty"`
}

// Success wraps a command result.
func Success(payload any) Envelope {
	return Envelope{Status: StatusSuccess, Payload: payload}
}

// Failure normalizes an error into an error envelope. Errors without a kind
// did not originate here and are reported as client errors. Secrets are
// masked, the rest of the diagnostic is preserved.
func Failure(err error) Envelope {
	kind := errs.KindOf(err)
	if kind == "" {
		kind = errs.Client
	}
	return Envelope{
		Status: StatusError,
		Error: &Detail{
			Kind:    string(kind),
			Message: logging.Mask(err.Error()),
		},
	}
}

// Failed reports whether the envelope carries an error.
func (e Envelope) Failed() bool { return e.Status == StatusError }

// JSON renders the envelope as indented JSON for the CLI --json output and
// the MCP transport.
func (e Envelope) JSON() (string, error) {
	b, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
