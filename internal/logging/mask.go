// Copyright (c) 2025 bqbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package logging provides utilities for secure logging and error presentation.
// It includes functions for masking sensitive information in log messages and
// formatting errors for user-friendly display while protecting credentials and secrets.
//
// The package helps ensure that sensitive data like OAuth tokens, API keys, and
// service-account key material are not accidentally exposed in error messages
// surfaced to users or to an MCP client.
package logging

import (
	"regexp"
	"strings"
)

var (
	reToken      = regexp.MustCompile(`(?i)(token=|bearer\s+)([A-Za-z0-9._-]+)`)
	reAPIKey     = regexp.MustCompile(`(?i)(apikey=|api_key=|key=)([A-Za-z0-9._-]+)`)
	rePrivateKey = regexp.MustCompile(`(?is)("private_key"\s*:\s*")([^"]+)(")`)
	reSecret     = regexp.MustCompile(`(?i)("client_secret"\s*:\s*")([^"]+)(")`)
)

// Mask replaces sensitive values in the input string with "*".
// Service-account JSON fragments have their key material masked while the
// surrounding structure stays readable.
func Mask(s string) string {
	out := s
	out = reToken.ReplaceAllString(out, "$1***")
	out = reAPIKey.ReplaceAllString(out, "$1***")
	out = rePrivateKey.ReplaceAllString(out, "$1***$3")
	out = reSecret.ReplaceAllString(out, "$1***$3")
	// Basic env-like pairs key=VALUE; mask common secret keys
	for _, k := range []string{"GOOGLE_OAUTH_ACCESS_TOKEN", "ACCESS_TOKEN", "REFRESH_TOKEN"} {
		out = strings.ReplaceAll(out, k+"=", k+"=***")
	}
	return out
}
