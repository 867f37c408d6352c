// Copyright (c) 2025 bqbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package dispatch

import (
	"encoding/json"
	"strings"
	"testing"

	errs "bqbridge/cli/internal/errors"
)

func TestSuccessEnvelope(t *testing.T) {
	env := Success([]string{"sales"})
	if env.Status != StatusSuccess {
		t.Errorf("status = %q, want %q", env.Status, StatusSuccess)
	}
	if env.Failed() {
		t.Error("success envelope reports Failed()")
	}
	if env.Error != nil {
		t.Errorf("success envelope carries error detail: %+v", env.Error)
	}
}

func TestFailureEnvelope(t *testing.T) {
	env := Failure(errs.New(errs.NotFound, "dataset nonexistent_ds not found"))

	if env.Status != StatusError || !env.Failed() {
		t.Fatalf("status = %q, want %q", env.Status, StatusError)
	}
	if env.Error.Kind != string(errs.NotFound) {
		t.Errorf("kind = %q, want %q", env.Error.Kind, errs.NotFound)
	}
	if !strings.Contains(env.Error.Message, "nonexistent_ds") {
		t.Errorf("message %q lost the identifier", env.Error.Message)
	}
}

func TestFailureEnvelopeUnclassifiedError(t *testing.T) {
	env := Failure(errForTest("dial tcp: i/o timeout"))
	if env.Error.Kind != string(errs.Client) {
		t.Errorf("unclassified error kind = %q, want %q", env.Error.Kind, errs.Client)
	}
}

func TestFailureEnvelopeMasksSecrets(t *testing.T) {
	env := Failure(errForTest("request rejected: token=supersecret"))
	if strings.Contains(env.Error.Message, "supersecret") {
		t.Errorf("secret leaked into envelope: %q", env.Error.Message)
	}
}

func TestEnvelopeJSON(t *testing.T) {
	env := Failure(errs.New(errs.Query, `Syntax error: Unexpected identifier "SELEC"`))

	out, err := env.JSON()
	if err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var decoded struct {
		Status string `json:"status"`
		Error  struct {
			Kind    string `json:"kind"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if decoded.Status != "error" {
		t.Errorf("status = %q", decoded.Status)
	}
	if decoded.Error.Kind != string(errs.Query) {
		t.Errorf("kind = %q", decoded.Error.Kind)
	}
	if !strings.Contains(decoded.Error.Message, "SELEC") {
		t.Errorf("diagnostic lost: %q", decoded.Error.Message)
	}
}
