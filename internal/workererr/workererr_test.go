// LangGate - Multi-Tenant Linguistic Analysis Gateway
// Copyright 2026 The LangGate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/giellalt/langgate

package workererr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFatalClassification(t *testing.T) {
	tests := []struct {
		kind  Kind
		fatal bool
	}{
		{NotFound, false},
		{BadInput, false},
		{Protocol, true},
		{Io, true},
		{LoadFailure, false},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			err := New(tt.kind, "boom")
			assert.Equal(t, tt.fatal, err.Fatal())
		})
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("pipe closed")
	err := Wrap(Io, cause, "writing request")

	assert.Equal(t, cause, errors.Unwrap(err))
	assert.Contains(t, err.Error(), "pipe closed")
	assert.Contains(t, err.Error(), "writing request")
}

func TestToAPIErrorFromWorkerError(t *testing.T) {
	werr := New(NotFound, "No speller available for language xx")
	apiErr := ToAPIError(werr)
	assert.Equal(t, "No speller available for language xx", apiErr.Message)
}

func TestToAPIErrorFromPlainError(t *testing.T) {
	apiErr := ToAPIError(errors.New("mailbox full"))
	assert.Equal(t, "mailbox full", apiErr.Message)
}
