// LangGate - Multi-Tenant Linguistic Analysis Gateway
// Copyright 2026 The LangGate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/giellalt/langgate

package preferences

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giellalt/langgate/internal/workererr"
)

const sampleOutput = `Some preamble text
that the tool prints first
==== Toggles: ====
==== Toggles: ====
- [x] typo          Spelling errors
- [ ] cmp           Compound word errors
- [ ] [regex]       Internal regex bookkeeping, never surfaced
Trailing text that is not a toggle line
`

func TestParseCollectsTogglesBetweenDoubleSeparator(t *testing.T) {
	set, err := Parse([]byte(sampleOutput))
	require.NoError(t, err)

	assert.Equal(t, []string{"typo", "cmp"}, set.Tags())
	assert.Equal(t, map[string]string{
		"typo": "Spelling errors",
		"cmp":  "Compound word errors",
	}, set.AsMap())
}

func TestParseMissingSeparatorIsProtocolFailure(t *testing.T) {
	_, err := Parse([]byte("no separator anywhere in this output\n"))
	require.Error(t, err)

	var werr *workererr.Error
	require.True(t, errors.As(err, &werr))
	assert.Equal(t, workererr.Protocol, werr.Kind)
}

func TestLoadSurfacesRunnerFailureAsLoadFailure(t *testing.T) {
	failing := func(ctx context.Context, modelPath string) ([]byte, error) {
		return nil, errors.New("exec: not found")
	}

	_, err := Load(context.Background(), failing, "/data/grammar/se.zcheck")
	require.Error(t, err)

	var werr *workererr.Error
	require.True(t, errors.As(err, &werr))
	assert.Equal(t, workererr.LoadFailure, werr.Kind)
}

func TestLoadParsesSuccessfulRunnerOutput(t *testing.T) {
	ok := func(ctx context.Context, modelPath string) ([]byte, error) {
		return []byte(sampleOutput), nil
	}

	set, err := Load(context.Background(), ok, "/data/grammar/se.zcheck")
	require.NoError(t, err)
	assert.Len(t, set.Tags(), 2)
}
