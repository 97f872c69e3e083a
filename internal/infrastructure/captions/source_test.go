// Copyright The Mety Authors.
// SPDX-License-Identifier: MIT

package captions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticSourceNextLine(t *testing.T) {
	tests := []struct {
		name         string
		lang         string
		expectedLang string
	}{
		{"english", "en", "en"},
		{"spanish", "es", "es"},
		{"french", "fr", "fr"},
		{"german", "de", "de"},
		{"unsupported falls back to english", "jp", "en"},
		{"empty falls back to english", "", "en"},
	}

	source := NewStaticSource()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, servedLang, err := source.NextLine(context.Background(), tt.lang)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedLang, servedLang)
			assert.Equal(t, cannedLines[tt.expectedLang], text)
		})
	}
}

func TestAnnotatingTranslator(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		target   string
		expected string
	}{
		{"spanish", "hello", "es", "[ES] hello"},
		{"uppercase target preserved", "hello", "FR", "[FR] hello"},
		{"empty target defaults", "hello", "", "[EN] hello"},
	}

	translator := NewAnnotatingTranslator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := translator.Translate(context.Background(), tt.text, tt.target)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTranslateIsStateless(t *testing.T) {
	translator := NewAnnotatingTranslator()
	first, err := translator.Translate(context.Background(), "bonjour", "fr")
	require.NoError(t, err)
	second, err := translator.Translate(context.Background(), "bonjour", "fr")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
