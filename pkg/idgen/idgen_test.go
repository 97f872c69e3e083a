// Copyright The Mety Authors.
// SPDX-License-Identifier: MIT

package idgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	id := New()
	assert.NotEmpty(t, id)
	// base58 never produces characters that need escaping in URLs or markup
	assert.NotContains(t, id, "<")
	assert.NotContains(t, id, ">")
	assert.NotContains(t, id, "/")
}

func TestNewUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for n := 0; n < 1000; n++ {
		id := New()
		assert.False(t, seen[id], "duplicate identifier generated: %s", id)
		seen[id] = true
	}
}
