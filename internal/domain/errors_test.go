// Copyright The Mety Authors.
// SPDX-License-Identifier: MIT

package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      *DomainError
		expected string
	}{
		{
			name:     "message only",
			err:      NewNotFoundError("meeting not found"),
			expected: "meeting not found",
		},
		{
			name:     "message with wrapped error",
			err:      NewInternalError("listing meetings", errors.New("boom")),
			expected: "listing meetings: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestGetErrorType(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ErrorType
	}{
		{"validation", NewValidationError("bad input"), ErrorTypeValidation},
		{"not found", NewNotFoundError("missing"), ErrorTypeNotFound},
		{"conflict", NewConflictError("already recording"), ErrorTypeConflict},
		{"internal", NewInternalError("oops"), ErrorTypeInternal},
		{"unavailable", NewUnavailableError("not ready"), ErrorTypeUnavailable},
		{"plain error defaults to internal", errors.New("plain"), ErrorTypeInternal},
		{"wrapped domain error", errors.Join(errors.New("outer"), NewNotFoundError("inner")), ErrorTypeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetErrorType(tt.err))
		})
	}
}

func TestDomainErrorUnwrap(t *testing.T) {
	inner := errors.New("inner")
	err := NewInternalError("outer", inner)
	assert.ErrorIs(t, err, inner)
}
