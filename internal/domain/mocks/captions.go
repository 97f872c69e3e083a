// Copyright The Mety Authors.
// SPDX-License-Identifier: MIT

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockCaptionSource implements domain.CaptionSource for testing
type MockCaptionSource struct {
	mock.Mock
}

func (m *MockCaptionSource) NextLine(ctx context.Context, lang string) (string, string, error) {
	args := m.Called(ctx, lang)
	return args.String(0), args.String(1), args.Error(2)
}

// MockTranslator implements domain.Translator for testing
type MockTranslator struct {
	mock.Mock
}

func (m *MockTranslator) Translate(ctx context.Context, text, targetLang string) (string, error) {
	args := m.Called(ctx, text, targetLang)
	return args.String(0), args.Error(1)
}
