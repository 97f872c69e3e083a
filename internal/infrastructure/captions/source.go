// Copyright The Mety Authors.
// SPDX-License-Identifier: MIT

// Package captions provides the stand-in caption and translation
// collaborators. A production deployment replaces these with a real
// speech-to-text pipeline and translation service behind the same
// domain interfaces.
package captions

import (
	"context"
	"strings"

	"github.com/mety-app/session-service/pkg/constants"
)

// cannedLines holds one caption line per supported language.
var cannedLines = map[string]string{
	"en": "This is a mock real-time caption line.",
	"es": "Esta es una línea simulada de subtítulos en tiempo real.",
	"fr": "Ceci est une ligne de sous-titres simulée en temps réel.",
	"de": "Dies ist eine simulierte Live-Untertitel-Zeile.",
}

// StaticSource implements domain.CaptionSource with canned per-language
// lines. Unsupported language codes fall back to the default language
// rather than failing.
type StaticSource struct{}

// NewStaticSource creates a new StaticSource.
func NewStaticSource() *StaticSource {
	return &StaticSource{}
}

// NextLine returns one caption line and the language it is actually in.
func (s *StaticSource) NextLine(ctx context.Context, lang string) (string, string, error) {
	if text, ok := cannedLines[lang]; ok {
		return text, lang, nil
	}
	return cannedLines[constants.DefaultCaptionLanguage], constants.DefaultCaptionLanguage, nil
}

// AnnotatingTranslator implements domain.Translator by annotating the text
// with the upper-cased target language. It stands in for a real machine
// translation backend; the transform is pure and has no side effects.
type AnnotatingTranslator struct{}

// NewAnnotatingTranslator creates a new AnnotatingTranslator.
func NewAnnotatingTranslator() *AnnotatingTranslator {
	return &AnnotatingTranslator{}
}

// Translate renders text in the target language. An empty target defaults
// to the default caption language.
func (t *AnnotatingTranslator) Translate(ctx context.Context, text, targetLang string) (string, error) {
	if targetLang == "" {
		targetLang = constants.DefaultCaptionLanguage
	}
	return "[" + strings.ToUpper(targetLang) + "] " + text, nil
}
