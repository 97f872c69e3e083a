// Copyright The Mety Authors.
// SPDX-License-Identifier: MIT

package domain

import "context"

// CaptionSource yields one line of captioned text per call for the requested
// language. A real implementation fronts a speech-to-text pipeline; the
// session store only requires that unsupported languages fall back to a
// default language rather than failing.
type CaptionSource interface {
	// NextLine returns the caption text and the language actually served.
	NextLine(ctx context.Context, lang string) (text string, servedLang string, err error)
}

// Translator renders text in a target language. Translation is stateless and
// never touches the caption log; callers decide what to do with the result.
type Translator interface {
	Translate(ctx context.Context, text, targetLang string) (string, error)
}
