// Copyright The Mety Authors.
// SPDX-License-Identifier: MIT

package constants

// Session store defaults
const (
	// DefaultMeetingTitle is substituted when a meeting is created with a
	// blank title.
	DefaultMeetingTitle = "Untitled Meeting"

	// DefaultCaptionLanguage is the language captions fall back to when the
	// requested language is not supported.
	DefaultCaptionLanguage = "en"

	// SummaryMessageSample is how many of the most recent chat messages the
	// meeting summary includes.
	SummaryMessageSample = 3
)
