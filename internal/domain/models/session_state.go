// Copyright The Mety Authors.
// SPDX-License-Identifier: MIT

package models

// SessionState is the full read-model of one meeting: the record itself plus
// all of its sub-collections, as served to a presentation layer loading the
// meeting page in one round trip.
type SessionState struct {
	Meeting      *Meeting       `json:"meeting"`
	Participants []*Participant `json:"participants"`
	Messages     []*ChatMessage `json:"messages"`
	Files        []*FileItem    `json:"files"`
	Captions     []*Caption     `json:"captions"`
	Recording    *Recording     `json:"recording,omitempty"`
}
