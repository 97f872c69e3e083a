// Copyright The Mety Authors.
// SPDX-License-Identifier: MIT

// Package idgen produces the opaque identifiers assigned to every entity
// created by the session store.
package idgen

import (
	"github.com/akamensky/base58"
	"github.com/google/uuid"
)

// New returns a short opaque identifier. Identifiers are unique for the
// lifetime of a session but are not secrets and are not meant to be
// cryptographically unguessable.
func New() string {
	id := uuid.New()
	return base58.Encode(id[:])
}
