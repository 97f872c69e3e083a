// Copyright The Mety Authors.
// SPDX-License-Identifier: MIT

package utils

import "strings"

var angleBracketReplacer = strings.NewReplacer("<", "", ">", "")

// SanitizeText strips the literal characters '<' and '>' from user-supplied
// text before it is stored. This is deliberately a narrow filter rather than
// full HTML escaping: the rendering layer treats stored content as plain
// text, and downstream consumers depend on this exact behavior.
//
// TODO: replace with proper context-aware escaping once every consumer of
// stored content renders through a templating layer.
func SanitizeText(s string) string {
	return angleBracketReplacer.Replace(s)
}
