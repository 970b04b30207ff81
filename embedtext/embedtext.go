// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package embedtext builds the canonical text blob a service is embedded
// from. Build is a pure function: identical inputs always produce a
// byte-identical string, which is what makes the catalog write path's
// change detection meaningful.
package embedtext

import (
	"html"
	"regexp"
	"strings"
)

var (
	lineEndingRe = regexp.MustCompile(`\r\n?`)
	blankRunRe   = regexp.MustCompile(`\n{3,}`)
)

// NormalizeField decodes HTML entities and trims surrounding whitespace.
// Applied to every free-text service field before storage and embedding.
func NormalizeField(s string) string {
	return strings.TrimSpace(html.UnescapeString(s))
}

// Build composes a service's embedding text in a fixed field order:
// a description line (prefixed with the hidden descriptor when present),
// a service-name line, and an alias line when any aliases exist.
//
// Line endings are normalized to \n, runs of blank lines collapse to one,
// and the result is trimmed.
func Build(name, hidden, description string, aliases []string) string {
	name = NormalizeField(name)
	hidden = NormalizeField(hidden)
	description = NormalizeField(description)

	var b strings.Builder
	b.WriteString("Description: ")
	if hidden != "" {
		b.WriteString(hidden)
		b.WriteString(" - ")
	}
	b.WriteString(description)
	b.WriteString("\n")
	b.WriteString("Service name: ")
	b.WriteString(name)
	if len(aliases) > 0 {
		b.WriteString("\n")
		b.WriteString("Aliases: ")
		b.WriteString(strings.Join(aliases, ", "))
	}

	text := lineEndingRe.ReplaceAllString(b.String(), "\n")
	text = blankRunRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
