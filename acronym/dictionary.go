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


package acronym

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
)

// entry holds one acronym with its expansions and the precompiled
// whole-word matchers used by alias extraction and inline expansion.
type entry struct {
	acronym    string
	expansions []string

	wordRe      *regexp.Regexp   // whole-word occurrence of the acronym, case-insensitive
	expansionRe []*regexp.Regexp // whole-word occurrence of each expansion, case-insensitive
}

// Dictionary is an immutable acronym → expansions mapping.
// Entries iterate in sorted acronym order so every derived output
// (aliases, inline rewrites, glossaries) is deterministic.
type Dictionary struct {
	entries []entry
	byKey   map[string]int // uppercase acronym → index into entries
}

// FromMap builds a dictionary from an acronym → expansions map.
// Acronym keys are uppercased; blank keys and blank expansions are dropped.
func FromMap(m map[string][]string) (*Dictionary, error) {
	keys := make([]string, 0, len(m))
	cleaned := make(map[string][]string, len(m))
	for k, exps := range m {
		k = strings.ToUpper(strings.TrimSpace(k))
		if k == "" {
			continue
		}
		kept := make([]string, 0, len(exps))
		for _, e := range exps {
			e = strings.TrimSpace(e)
			if e != "" {
				kept = append(kept, e)
			}
		}
		if len(kept) == 0 {
			continue
		}
		if _, dup := cleaned[k]; dup {
			return nil, fmt.Errorf("duplicate acronym %q", k)
		}
		cleaned[k] = kept
		keys = append(keys, k)
	}
	sort.Strings(keys)

	d := &Dictionary{
		entries: make([]entry, 0, len(keys)),
		byKey:   make(map[string]int, len(keys)),
	}
	for _, k := range keys {
		e := entry{
			acronym:    k,
			expansions: cleaned[k],
			wordRe:     wholeWordRe(k),
		}
		for _, exp := range cleaned[k] {
			e.expansionRe = append(e.expansionRe, wholeWordRe(exp))
		}
		d.byKey[k] = len(d.entries)
		d.entries = append(d.entries, e)
	}
	return d, nil
}

// Load reads a dictionary from a JSON file mapping acronyms to expansion lists:
//
//	{"CT": ["Clinical trials"], "SBP": ["Swiss Biobanking Platform"]}
func Load(path string) (*Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read acronym dictionary: %w", err)
	}
	var m map[string][]string
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse acronym dictionary %s: %w", path, err)
	}
	return FromMap(m)
}

// Len returns the number of acronyms in the dictionary.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// Expansions returns the expansions for an acronym, or nil if unknown.
// Lookup is case-insensitive.
func (d *Dictionary) Expansions(acronym string) []string {
	i, ok := d.byKey[strings.ToUpper(acronym)]
	if !ok {
		return nil
	}
	return d.entries[i].expansions
}

// contains reports whether token (already cleaned) is a known acronym.
func (d *Dictionary) contains(token string) bool {
	_, ok := d.byKey[token]
	return ok
}

// wholeWordRe compiles a case-insensitive whole-word matcher for a phrase.
func wholeWordRe(phrase string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(phrase) + `\b`)
}

// cleanToken uppercases a whitespace token and strips non-letter runes,
// so "CT," and "(ct)" both normalize to "CT".
func cleanToken(token string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(token) {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
