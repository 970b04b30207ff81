package acronym

import (
	"regexp"
	"strings"
)

// ExpandQuery detects dictionary acronyms in a free-text query and appends a
// glossary suffix naming each matched acronym with its pipe-joined expansions,
// in first-matched order. The expanded string, not the raw query, is what gets
// embedded, so acronym-only queries retrieve documents containing the
// expansion.
//
// When no token matches, the text is returned unchanged and matched is nil.
func (d *Dictionary) ExpandQuery(text string) (expanded string, matched []string) {
	seen := make(map[string]bool)
	for _, token := range strings.Fields(text) {
		cleaned := cleanToken(token)
		if cleaned == "" || seen[cleaned] {
			continue
		}
		if d.contains(cleaned) {
			seen[cleaned] = true
			matched = append(matched, cleaned)
		}
	}
	if len(matched) == 0 {
		return text, nil
	}

	parts := make([]string, len(matched))
	for i, acro := range matched {
		parts[i] = acro + " (" + strings.Join(d.Expansions(acro), " | ") + ")"
	}
	return text + "\n" + strings.Join(parts, "; "), matched
}

// ExpandInline rewrites every acronym occurrence in place, appending the first
// listed expansion in parentheses directly after it. Matching is word-boundary
// and case-insensitive. Occurrences already followed by an opening parenthesis
// are left alone. Used when building embedding text for stored passages.
func (d *Dictionary) ExpandInline(text string) string {
	for _, e := range d.entries {
		first := e.expansions[0]
		text = replaceUnlessParenthesized(text, e.wordRe, first)
	}
	return text
}

// replaceUnlessParenthesized appends " (expansion)" after each regexp match
// whose next non-space character is not already an opening parenthesis.
func replaceUnlessParenthesized(text string, re *regexp.Regexp, expansion string) string {
	locs := re.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + len(locs)*(len(expansion)+3))
	prev := 0
	for _, loc := range locs {
		b.WriteString(text[prev:loc[1]])
		prev = loc[1]
		if followedByParen(text, loc[1]) {
			continue
		}
		b.WriteString(" (" + expansion + ")")
	}
	b.WriteString(text[prev:])
	return b.String()
}

// followedByParen reports whether the next non-space character at or after
// offset is an opening parenthesis.
func followedByParen(text string, offset int) bool {
	for i := offset; i < len(text); i++ {
		switch text[i] {
		case ' ', '\t':
			continue
		case '(':
			return true
		default:
			return false
		}
	}
	return false
}
