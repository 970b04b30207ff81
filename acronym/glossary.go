package acronym

import "strings"

// GlossaryEntry pairs an acronym with all of its expansions.
type GlossaryEntry struct {
	Acronym    string
	Expansions []string
}

// Glossary scans each text for acronym tokens and returns the union of hits
// as ordered glossary entries (first-encountered order across texts). Used by
// the match explainer, where the full expansion list is wanted rather than
// the concise first-expansion form.
func (d *Dictionary) Glossary(texts ...string) []GlossaryEntry {
	var entries []GlossaryEntry
	seen := make(map[string]bool)
	for _, text := range texts {
		for _, token := range strings.Fields(text) {
			cleaned := cleanToken(token)
			if cleaned == "" || seen[cleaned] || !d.contains(cleaned) {
				continue
			}
			seen[cleaned] = true
			entries = append(entries, GlossaryEntry{
				Acronym:    cleaned,
				Expansions: d.Expansions(cleaned),
			})
		}
	}
	return entries
}

// FormatGlossary renders glossary entries one per line as
// "ACRO = expansion | expansion". Returns "" for an empty glossary.
func FormatGlossary(entries []GlossaryEntry) string {
	if len(entries) == 0 {
		return ""
	}
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.Acronym + " = " + strings.Join(e.Expansions, " | ")
	}
	return strings.Join(lines, "\n")
}
