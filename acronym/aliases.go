package acronym

import "strings"

// BuildAliases computes the alias set for a service from its textual fields.
// Absent fields are skipped. For every dictionary entry, a whole-word hit on
// the acronym itself or on any of its expansions (case-insensitive) adds both
// the acronym and all of its expansions, so a service written with only the
// expansion stays discoverable by the acronym and vice versa.
//
// The result is deduplicated and ordered by first-encountered dictionary key,
// which keeps the output deterministic across calls. BuildAliases never
// consults a service's existing alias list: re-running on the same fields
// always yields the same set.
func (d *Dictionary) BuildAliases(name, organization, hidden, description string) []string {
	var fields []string
	for _, f := range []string{name, organization, hidden, description} {
		if strings.TrimSpace(f) != "" {
			fields = append(fields, f)
		}
	}
	if len(fields) == 0 {
		return nil
	}
	haystack := strings.Join(fields, "\n")

	var aliases []string
	seen := make(map[string]bool)
	add := func(v string) {
		if !seen[v] {
			seen[v] = true
			aliases = append(aliases, v)
		}
	}

	for _, e := range d.entries {
		hit := e.wordRe.MatchString(haystack)
		if !hit {
			for _, re := range e.expansionRe {
				if re.MatchString(haystack) {
					hit = true
					break
				}
			}
		}
		if !hit {
			continue
		}
		add(e.acronym)
		for _, exp := range e.expansions {
			add(exp)
		}
	}
	return aliases
}
