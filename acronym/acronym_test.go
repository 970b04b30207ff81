package acronym

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDictionary(t *testing.T) *Dictionary {
	t.Helper()
	d, err := FromMap(map[string][]string{
		"CT":  {"Clinical trials"},
		"SBP": {"Swiss Biobanking Platform", "Biobanking Platform"},
		"PPI": {"Patient and public involvement"},
	})
	require.NoError(t, err)
	return d
}

func TestFromMap(t *testing.T) {
	t.Run("uppercases keys and drops blanks", func(t *testing.T) {
		d, err := FromMap(map[string][]string{
			"ct":    {" Clinical trials ", ""},
			"  ":    {"nothing"},
			"EMPTY": {"", "  "},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, d.Len())
		assert.Equal(t, []string{"Clinical trials"}, d.Expansions("CT"))
		assert.Nil(t, d.Expansions("EMPTY"))
	})

	t.Run("duplicate keys rejected", func(t *testing.T) {
		_, err := FromMap(map[string][]string{"ct": {"a"}, "CT ": {"b"}})
		assert.Error(t, err)
	})
}

func TestExpandQuery(t *testing.T) {
	d := testDictionary(t)

	t.Run("acronym token matched", func(t *testing.T) {
		expanded, matched := d.ExpandQuery("need CT support")
		assert.Equal(t, []string{"CT"}, matched)
		assert.Contains(t, expanded, "need CT support")
		assert.Contains(t, expanded, "CT (Clinical trials)")
	})

	t.Run("no match returns text unchanged", func(t *testing.T) {
		expanded, matched := d.ExpandQuery("sample storage advice")
		assert.Equal(t, "sample storage advice", expanded)
		assert.Nil(t, matched)
	})

	t.Run("punctuation stripped before matching", func(t *testing.T) {
		_, matched := d.ExpandQuery("help with (ct)?")
		assert.Equal(t, []string{"CT"}, matched)
	})

	t.Run("exact token match, not substring", func(t *testing.T) {
		_, matched := d.ExpandQuery("doctors and facts")
		assert.Nil(t, matched)
	})

	t.Run("first-matched order, deduplicated", func(t *testing.T) {
		expanded, matched := d.ExpandQuery("SBP needs CT and more CT")
		assert.Equal(t, []string{"SBP", "CT"}, matched)
		assert.Contains(t, expanded, "SBP (Swiss Biobanking Platform | Biobanking Platform); CT (Clinical trials)")
	})
}

func TestExpandInline(t *testing.T) {
	d := testDictionary(t)

	t.Run("appends first expansion only", func(t *testing.T) {
		got := d.ExpandInline("SBP offers consulting")
		assert.Equal(t, "SBP (Swiss Biobanking Platform) offers consulting", got)
	})

	t.Run("case-insensitive with word boundaries", func(t *testing.T) {
		got := d.ExpandInline("ask about ct today")
		assert.Equal(t, "ask about ct (Clinical trials) today", got)
		assert.Equal(t, "doctors", d.ExpandInline("doctors"))
	})

	t.Run("skips occurrences already parenthesized", func(t *testing.T) {
		got := d.ExpandInline("CT (Clinical trials) support")
		assert.Equal(t, "CT (Clinical trials) support", got)
	})

	t.Run("rewrites every occurrence", func(t *testing.T) {
		got := d.ExpandInline("CT now, CT later")
		assert.Equal(t, "CT (Clinical trials) now, CT (Clinical trials) later", got)
	})
}

func TestBuildAliases(t *testing.T) {
	d := testDictionary(t)

	t.Run("expansion hit adds acronym too", func(t *testing.T) {
		aliases := d.BuildAliases("Trial design", "", "", "We support Clinical trials from day one")
		assert.Contains(t, aliases, "CT")
		assert.Contains(t, aliases, "Clinical trials")
	})

	t.Run("acronym hit adds all expansions", func(t *testing.T) {
		aliases := d.BuildAliases("SBP consult", "SBP", "", "")
		assert.Equal(t, []string{"SBP", "Swiss Biobanking Platform", "Biobanking Platform"}, aliases)
	})

	t.Run("no hits yields nil", func(t *testing.T) {
		aliases := d.BuildAliases("Biobanking consult", "ACME", "", "Sample collection and storage advice")
		assert.Nil(t, aliases)
	})

	t.Run("idempotent and deterministic", func(t *testing.T) {
		first := d.BuildAliases("CT support", "SBP", "", "Patient and public involvement work")
		second := d.BuildAliases("CT support", "SBP", "", "Patient and public involvement work")
		assert.Equal(t, first, second)
		// Sorted dictionary order: CT before PPI before SBP.
		assert.Equal(t, []string{
			"CT", "Clinical trials",
			"PPI", "Patient and public involvement",
			"SBP", "Swiss Biobanking Platform", "Biobanking Platform",
		}, first)
	})

	t.Run("case-insensitive whole-word matching", func(t *testing.T) {
		aliases := d.BuildAliases("", "", "", "we run CLINICAL TRIALS here")
		assert.Contains(t, aliases, "CT")
	})
}

func TestGlossary(t *testing.T) {
	d := testDictionary(t)

	t.Run("union across texts, first-encountered order", func(t *testing.T) {
		entries := d.Glossary("need CT advice", "SBP biobanking, plus CT")
		require.Len(t, entries, 2)
		assert.Equal(t, "CT", entries[0].Acronym)
		assert.Equal(t, "SBP", entries[1].Acronym)
	})

	t.Run("format", func(t *testing.T) {
		entries := d.Glossary("SBP")
		got := FormatGlossary(entries)
		assert.Equal(t, "SBP = Swiss Biobanking Platform | Biobanking Platform", got)
	})

	t.Run("empty glossary formats to empty string", func(t *testing.T) {
		assert.Equal(t, "", FormatGlossary(nil))
	})
}
