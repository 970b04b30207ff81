package embedtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeField(t *testing.T) {
	t.Run("decodes entities and trims", func(t *testing.T) {
		assert.Equal(t, "R&D support", NormalizeField("  R&amp;D support \n"))
	})

	t.Run("plain text untouched", func(t *testing.T) {
		assert.Equal(t, "plain", NormalizeField("plain"))
	})
}

func TestBuild(t *testing.T) {
	t.Run("fixed field order", func(t *testing.T) {
		got := Build("Biobanking consult", "", "Sample storage advice", nil)
		assert.Equal(t, "Description: Sample storage advice\nService name: Biobanking consult", got)
	})

	t.Run("hidden descriptor prefixes description", func(t *testing.T) {
		got := Build("Consult", "internal keywords", "Storage advice", nil)
		assert.Equal(t, "Description: internal keywords - Storage advice\nService name: Consult", got)
	})

	t.Run("alias line when aliases present", func(t *testing.T) {
		got := Build("Consult", "", "Advice", []string{"CT", "Clinical trials"})
		assert.Equal(t, "Description: Advice\nService name: Consult\nAliases: CT, Clinical trials", got)
	})

	t.Run("normalizes line endings and blank runs", func(t *testing.T) {
		got := Build("Consult", "", "line one\r\n\r\n\r\n\r\nline two", nil)
		assert.Equal(t, "Description: line one\n\nline two\nService name: Consult", got)
	})

	t.Run("pure function", func(t *testing.T) {
		a := Build("N", "H", "D", []string{"x"})
		b := Build("N", "H", "D", []string{"x"})
		assert.Equal(t, a, b)
	})

	t.Run("entity-encoded fields normalized", func(t *testing.T) {
		got := Build("M&amp;E consult", "", "Q&amp;A sessions", nil)
		assert.Equal(t, "Description: Q&A sessions\nService name: M&E consult", got)
	})
}
