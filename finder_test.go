package servicefinder

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/servicefinder/acronym"
	"github.com/poiesic/servicefinder/reindex"
)

func testDictionary(t *testing.T) *acronym.Dictionary {
	t.Helper()
	d, err := acronym.FromMap(map[string][]string{
		"CT": {"Clinical trials"},
	})
	require.NoError(t, err)
	return d
}

func TestNewFinder(t *testing.T) {
	t.Run("create new finder", func(t *testing.T) {
		tmpDir := filepath.Join(t.TempDir(), "test_db")
		finder, err := NewFinder(context.Background(), tmpDir, testDictionary(t))
		require.NoError(t, err)
		require.NotNil(t, finder)
		defer finder.Close()

		// Verify components are initialized
		assert.NotNil(t, finder.Stores())
		assert.NotNil(t, finder.Writer())
		assert.NotNil(t, finder.Searcher())
		assert.NotNil(t, finder.Explainer())
		assert.NotNil(t, finder.Sessions())
		assert.NotNil(t, finder.AuditLog())
	})

	t.Run("without explainer", func(t *testing.T) {
		tmpDir := filepath.Join(t.TempDir(), "test_db")
		finder, err := NewFinder(context.Background(), tmpDir, testDictionary(t), WithoutExplainer())
		require.NoError(t, err)
		defer finder.Close()

		assert.Nil(t, finder.Explainer())
		assert.NotNil(t, finder.Searcher())
	})

	t.Run("error with invalid path", func(t *testing.T) {
		// A file path instead of a directory
		tmpFile := filepath.Join(t.TempDir(), "not_a_dir")
		err := os.WriteFile(tmpFile, []byte("test"), 0644)
		require.NoError(t, err)

		finder, err := NewFinder(context.Background(), tmpFile, testDictionary(t))
		assert.Error(t, err)
		assert.Nil(t, finder)
	})
}

func TestFinder_Close(t *testing.T) {
	finder, err := NewFinder(context.Background(), t.TempDir(), testDictionary(t))
	require.NoError(t, err)
	require.NotNil(t, finder)

	err = finder.Close()
	assert.NoError(t, err)
}

func TestFinder_NewReconciler(t *testing.T) {
	finder, err := NewFinder(context.Background(), t.TempDir(), testDictionary(t), WithoutExplainer())
	require.NoError(t, err)
	defer finder.Close()

	reconciler, err := finder.NewReconciler(reindex.DefaultConfig())
	require.NoError(t, err)
	require.NotNil(t, reconciler)
}
