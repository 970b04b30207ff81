package tei

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/poiesic/servicefinder/ai"
	"github.com/poiesic/servicefinder/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEmbedder(t *testing.T, url string, dim int, timeout time.Duration) ai.Embedder {
	t.Helper()
	cfg := ai.NewConfig(
		ai.WithEmbeddingHost(url),
		ai.WithDimension(dim),
		ai.WithTimeout(timeout),
	)
	e, err := NewEmbedder(cfg)
	require.NoError(t, err)
	return e
}

func vectorServer(t *testing.T, dim int, capture *[][]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Inputs []string `json:"inputs"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if capture != nil {
			*capture = append(*capture, req.Inputs)
		}
		vectors := make([][]float32, len(req.Inputs))
		for i := range vectors {
			vectors[i] = make([]float32, dim)
			vectors[i][0] = float32(i + 1)
		}
		json.NewEncoder(w).Encode(vectors)
	}))
}

func TestEmbedQueries_PrefixAndOrder(t *testing.T) {
	var captured [][]string
	srv := vectorServer(t, 4, &captured)
	defer srv.Close()

	e := newTestEmbedder(t, srv.URL, 4, time.Second)

	vectors, err := e.EmbedQueries(context.Background(), []string{"first", " second "})
	require.NoError(t, err)
	require.Len(t, vectors, 2)
	assert.Equal(t, float32(1), vectors[0][0])
	assert.Equal(t, float32(2), vectors[1][0])

	require.Len(t, captured, 1)
	assert.Equal(t, []string{"query: first", "query: second"}, captured[0])
}

func TestEmbedPassages_Prefix(t *testing.T) {
	var captured [][]string
	srv := vectorServer(t, 4, &captured)
	defer srv.Close()

	e := newTestEmbedder(t, srv.URL, 4, time.Second)

	_, err := e.EmbedPassages(context.Background(), []string{"a passage"})
	require.NoError(t, err)
	assert.Equal(t, []string{"passage: a passage"}, captured[0])
}

func TestEmbed_EmptyBatch(t *testing.T) {
	e := newTestEmbedder(t, "http://localhost:1", 4, time.Second)
	_, err := e.EmbedQueries(context.Background(), nil)
	assert.ErrorIs(t, err, ai.ErrEmptyBatch)
}

func TestEmbed_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	e := newTestEmbedder(t, srv.URL, 4, time.Second)
	_, err := e.EmbedQueries(context.Background(), []string{"x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrDependency)
	assert.Contains(t, err.Error(), "503")
}

func TestEmbed_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	e := newTestEmbedder(t, srv.URL, 4, 20*time.Millisecond)
	_, err := e.EmbedQueries(context.Background(), []string{"x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ai.ErrTimeout)
	assert.NotErrorIs(t, err, core.ErrDependency)
}

func TestEmbed_DimensionMismatch(t *testing.T) {
	srv := vectorServer(t, 3, nil)
	defer srv.Close()

	e := newTestEmbedder(t, srv.URL, 4, time.Second)
	_, err := e.EmbedQueries(context.Background(), []string{"x"})
	assert.ErrorIs(t, err, core.ErrDimensionMismatch)
}

func TestEmbed_CountMismatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([][]float32{{1, 2, 3, 4}})
	}))
	defer srv.Close()

	e := newTestEmbedder(t, srv.URL, 4, time.Second)
	_, err := e.EmbedQueries(context.Background(), []string{"x", "y"})
	assert.ErrorIs(t, err, core.ErrDependency)
}
