package github_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/clintrovert/readmeforge/internal/github"
	"github.com/clintrovert/readmeforge/pkg/types"
)

func newTestClient(t *testing.T, mux *http.ServeMux) *github.Client {
	t.Helper()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client, err := github.NewClientWithBaseURL(server.URL, zap.NewNop())
	require.NoError(t, err)
	return client
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestFetchMetadata(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/octo/demo", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{
			"name":             "demo",
			"description":      "a demo repository",
			"language":         "Go",
			"stargazers_count": 3,
			"forks_count":      1,
			"license":          map[string]any{"name": "MIT License"},
		})
	})
	client := newTestClient(t, mux)

	meta, err := client.FetchMetadata(context.Background(), types.RepoID{Owner: "octo", Name: "demo"})
	require.NoError(t, err)
	assert.Equal(t, &types.RepoMetadata{
		Name:        "demo",
		Description: "a demo repository",
		Language:    "Go",
		Stars:       3,
		Forks:       1,
		License:     "MIT License",
	}, meta)
}

func TestFetchMetadataNotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/octo/demo", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	client := newTestClient(t, mux)

	_, err := client.FetchMetadata(context.Background(), types.RepoID{Owner: "octo", Name: "demo"})
	require.Error(t, err)

	var fetchErr *github.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusNotFound, fetchErr.Status)
}

func TestFetchTreePrimaryBranch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/octo/demo/git/trees/main", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("recursive"))
		writeJSON(t, w, map[string]any{
			"tree": []map[string]any{
				{"path": "main.go", "type": "blob"},
				{"path": "docs", "type": "tree"},
			},
		})
	})
	client := newTestClient(t, mux)

	entries, err := client.FetchTree(context.Background(), types.RepoID{Owner: "octo", Name: "demo"})
	require.NoError(t, err)
	assert.Equal(t, []types.TreeEntry{
		{Path: "main.go", Kind: "blob"},
		{Path: "docs", Kind: "tree"},
	}, entries)
}

func TestFetchTreeFallsBackToSecondaryBranch(t *testing.T) {
	mainCalls := 0
	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/octo/demo/git/trees/main", func(w http.ResponseWriter, r *http.Request) {
		mainCalls++
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("GET /repos/octo/demo/git/trees/master", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{
			"tree": []map[string]any{
				{"path": "app.rb", "type": "blob"},
			},
		})
	})
	client := newTestClient(t, mux)

	entries, err := client.FetchTree(context.Background(), types.RepoID{Owner: "octo", Name: "demo"})
	require.NoError(t, err)
	assert.Equal(t, 1, mainCalls)
	assert.Equal(t, []types.TreeEntry{{Path: "app.rb", Kind: "blob"}}, entries)
}

func TestFetchTreeBothBranchesFail(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/octo/demo/git/trees/main", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("GET /repos/octo/demo/git/trees/master", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	})
	client := newTestClient(t, mux)

	_, err := client.FetchTree(context.Background(), types.RepoID{Owner: "octo", Name: "demo"})
	require.Error(t, err)

	var fetchErr *github.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusConflict, fetchErr.Status)
}

func TestFetchFileContent(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/octo/demo/contents/main.go", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{
			"type":     "file",
			"encoding": "base64",
			"path":     "main.go",
			"content":  base64.StdEncoding.EncodeToString([]byte("package main\n")),
		})
	})
	client := newTestClient(t, mux)

	content, ok := client.FetchFileContent(context.Background(), types.RepoID{Owner: "octo", Name: "demo"}, "main.go")
	require.True(t, ok)
	assert.Equal(t, "package main\n", content)
}

func TestFetchFileContentMissing(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/octo/demo/contents/gone.go", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	client := newTestClient(t, mux)

	_, ok := client.FetchFileContent(context.Background(), types.RepoID{Owner: "octo", Name: "demo"}, "gone.go")
	assert.False(t, ok)
}

func TestFetchFileContentReplacesInvalidUTF8(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/octo/demo/contents/blob.bin", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{
			"type":     "file",
			"encoding": "base64",
			"path":     "blob.bin",
			"content":  base64.StdEncoding.EncodeToString([]byte{'o', 'k', 0xff, 0xfe}),
		})
	})
	client := newTestClient(t, mux)

	content, ok := client.FetchFileContent(context.Background(), types.RepoID{Owner: "octo", Name: "demo"}, "blob.bin")
	require.True(t, ok)
	assert.Equal(t, "ok�", content)
}
