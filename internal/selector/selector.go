// Package selector decides which repository files are worth sending to the
// generative model.
package selector

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/clintrovert/readmeforge/pkg/types"
)

// ContentFetcher supplies decoded file contents for selected tree paths.
type ContentFetcher interface {
	FetchFileContent(ctx context.Context, id types.RepoID, path string) (string, bool)
}

const (
	maxCodeFiles   = 5
	codeExcerptCap = 2000
)

// Paths containing any of these markers are never selected, even when they
// also match a manifest name or code extension.
var excludedMarkers = []string{"node_modules", ".git", "dist", "build", "vendor"}

// Manifest filenames are matched as substrings of the full path, so nested
// manifests count too. Manifests are fetched whole and are not capped.
var manifestNames = []string{
	"package.json", "requirements.txt", "Gemfile", "composer.json",
	"pom.xml", "build.gradle", "Cargo.toml", "go.mod",
}

var codeExtensions = []string{".py", ".js", ".java", ".cpp", ".c", ".go", ".rs", ".rb", ".php"}

// Selector applies the importance heuristic to a repository tree.
type Selector struct {
	fetcher ContentFetcher
	logger  *zap.Logger
}

// New creates a new Selector.
func New(fetcher ContentFetcher, logger *zap.Logger) *Selector {
	return &Selector{
		fetcher: fetcher,
		logger:  logger,
	}
}

// SelectImportant walks the tree in order, keeps every package manifest in
// full and the first five code files truncated to 2000 characters. Code
// files past the first five are never fetched; that bounds request volume
// at the cost of coverage. Individual fetch failures drop the file and are
// counted, but the selection itself never fails.
func (s *Selector) SelectImportant(ctx context.Context, id types.RepoID, tree []types.TreeEntry) []types.FileExcerpt {
	var selected []types.FileExcerpt
	var codePaths []string
	seen := make(map[string]bool)
	failures := 0

	for _, entry := range tree {
		if entry.Kind != "blob" || isExcluded(entry.Path) || seen[entry.Path] {
			continue
		}
		switch {
		case isManifest(entry.Path):
			content, ok := s.fetcher.FetchFileContent(ctx, id, entry.Path)
			if !ok {
				failures++
				continue
			}
			seen[entry.Path] = true
			selected = append(selected, types.FileExcerpt{Path: entry.Path, Content: content})
		case isCode(entry.Path):
			seen[entry.Path] = true
			codePaths = append(codePaths, entry.Path)
		}
	}

	if len(codePaths) > maxCodeFiles {
		codePaths = codePaths[:maxCodeFiles]
	}
	for _, path := range codePaths {
		content, ok := s.fetcher.FetchFileContent(ctx, id, path)
		if !ok {
			failures++
			continue
		}
		if len(content) > codeExcerptCap {
			content = content[:codeExcerptCap]
		}
		selected = append(selected, types.FileExcerpt{Path: path, Content: content})
	}

	if failures > 0 {
		s.logger.Warn("some file contents could not be fetched",
			zap.String("repo", id.String()),
			zap.Int("failed", failures),
			zap.Int("selected", len(selected)),
		)
	}

	return selected
}

func isExcluded(path string) bool {
	lower := strings.ToLower(path)
	for _, marker := range excludedMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

func isManifest(path string) bool {
	for _, name := range manifestNames {
		if strings.Contains(path, name) {
			return true
		}
	}
	return false
}

func isCode(path string) bool {
	for _, ext := range codeExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}
