// Package readme runs the selection-and-synthesis pipeline and normalizes
// the generated document.
package readme

import (
	"context"

	"go.uber.org/zap"

	"github.com/clintrovert/readmeforge/internal/generator"
	"github.com/clintrovert/readmeforge/internal/prompt"
	"github.com/clintrovert/readmeforge/internal/repourl"
	"github.com/clintrovert/readmeforge/pkg/types"
)

// RepoClient is the hosting-API surface the pipeline depends on.
type RepoClient interface {
	FetchMetadata(ctx context.Context, id types.RepoID) (*types.RepoMetadata, error)
	FetchTree(ctx context.Context, id types.RepoID) ([]types.TreeEntry, error)
}

// FileSelector picks the important files out of a repository tree.
type FileSelector interface {
	SelectImportant(ctx context.Context, id types.RepoID, tree []types.TreeEntry) []types.FileExcerpt
}

// Result is the pipeline's terminal artifact for one request.
type Result struct {
	Readme   string
	Metadata *types.RepoMetadata
}

// Service coordinates URL parsing, repository sampling, prompt construction,
// generation and normalization. All state is request-scoped; a Service is
// safe for concurrent use.
type Service struct {
	repos     RepoClient
	selector  FileSelector
	generator generator.Generator
	logger    *zap.Logger
}

// NewService creates a new pipeline service.
func NewService(repos RepoClient, selector FileSelector, gen generator.Generator, logger *zap.Logger) *Service {
	return &Service{
		repos:     repos,
		selector:  selector,
		generator: gen,
		logger:    logger,
	}
}

// GenerateForURL runs the full pipeline for one repository URL. Remote calls
// happen strictly in sequence: metadata, tree, per-file contents, generation.
func (s *Service) GenerateForURL(ctx context.Context, repoURL string) (*Result, error) {
	id, err := repourl.Parse(repoURL)
	if err != nil {
		return nil, err
	}

	meta, err := s.repos.FetchMetadata(ctx, id)
	if err != nil {
		return nil, err
	}

	tree, err := s.repos.FetchTree(ctx, id)
	if err != nil {
		return nil, err
	}

	files := s.selector.SelectImportant(ctx, id, tree)

	raw, err := s.generator.Generate(ctx, prompt.Build(meta, files))
	if err != nil {
		return nil, err
	}

	result := Normalize(raw)

	s.logger.Info("generated readme",
		zap.String("repo", id.String()),
		zap.Int("files", len(files)),
		zap.Int("chars", len(result)),
	)

	return &Result{Readme: result, Metadata: meta}, nil
}
