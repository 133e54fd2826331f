// Package github wraps the hosting API used to sample repository contents.
package github

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gofri/go-github-ratelimit/v2/github_ratelimit"
	"github.com/google/go-github/v57/github"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/clintrovert/readmeforge/pkg/types"
)

// Branch references tried for the recursive tree fetch. The secondary is
// attempted exactly once when the primary fails; there are no further
// retries anywhere in the client.
const (
	primaryBranch   = "main"
	secondaryBranch = "master"
)

// FetchError reports a non-success response from the hosting API.
type FetchError struct {
	Op     string
	Status int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch %s: hosting API returned status %d", e.Op, e.Status)
}

// Client wraps GitHub API operations
type Client struct {
	api    *github.Client
	logger *zap.Logger
}

// NewClient creates a new GitHub client. The transport stack is the
// secondary-rate-limit middleware under go-github, with an oauth2 static
// token transport on top when a token is configured. Anonymous access works
// but is subject to much lower rate limits.
func NewClient(accessToken string, timeout time.Duration, logger *zap.Logger) *Client {
	httpClient := github_ratelimit.NewClient(nil)
	if accessToken != "" {
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, httpClient)
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: accessToken},
		)
		httpClient = oauth2.NewClient(ctx, ts)
	}
	httpClient.Timeout = timeout

	return &Client{
		api:    github.NewClient(httpClient),
		logger: logger,
	}
}

// NewClientWithBaseURL points the client at an alternate API root, letting
// tests inject an httptest server.
func NewClientWithBaseURL(baseURL string, logger *zap.Logger) (*Client, error) {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	api := github.NewClient(nil)
	api.BaseURL = u

	return &Client{api: api, logger: logger}, nil
}

// FetchMetadata retrieves the repository metadata snapshot.
func (c *Client) FetchMetadata(ctx context.Context, id types.RepoID) (*types.RepoMetadata, error) {
	repo, resp, err := c.api.Repositories.Get(ctx, id.Owner, id.Name)
	if err != nil {
		if resp != nil {
			return nil, &FetchError{Op: "repository metadata", Status: resp.StatusCode}
		}
		return nil, fmt.Errorf("failed to fetch repository metadata: %w", err)
	}

	meta := &types.RepoMetadata{
		Name:        repo.GetName(),
		Description: repo.GetDescription(),
		Language:    repo.GetLanguage(),
		Stars:       repo.GetStargazersCount(),
		Forks:       repo.GetForksCount(),
		License:     repo.GetLicense().GetName(),
	}

	c.logger.Info("fetched repository metadata",
		zap.String("repo", id.String()),
		zap.Int("stars", meta.Stars),
		zap.Int("forks", meta.Forks),
	)

	return meta, nil
}

// FetchTree retrieves the recursive file tree, trying the primary branch
// first and falling back to the secondary once.
func (c *Client) FetchTree(ctx context.Context, id types.RepoID) ([]types.TreeEntry, error) {
	entries, err := c.fetchTreeAt(ctx, id, primaryBranch)
	if err == nil {
		return entries, nil
	}

	c.logger.Debug("primary branch tree fetch failed, trying secondary",
		zap.String("repo", id.String()),
		zap.String("primary", primaryBranch),
		zap.Error(err),
	)

	entries, err = c.fetchTreeAt(ctx, id, secondaryBranch)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *Client) fetchTreeAt(ctx context.Context, id types.RepoID, ref string) ([]types.TreeEntry, error) {
	tree, resp, err := c.api.Git.GetTree(ctx, id.Owner, id.Name, ref, true)
	if err != nil {
		if resp != nil {
			return nil, &FetchError{Op: "repository tree", Status: resp.StatusCode}
		}
		return nil, fmt.Errorf("failed to fetch tree at %s: %w", ref, err)
	}

	entries := make([]types.TreeEntry, 0, len(tree.Entries))
	for _, e := range tree.Entries {
		entries = append(entries, types.TreeEntry{
			Path: e.GetPath(),
			Kind: e.GetType(),
		})
	}

	c.logger.Info("fetched repository tree",
		zap.String("repo", id.String()),
		zap.String("ref", ref),
		zap.Int("entries", len(entries)),
	)

	return entries, nil
}

// FetchFileContent returns the decoded content of a single file, or ok=false
// when the file is missing or its content cannot be retrieved. Invalid byte
// sequences in the decoded text are replaced rather than failing the call.
func (c *Client) FetchFileContent(ctx context.Context, id types.RepoID, path string) (string, bool) {
	file, _, resp, err := c.api.Repositories.GetContents(ctx, id.Owner, id.Name, path, nil)
	if err != nil || file == nil {
		status := 0
		if resp != nil {
			status = resp.StatusCode
		}
		c.logger.Debug("file content unavailable",
			zap.String("repo", id.String()),
			zap.String("path", path),
			zap.Int("status", status),
		)
		return "", false
	}

	content, err := file.GetContent()
	if err != nil {
		c.logger.Debug("file content could not be decoded",
			zap.String("repo", id.String()),
			zap.String("path", path),
			zap.Error(err),
		)
		return "", false
	}

	return strings.ToValidUTF8(content, "�"), true
}
