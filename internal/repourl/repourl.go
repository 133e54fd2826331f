// Package repourl extracts repository coordinates from hosting URLs.
package repourl

import (
	"errors"
	"net/url"
	"strings"

	"github.com/clintrovert/readmeforge/pkg/types"
)

// ErrInvalidURL is returned when a URL's path does not contain at least an
// owner and a repository segment.
var ErrInvalidURL = errors.New("invalid repository URL: expected owner and repository in path")

// Parse extracts the owner/repository pair from a repository URL. The first
// two non-empty path segments become the identifier; anything after them
// (subpaths, tree refs) is ignored. Parse has no side effects and does not
// verify the host.
func Parse(rawURL string) (types.RepoID, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return types.RepoID{}, ErrInvalidURL
	}

	segments := make([]string, 0, 2)
	for _, part := range strings.Split(u.Path, "/") {
		if part == "" {
			continue
		}
		segments = append(segments, part)
		if len(segments) == 2 {
			break
		}
	}
	if len(segments) < 2 {
		return types.RepoID{}, ErrInvalidURL
	}

	return types.RepoID{Owner: segments[0], Name: segments[1]}, nil
}
