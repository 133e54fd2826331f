package types

// RepoID identifies a GitHub repository by the first two path segments of
// its URL. Both fields are non-empty once parsed.
type RepoID struct {
	Owner string
	Name  string
}

func (id RepoID) String() string {
	return id.Owner + "/" + id.Name
}

// RepoMetadata is a read-only snapshot of repository metadata, fetched once
// per request. Optional fields are empty strings when the API omits them.
type RepoMetadata struct {
	Name        string
	Description string
	Language    string
	Stars       int
	Forks       int
	License     string
}

// TreeEntry is one entry of a recursive repository tree listing.
type TreeEntry struct {
	Path string
	Kind string // "blob" or "tree"
}

// FileExcerpt pairs a repository path with a capped excerpt of its content.
// A slice of excerpts preserves selection order, which determines prompt
// ordering downstream.
type FileExcerpt struct {
	Path    string
	Content string
}
