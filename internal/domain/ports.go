package domain

// DocumentLoader parses raw dialog text into a ConfigNode tree.
// A malformed document yields a *ParseError and no tree.
type DocumentLoader interface {
	Load(source string, data []byte) (*ConfigNode, error)
}

// ConfigLoader reads tool configuration for a working directory.
type ConfigLoader interface {
	Load(dir string) (LintConfig, error)
}

// GitInfo exposes repository metadata for history entries.
type GitInfo interface {
	IsGitRepo(dir string) bool
	CommitHash(dir string) (string, error)
	IsDirty(dir string) (bool, error)
}

// RunHistory persists past lint runs.
type RunHistory interface {
	Save(dir string, entry RunEntry) error
	Load(dir string) ([]RunEntry, error)
}

// RunEntry is one recorded lint run. Dirty marks runs against a working
// tree with uncommitted changes, where the commit hash alone does not
// describe the linted files.
type RunEntry struct {
	Timestamp  string `json:"timestamp"`
	CommitHash string `json:"commit_hash,omitempty"`
	Dirty      bool   `json:"dirty,omitempty"`
	Source     string `json:"source"`
	Status     string `json:"status"`
	Errors     int    `json:"errors"`
	Warnings   int    `json:"warnings"`
}
