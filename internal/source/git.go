package source

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/bakito/rblxapi2cpp/internal/document"
)

const (
	DefaultRepository = "https://github.com/Roblox/creator-docs"
	DefaultRef        = "main"
	DefaultPath       = "content/en-us/reference/engine"
)

// GitSource reads documents from a shallow clone of the creator-docs repository.
type GitSource struct {
	// URL of the repository.
	URL string
	// Ref is the branch to clone.
	Ref string
	// Path of the engine reference within the repository.
	Path string
}

// NewGitSource returns a source for the repository, empty values fall back to the defaults.
func NewGitSource(repository, ref, path string) *GitSource {
	s := &GitSource{URL: repository, Ref: ref, Path: path}
	if s.URL == "" {
		s.URL = DefaultRepository
	}
	if s.Ref == "" {
		s.Ref = DefaultRef
	}
	if s.Path == "" {
		s.Path = DefaultPath
	}
	return s
}

// Get clones the repository into a temporary directory and reads the document from it.
func (s *GitSource) Get(ctx context.Context, name string, kind document.Kind) ([]byte, error) {
	tmp, err := os.MkdirTemp("", "rblxapi2cpp")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(tmp) }()

	slog.With("repository", s.URL, "ref", s.Ref, "tmp", tmp).InfoContext(ctx, "Cloning repository")

	var out bytes.Buffer
	_, err = git.PlainCloneContext(ctx, tmp, false, &git.CloneOptions{
		URL:           s.URL,
		ReferenceName: plumbing.NewBranchReferenceName(s.Ref),
		SingleBranch:  true,
		Depth:         1,
		Progress:      &out,
	})
	slog.DebugContext(ctx, "Git clone output", "output", out.String())
	if err != nil {
		return nil, fmt.Errorf("failed to clone repository: %w", err)
	}

	return os.ReadFile(s.file(tmp, name, kind))
}

func (s *GitSource) file(root, name string, kind document.Kind) string {
	return filepath.Join(root, filepath.FromSlash(s.Path), kind.Namespace(), name+".yaml")
}
