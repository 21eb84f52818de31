package source

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/bakito/rblxapi2cpp/internal/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGitSource(t *testing.T) {
	s := NewGitSource("", "", "")
	assert.Equal(t, DefaultRepository, s.URL)
	assert.Equal(t, DefaultRef, s.Ref)
	assert.Equal(t, DefaultPath, s.Path)

	s = NewGitSource("https://example.com/docs.git", "release", "reference")
	assert.Equal(t, "https://example.com/docs.git", s.URL)
	assert.Equal(t, "release", s.Ref)
	assert.Equal(t, "reference", s.Path)
}

func TestGitSource_file(t *testing.T) {
	s := NewGitSource("", "", "")

	assert.Equal(t,
		filepath.Join("root", "content", "en-us", "reference", "engine", "classes", "Part.yaml"),
		s.file("root", "Part", document.Class))
	assert.Equal(t,
		filepath.Join("root", "content", "en-us", "reference", "engine", "datatypes", "CFrame.yaml"),
		s.file("root", "CFrame", document.Datatype))
}

func TestGitSource_GetCloneError(t *testing.T) {
	s := NewGitSource(filepath.Join(t.TempDir(), "missing"), "main", "")

	_, err := s.Get(context.Background(), "Part", document.Class)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to clone repository")
}
