// Package source retrieves reference documents and stores them for header generation.
package source

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/bakito/rblxapi2cpp/internal/document"
)

// Source returns the raw document of a class or datatype.
type Source interface {
	Get(ctx context.Context, name string, kind document.Kind) ([]byte, error)
}

// Request describes a single fetch.
type Request struct {
	// ClassName is the class or datatype to fetch.
	ClassName string
	// Dir is the directory the document is written to.
	Dir string
	// Name overrides the file name of the document (without extension).
	Name string
	Kind document.Kind
}

// FileName returns the name of the stored document.
func (r Request) FileName() string {
	name := r.ClassName
	if r.Name != "" {
		name = r.Name
	}
	return name + ".yaml"
}

// Fetch retrieves the requested document from src and writes it unmodified
// to <dir>/<name>.yaml. The written path is returned.
func Fetch(ctx context.Context, src Source, req Request) (string, error) {
	if req.ClassName == "" {
		return "", errors.New("class name must not be empty")
	}
	if err := document.ValidateFileName(req.ClassName); err != nil {
		return "", fmt.Errorf("invalid class name: %w", err)
	}
	if err := document.ValidateFileName(req.Name); err != nil {
		return "", fmt.Errorf("invalid name: %w", err)
	}

	data, err := src.Get(ctx, req.ClassName, req.Kind)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s %s: %w", req.Kind, req.ClassName, err)
	}

	if err := os.MkdirAll(req.Dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create target dir %s: %w", req.Dir, err)
	}

	path := filepath.Join(req.Dir, req.FileName())
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write document: %w", err)
	}

	slog.With("class", req.ClassName, "kind", req.Kind, "file", path, "bytes", len(data)).
		InfoContext(ctx, "Successfully fetched document")
	return path, nil
}
