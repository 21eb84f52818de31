package render

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/bakito/rblxapi2cpp/internal/document"
)

// Request describes a single header generation.
type Request struct {
	// Input is the path of a fetched document.
	Input string
	// Dir is the directory the header is written to.
	Dir string
	// ClassName overrides the name of the document.
	ClassName string
	// Name overrides the file name of the header (without extension).
	Name string
}

// Generate renders the header for the requested document and returns the written path.
// Nothing is written if the document can not be loaded or rendered.
func (r *Renderer) Generate(ctx context.Context, req Request) (string, error) {
	if err := document.ValidateFileName(req.Name); err != nil {
		return "", fmt.Errorf("invalid header name: %w", err)
	}

	doc, err := document.Load(req.Input)
	if err != nil {
		return "", err
	}

	className, err := ResolveClassName(req.ClassName, doc)
	if err != nil {
		return "", fmt.Errorf("error resolving class name of %s: %w", req.Input, err)
	}

	rc, err := NewContext(doc, className)
	if err != nil {
		return "", err
	}

	content, err := r.Render(rc)
	if err != nil {
		return "", fmt.Errorf("error generating header content: %w", err)
	}

	f := outFile{
		name:       OutputPath(req.Dir, req.Name, req.Input),
		content:    content,
		successMsg: "Successfully generated C++ header",
		successArgs: []any{
			"class", className,
			"kind", doc.Kind,
			"properties", len(doc.Properties),
			"constructors", len(doc.Constructors),
		},
	}
	if err := writeFile(ctx, f); err != nil {
		return "", err
	}
	return f.name, nil
}

func writeFile(ctx context.Context, f outFile) error {
	dir := filepath.Dir(f.name)

	// Create the directory if it doesn't exist
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	if err := os.WriteFile(f.name, []byte(f.content), 0o644); err != nil {
		return fmt.Errorf("error writing output file: %w", err)
	}

	slog.With(f.successArgs...).With("file", f.name).InfoContext(ctx, f.successMsg)
	return nil
}

type outFile struct {
	name        string
	content     string
	successMsg  string
	successArgs []any
}
