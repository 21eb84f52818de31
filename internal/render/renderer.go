package render

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"text/template"
)

//go:embed class.hpp.tpl datatype.hpp.tpl
var templates embed.FS

// Renderer executes the header templates.
type Renderer struct {
	tpl *template.Template
}

// NewRenderer parses the header templates. The built-in templates are used if templateDir is empty,
// otherwise class.hpp.tpl and datatype.hpp.tpl are loaded from templateDir.
func NewRenderer(templateDir string) (*Renderer, error) {
	var fsys fs.FS = templates
	if templateDir != "" {
		fsys = os.DirFS(templateDir)
	}

	t, err := template.New("").
		Funcs(funcs).
		Option("missingkey=error").
		ParseFS(fsys, ClassTemplate, DatatypeTemplate)
	if err != nil {
		return nil, fmt.Errorf("error parsing templates: %w", err)
	}
	return &Renderer{tpl: t}, nil
}

// Render executes the template selected by ctx.
func (r *Renderer) Render(ctx Context) (string, error) {
	var sb strings.Builder
	if err := r.tpl.ExecuteTemplate(&sb, ctx.Template, ctx.Data); err != nil {
		return "", fmt.Errorf("error executing template %s: %w", ctx.Template, err)
	}
	return sb.String(), nil
}
