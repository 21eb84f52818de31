package render

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bakito/rblxapi2cpp/internal/document"
)

const (
	ClassTemplate    = "class.hpp.tpl"
	DatatypeTemplate = "datatype.hpp.tpl"
)

// ErrMissingClassName is returned when neither an explicit class name nor a document name is available.
var ErrMissingClassName = fmt.Errorf("missing class name: %w", document.ErrKeyNotFound)

// Context is the input of a single template execution.
type Context struct {
	Template string
	Data     map[string]any
}

// ResolveClassName returns the explicit name if set, otherwise the name of the document.
func ResolveClassName(override string, doc *document.Document) (string, error) {
	if override != "" {
		return override, nil
	}
	if doc.Name != "" {
		return doc.Name, nil
	}
	return "", ErrMissingClassName
}

// NewContext selects the template for the document kind and builds its data.
// The data keys are what the templates consume: classes get "prop",
// datatypes get "props" and "constrs".
func NewContext(doc *document.Document, className string) (Context, error) {
	if className == "" {
		return Context{}, errors.New("class name must not be empty")
	}

	if doc.Kind == document.Datatype {
		return Context{
			Template: DatatypeTemplate,
			Data: map[string]any{
				"classname": className,
				"constrs":   doc.Constructors,
				"props":     doc.Properties,
			},
		}, nil
	}

	return Context{
		Template: ClassTemplate,
		Data: map[string]any{
			"classname": className,
			"prop":      doc.Properties,
		},
	}, nil
}

// OutputPath returns the header path for the input document. The header is
// named after the input file unless a name is given.
func OutputPath(dir, name, input string) string {
	if name == "" {
		base := filepath.Base(input)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return filepath.Join(dir, name+".hpp")
}
