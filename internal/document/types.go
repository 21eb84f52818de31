package document

// Kind is the shape of a reference document.
type Kind string

const (
	Class    Kind = "class"
	Datatype Kind = "datatype"
)

// KindOf maps the datatype switch of the command line to a Kind.
func KindOf(datatype bool) Kind {
	if datatype {
		return Datatype
	}
	return Class
}

// Namespace returns the path segment the documents of this kind are published under.
func (k Kind) Namespace() string {
	if k == Datatype {
		return "datatypes"
	}
	return "classes"
}

// Document represents a fetched class or datatype reference page.
type Document struct {
	Name         string
	Kind         Kind
	Summary      string
	Inherits     []string
	Properties   []Property
	Constructors []Constructor
}

// Property represents a typed member of a class or datatype.
type Property struct {
	Name               string   `yaml:"name"`
	Type               string   `yaml:"type"`
	Summary            string   `yaml:"summary,omitempty"`
	Tags               []string `yaml:"tags,omitempty"`
	DeprecationMessage string   `yaml:"deprecation_message,omitempty"`
}

// Constructor represents a datatype constructor. Only templates read its fields.
type Constructor struct {
	Name       string      `yaml:"name"`
	Summary    string      `yaml:"summary,omitempty"`
	Parameters []Parameter `yaml:"parameters,omitempty"`
}

type Parameter struct {
	Name    string `yaml:"name"`
	Type    string `yaml:"type"`
	Default any    `yaml:"default,omitempty"`
	Summary string `yaml:"summary,omitempty"`
}

// rawDocument mirrors the published file. Pointer and nil-able fields
// distinguish a missing key from an empty value. Type is kept loose, every
// value other than "datatype" denotes a class.
type rawDocument struct {
	Name         *string        `yaml:"name"`
	Type         any            `yaml:"type"`
	Summary      string         `yaml:"summary"`
	Inherits     []string       `yaml:"inherits"`
	Properties   *[]Property    `yaml:"properties"`
	Constructors *[]Constructor `yaml:"constructors"`
}
