package docfx

// Kind classifies a documentation item. The upstream extractor emits it as a
// free-form string in the "type" field; unknown values carry through unchanged
// and simply never match the known constants.
type Kind string

const (
	KindNamespace Kind = "Namespace"
	KindClass     Kind = "Class"
	KindInterface Kind = "Interface"
	KindStruct    Kind = "Struct"
	KindEnum      Kind = "Enum"
	KindDelegate  Kind = "Delegate"
	KindMethod    Kind = "Method"
	KindProperty  Kind = "Property"
	KindField     Kind = "Field"
	KindEvent     Kind = "Event"
	KindOther     Kind = "Other"
)

// Known reports whether k is one of the kinds the generator recognizes.
func (k Kind) Known() bool {
	switch k {
	case KindNamespace, KindClass, KindInterface, KindStruct, KindEnum,
		KindDelegate, KindMethod, KindProperty, KindField, KindEvent:
		return true
	}
	return false
}

// IsType reports whether the kind gets its own rendered page and counts
// toward the namespace grouping threshold.
func (k Kind) IsType() bool {
	switch k {
	case KindClass, KindInterface, KindStruct, KindEnum, KindDelegate:
		return true
	}
	return false
}

// Dir returns the output subdirectory name for a grouped type kind.
// Calling Dir on a non-type kind is a programming error.
func (k Kind) Dir() string {
	switch k {
	case KindClass:
		return "Classes"
	case KindStruct:
		return "Structs"
	case KindInterface:
		return "Interfaces"
	case KindEnum:
		return "Enums"
	case KindDelegate:
		return "Delegates"
	default:
		panic("docfx: no directory for kind " + string(k))
	}
}

// Remote identifies the repository a source file came from.
type Remote struct {
	Path   string `yaml:"path"`
	Branch string `yaml:"branch"`
	Repo   string `yaml:"repo"`
}

// Source locates an item's declaration in source code.
type Source struct {
	Remote    *Remote `yaml:"remote"`
	ID        string  `yaml:"id"`
	Path      string  `yaml:"path"`
	StartLine int     `yaml:"startLine"`
}

type Parameter struct {
	ID          string `yaml:"id"`
	Type        string `yaml:"type"`
	Description string `yaml:"description"`
}

type TypeParameter struct {
	ID          string `yaml:"id"`
	Description string `yaml:"description"`
}

type SyntaxReturn struct {
	Type        string `yaml:"type"`
	Description string `yaml:"description"`
}

// Syntax holds an item's declaration block and signature details.
type Syntax struct {
	Content        string          `yaml:"content"`
	ContentVB      string          `yaml:"content.vb"`
	Parameters     []Parameter     `yaml:"parameters"`
	TypeParameters []TypeParameter `yaml:"typeParameters"`
	Return         *SyntaxReturn   `yaml:"return"`
}

type ThrowsException struct {
	Type        string `yaml:"type"`
	CommentID   string `yaml:"commentId"`
	Description string `yaml:"description"`
}

// Item is a single documentation record: a namespace, a type, or a member.
// Items are immutable once loaded; only certain field groups are meaningful
// for certain kinds (Syntax for members, Inheritance for classes, ...).
type Item struct {
	UID              string            `yaml:"uid"`
	CommentID        string            `yaml:"commentId"`
	ID               string            `yaml:"id"`
	Parent           string            `yaml:"parent"`
	Children         []string          `yaml:"children"`
	Langs            []string          `yaml:"langs"`
	Definition       string            `yaml:"definition"`
	Name             string            `yaml:"name"`
	NameWithType     string            `yaml:"nameWithType"`
	FullName         string            `yaml:"fullName"`
	Kind             Kind              `yaml:"type"`
	Source           *Source           `yaml:"source"`
	Assemblies       []string          `yaml:"assemblies"`
	Namespace        string            `yaml:"namespace"`
	Summary          string            `yaml:"summary"`
	Syntax           *Syntax           `yaml:"syntax"`
	Inheritance      []string          `yaml:"inheritance"`
	DerivedClasses   []string          `yaml:"derivedClasses"`
	Implements       []string          `yaml:"implements"`
	ExtensionMethods []string          `yaml:"extensionMethods"`
	Exceptions       []ThrowsException `yaml:"exceptions"`
}

// File is the top-level shape of one item document.
type File struct {
	Items []Item `yaml:"items"`
}
