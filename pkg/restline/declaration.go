package restline

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// InterfaceDecl describes one declared service interface: a name, the
// header lines shared by every method, and the methods themselves. It is
// the explicit stand-in for annotated-interface reflection: callers build
// one at registration time and hand it to a Contract or Registry.
type InterfaceDecl struct {
	// Name of the declared interface, used as the first half of every
	// method's config key.
	Name string `validate:"required"`

	// Headers holds interface-level "Name: value" lines applied to every
	// method, before (not instead of) the method's own headers.
	Headers []string

	// Methods in declaration order.
	Methods []MethodDecl `validate:"dive"`
}

// MethodDecl describes one declared method: its request line, headers,
// optional raw body, and the binding of each parameter position.
type MethodDecl struct {
	// Name of the declared method.
	Name string `validate:"required"`

	// RequestLine is the "<VERB> <path>[?<query>]" declaration. The path
	// and query may contain {name} placeholders.
	RequestLine string `validate:"required"`

	// Headers holds method-level "Name: value" lines, appended after the
	// interface-level ones. Values may contain {name} placeholders.
	Headers []string

	// Body is an optional literal request body. If it contains {name}
	// placeholders it compiles to a body template instead of literal
	// bytes. When set, no parameter is treated as the body.
	Body string

	// Params describes every parameter position of the declared
	// signature, in order.
	Params []ParamDecl
}

// ParamDecl describes the binding of a single parameter position.
//
// Exactly one of three shapes applies: a named binding (Name and/or
// Alias set), a URL override (URL set), or an unbound position (nothing
// set) which makes the parameter a body candidate.
type ParamDecl struct {
	// Name is the primary binding name, associating this position with a
	// {Name} placeholder or a form field.
	Name string

	// Alias is the deprecated binding annotation kept for declarations
	// that have not migrated yet. When both Alias and Name are set to
	// the same value the position carries the name once per source,
	// matching the behavior of the dual annotations it replaces.
	Alias string

	// URL marks this position as supplying a full override base URI at
	// call time. A URL parameter carries no binding name.
	URL bool

	// Type is the declared static type of the parameter, e.g.
	// "[]string". It is preserved as the body type for downstream
	// serialization and appears in the config key.
	Type string
}

// declValidator checks the structural `validate` tags on declarations
// before any micro-syntax parsing happens.
var declValidator = validator.New()

// ConfigKey builds the stable identifier of a method: declaring
// interface, method name, and the declared parameter types. Two methods
// of one interface never share a config key unless their declarations
// are truly identical in name and signature.
func ConfigKey(ifaceName string, m *MethodDecl) string {
	types := make([]string, len(m.Params))
	for i, p := range m.Params {
		types[i] = p.Type
	}
	return fmt.Sprintf("%s#%s(%s)", ifaceName, m.Name, strings.Join(types, ","))
}
