// Package restline compiles declarative HTTP interface descriptions into
// immutable request templates.
//
// A service interface is declared once as data: each method carries a
// request line ("GET /users/{id}?q={q}"), optional header lines, an
// optional literal or templated body, and a binding for every parameter
// position. Compiling a declaration produces a MethodMetadata owning a
// RequestTemplate; at call time the template is expanded with concrete
// argument values into the pieces of a wire request. Compilation happens
// once per method and the result is shared read-only across calls.
package restline

import (
	"fmt"

	"github.com/toyz/restline/internal/placeholder"
	"github.com/toyz/restline/internal/reqline"
)

// Contract interprets one declared method into request-building
// metadata. Implementations must be stateless across methods: the only
// cross-method concern, duplicate config keys, belongs to the Registry.
type Contract interface {
	// Compile produces the metadata for one method of iface, or a
	// CompileError describing the defect in the declaration. It never
	// returns partial metadata.
	Compile(iface *InterfaceDecl, method *MethodDecl) (*MethodMetadata, error)
}

// paramNameResolver extracts a binding name from one annotation source
// of a parameter declaration, or "" when that source is absent.
type paramNameResolver func(ParamDecl) string

// defaultContract implements the standard declaration rules.
type defaultContract struct {
	// resolvers are tried in order; the first non-empty name wins. A
	// later source may add the same name again (the alias-coexistence
	// case), never a different one.
	resolvers []paramNameResolver
}

// NewContract returns the default Contract, resolving parameter names
// from the primary binding first and the deprecated alias second.
func NewContract() Contract {
	return &defaultContract{
		resolvers: []paramNameResolver{
			func(p ParamDecl) string { return p.Name },
			func(p ParamDecl) string { return p.Alias },
		},
	}
}

func (c *defaultContract) Compile(iface *InterfaceDecl, method *MethodDecl) (*MethodMetadata, error) {
	var ifaceName string
	var ifaceHeaders []string
	if iface != nil {
		ifaceName = iface.Name
		ifaceHeaders = iface.Headers
	}
	key := ConfigKey(ifaceName, method)

	if err := declValidator.Struct(method); err != nil {
		return nil, &RequestLineError{
			Key:  key,
			Line: method.RequestLine,
			Msg:  fmt.Sprintf("incomplete declaration: %v", err),
		}
	}

	line, err := reqline.Parse(method.RequestLine)
	if err != nil {
		return nil, &RequestLineError{Key: key, Line: method.RequestLine, Msg: err.Error()}
	}

	builder := NewTemplateBuilder().
		Method(line.Verb).
		URL(line.Path)

	for _, q := range line.Query {
		if q.HasValue {
			builder.AddQuery(q.Key, q.Value)
		} else {
			builder.AddQueryFlag(q.Key)
		}
	}

	// Interface-level headers come first, method-level ones are appended
	// after them. Duplicates accumulate; nothing overrides.
	for _, raw := range append(append([]string{}, ifaceHeaders...), method.Headers...) {
		name, value, err := reqline.ParseHeader(raw)
		if err != nil {
			return nil, &HeaderError{Key: key, Header: raw, Msg: err.Error()}
		}
		builder.AddHeader(name, value)
	}

	// A declared body wins over any body-supplying parameter. A body
	// containing placeholders becomes a template; resolution waits for
	// call-time arguments.
	if method.Body != "" {
		if placeholder.Has(method.Body) {
			builder.SetBodyTemplate(method.Body)
		} else {
			builder.SetBody([]byte(method.Body))
		}
	}

	md := &MethodMetadata{
		configKey:   key,
		indexToName: make(map[int][]string),
		bodyIndex:   -1,
		urlIndex:    -1,
	}

	for i, p := range method.Params {
		if p.URL {
			if md.urlIndex >= 0 {
				return nil, &URLOverrideError{Key: key, Position: i}
			}
			md.urlIndex = i
			continue
		}

		names := c.resolveNames(p)
		if len(names) > 0 {
			md.indexToName[i] = names
			name := names[0]
			if !builder.referencesName(name) && !contains(md.formParams, name) {
				md.formParams = append(md.formParams, name)
			}
			continue
		}

		// Unbound position: body candidate.
		if md.bodyIndex >= 0 {
			return nil, &BodyError{Key: key, Count: 2}
		}
		if !builder.hasBody() {
			md.bodyIndex = i
			md.bodyType = p.Type
		}
	}

	// Every placeholder anywhere in the template must be bound; an
	// unknown name is a declaration defect, never a call-time surprise.
	bound := make(map[string]bool)
	for _, names := range md.indexToName {
		for _, name := range names {
			bound[name] = true
		}
	}
	for _, name := range builder.placeholderNames() {
		if !bound[name] {
			return nil, &PlaceholderError{Key: key, Name: name}
		}
	}

	md.template = builder.Build()
	return md, nil
}

// resolveNames collects the binding names of one parameter position. The
// first source with a name decides it; a later source may only repeat
// the identical name, which records it once per source.
func (c *defaultContract) resolveNames(p ParamDecl) []string {
	var names []string
	for _, resolve := range c.resolvers {
		name := resolve(p)
		if name == "" {
			continue
		}
		if len(names) == 0 || names[0] == name {
			names = append(names, name)
		}
	}
	return names
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
