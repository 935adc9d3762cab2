package restline

import (
	"strconv"

	"github.com/toyz/restline/internal/placeholder"
)

// QueryValue is a single declared value of a query key. A flag-style
// entry ("...&flag&...") keeps Present false: the key appears on the
// wire with no "=value" part.
type QueryValue struct {
	Value   string
	Present bool
}

// Query is one query key with its accumulated values, in declaration
// order.
type Query struct {
	Key    string
	Values []QueryValue
}

// Header is one header name with its accumulated values, in declaration
// order.
type Header struct {
	Name   string
	Values []string
}

// TemplateBuilder accumulates the pieces of a request template during
// compilation. Build consumes the builder and produces the immutable
// RequestTemplate; using a builder after Build panics.
type TemplateBuilder struct {
	method       string
	url          string
	queryKeys    []string
	queries      map[string][]QueryValue
	headerNames  []string
	headers      map[string][]string
	body         []byte
	bodyTemplate string
	built        bool
}

// NewTemplateBuilder creates an empty builder.
func NewTemplateBuilder() *TemplateBuilder {
	return &TemplateBuilder{
		queries: make(map[string][]QueryValue),
		headers: make(map[string][]string),
	}
}

// Method sets the HTTP verb.
func (b *TemplateBuilder) Method(method string) *TemplateBuilder {
	b.mutable()
	b.method = method
	return b
}

// URL sets the path portion. The path must already be query-free; inline
// query strings are extracted before the builder is populated.
func (b *TemplateBuilder) URL(url string) *TemplateBuilder {
	b.mutable()
	b.url = url
	return b
}

// AddQuery appends a value to key, creating the key on first use. Key
// insertion order is preserved; duplicate keys accumulate values.
func (b *TemplateBuilder) AddQuery(key, value string) *TemplateBuilder {
	b.addQueryValue(key, QueryValue{Value: value, Present: true})
	return b
}

// AddQueryFlag appends a valueless entry to key, for flag-style query
// parameters declared without "=".
func (b *TemplateBuilder) AddQueryFlag(key string) *TemplateBuilder {
	b.addQueryValue(key, QueryValue{})
	return b
}

func (b *TemplateBuilder) addQueryValue(key string, v QueryValue) {
	b.mutable()
	if _, ok := b.queries[key]; !ok {
		b.queryKeys = append(b.queryKeys, key)
	}
	b.queries[key] = append(b.queries[key], v)
}

// AddHeader appends a value to the named header. A header declared
// multiple times accumulates values; nothing is overwritten.
func (b *TemplateBuilder) AddHeader(name, value string) *TemplateBuilder {
	b.mutable()
	if _, ok := b.headers[name]; !ok {
		b.headerNames = append(b.headerNames, name)
	}
	b.headers[name] = append(b.headers[name], value)
	return b
}

// SetBody installs a literal byte body and clears any body template.
// Content-Length is computed from it at Build time.
func (b *TemplateBuilder) SetBody(body []byte) *TemplateBuilder {
	b.mutable()
	b.body = body
	b.bodyTemplate = ""
	return b
}

// SetBodyTemplate installs a body string still containing {name}
// placeholders and clears any literal body. Templated bodies never carry
// a compile-time Content-Length.
func (b *TemplateBuilder) SetBodyTemplate(tmpl string) *TemplateBuilder {
	b.mutable()
	b.bodyTemplate = tmpl
	b.body = nil
	return b
}

// Build freezes the accumulated state into an immutable RequestTemplate
// and consumes the builder.
func (b *TemplateBuilder) Build() *RequestTemplate {
	b.mutable()
	b.built = true

	if b.body != nil {
		// Content-Length is knowable only for literal bodies, and it
		// replaces any declared value rather than accumulating.
		b.setHeader("Content-Length", strconv.Itoa(len(b.body)))
	}

	return &RequestTemplate{
		method:       b.method,
		url:          b.url,
		queryKeys:    b.queryKeys,
		queries:      b.queries,
		headerNames:  b.headerNames,
		headers:      b.headers,
		body:         b.body,
		bodyTemplate: b.bodyTemplate,
	}
}

func (b *TemplateBuilder) setHeader(name, value string) {
	if _, ok := b.headers[name]; !ok {
		b.headerNames = append(b.headerNames, name)
	}
	b.headers[name] = []string{value}
}

func (b *TemplateBuilder) mutable() {
	if b.built {
		panic("restline: TemplateBuilder used after Build")
	}
}

// hasBody reports whether a literal body or a body template is installed.
func (b *TemplateBuilder) hasBody() bool {
	return b.body != nil || b.bodyTemplate != ""
}

// referencesName reports whether name appears as a placeholder in the
// path, a query key or value, or a header value. The body template is
// deliberately excluded: a name used only there still counts as a form
// parameter.
func (b *TemplateBuilder) referencesName(name string) bool {
	for _, n := range b.requestPlaceholders() {
		if n == name {
			return true
		}
	}
	return false
}

// requestPlaceholders returns the placeholder names in the path, query
// keys and values, and header values, in order of first appearance.
func (b *TemplateBuilder) requestPlaceholders() []string {
	var names []string
	names = append(names, placeholder.Names(b.url)...)
	for _, key := range b.queryKeys {
		names = append(names, placeholder.Names(key)...)
		for _, v := range b.queries[key] {
			names = append(names, placeholder.Names(v.Value)...)
		}
	}
	for _, name := range b.headerNames {
		for _, v := range b.headers[name] {
			names = append(names, placeholder.Names(v)...)
		}
	}
	return names
}

// placeholderNames returns every placeholder name the template refers to,
// including those in the body template.
func (b *TemplateBuilder) placeholderNames() []string {
	names := b.requestPlaceholders()
	names = append(names, placeholder.Names(b.bodyTemplate)...)
	return names
}

// RequestTemplate is the normalized, immutable description of one
// request: verb, query-free path, ordered multi-valued queries and
// headers, and an optional body. Placeholders stay unresolved until
// Expand combines the template with call-time argument values.
//
// A template holds either a literal body or a body template, never both.
type RequestTemplate struct {
	method       string
	url          string
	queryKeys    []string
	queries      map[string][]QueryValue
	headerNames  []string
	headers      map[string][]string
	body         []byte
	bodyTemplate string
}

// Method returns the uppercase HTTP verb.
func (t *RequestTemplate) Method() string { return t.method }

// URL returns the path portion. It never contains a query string.
func (t *RequestTemplate) URL() string { return t.url }

// Queries returns the declared query parameters in key insertion order.
// The result is a copy.
func (t *RequestTemplate) Queries() []Query {
	out := make([]Query, 0, len(t.queryKeys))
	for _, key := range t.queryKeys {
		values := make([]QueryValue, len(t.queries[key]))
		copy(values, t.queries[key])
		out = append(out, Query{Key: key, Values: values})
	}
	return out
}

// Headers returns the declared headers in name insertion order. The
// result is a copy.
func (t *RequestTemplate) Headers() []Header {
	out := make([]Header, 0, len(t.headerNames))
	for _, name := range t.headerNames {
		values := make([]string, len(t.headers[name]))
		copy(values, t.headers[name])
		out = append(out, Header{Name: name, Values: values})
	}
	return out
}

// Body returns a copy of the literal body, or nil when the method
// declares none (or declares a templated one).
func (t *RequestTemplate) Body() []byte {
	if t.body == nil {
		return nil
	}
	out := make([]byte, len(t.body))
	copy(out, t.body)
	return out
}

// BodyTemplate returns the body string still containing placeholders, or
// "" when the body is literal or absent.
func (t *RequestTemplate) BodyTemplate() string { return t.bodyTemplate }
