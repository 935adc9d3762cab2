package restline

import (
	"errors"
	"net/url"
	"strconv"
	"strings"

	"github.com/toyz/restline/internal/placeholder"
)

// ResolvedRequest holds the wire-level pieces of one request after
// placeholder expansion: everything a transport needs short of actually
// sending it.
type ResolvedRequest struct {
	Method  string
	URL     string
	Queries []Query
	Headers []Header
	Body    []byte
}

// QueryString encodes the resolved queries in declaration order. Flag
// entries appear as a bare key. The result is "" when the template
// declared no query parameters.
func (r *ResolvedRequest) QueryString() string {
	var parts []string
	for _, q := range r.Queries {
		for _, v := range q.Values {
			if v.Present {
				parts = append(parts, q.Key+"="+v.Value)
			} else {
				parts = append(parts, q.Key)
			}
		}
	}
	return strings.Join(parts, "&")
}

// RequestURI returns the path with the encoded query string appended.
func (r *ResolvedRequest) RequestURI() string {
	qs := r.QueryString()
	if qs == "" {
		return r.URL
	}
	return r.URL + "?" + qs
}

// HeaderValues returns the resolved values of one header, or nil.
func (r *ResolvedRequest) HeaderValues(name string) []string {
	for _, h := range r.Headers {
		if h.Name == name {
			return h.Values
		}
	}
	return nil
}

// setHeader replaces the values of one header, appending the name when
// it is new. Used for the computed headers (Content-Length,
// Content-Type), which never accumulate.
func (r *ResolvedRequest) setHeader(name, value string) {
	for i, h := range r.Headers {
		if h.Name == name {
			r.Headers[i].Values = []string{value}
			return
		}
	}
	r.Headers = append(r.Headers, Header{Name: name, Values: []string{value}})
}

// Expand substitutes every {name} placeholder in the template with the
// argument value of that name. Values substituted into the path and
// query are URL-escaped; header and body substitutions are textual. A
// placeholder with no argument, or an argument that cannot be rendered
// as text, is an ExpandError.
func Expand(t *RequestTemplate, args map[string]any) (*ResolvedRequest, error) {
	resolved := &ResolvedRequest{Method: t.Method()}

	u, err := expandString(t.URL(), args, url.PathEscape)
	if err != nil {
		return nil, err
	}
	resolved.URL = u

	for _, q := range t.Queries() {
		key, err := expandString(q.Key, args, url.QueryEscape)
		if err != nil {
			return nil, err
		}
		values := make([]QueryValue, 0, len(q.Values))
		for _, v := range q.Values {
			if !v.Present {
				values = append(values, v)
				continue
			}
			value, err := expandString(v.Value, args, url.QueryEscape)
			if err != nil {
				return nil, err
			}
			values = append(values, QueryValue{Value: value, Present: true})
		}
		resolved.Queries = append(resolved.Queries, Query{Key: key, Values: values})
	}

	for _, h := range t.Headers() {
		values := make([]string, 0, len(h.Values))
		for _, v := range h.Values {
			value, err := expandString(v, args, nil)
			if err != nil {
				return nil, err
			}
			values = append(values, value)
		}
		resolved.Headers = append(resolved.Headers, Header{Name: h.Name, Values: values})
	}

	switch {
	case t.Body() != nil:
		// Content-Length for a literal body was computed at compile time
		// and is already among the headers.
		resolved.Body = t.Body()
	case t.BodyTemplate() != "":
		body, err := expandString(t.BodyTemplate(), args, nil)
		if err != nil {
			return nil, err
		}
		resolved.Body = []byte(body)
		resolved.setHeader("Content-Length", strconv.Itoa(len(resolved.Body)))
	}

	return resolved, nil
}

// Expand resolves the method's template with the supplied arguments.
// When the method carries no body declaration but does have form
// parameters, they are encoded as an application/x-www-form-urlencoded
// body in declaration order.
func (m *MethodMetadata) Expand(args map[string]any) (*ResolvedRequest, error) {
	resolved, err := Expand(m.template, args)
	if err != nil {
		return nil, err
	}

	if resolved.Body == nil && len(m.formParams) > 0 {
		body, err := encodeFormParams(m.formParams, args)
		if err != nil {
			return nil, err
		}
		resolved.Body = body
		if resolved.HeaderValues("Content-Type") == nil {
			resolved.setHeader("Content-Type", formContentType)
		}
		resolved.setHeader("Content-Length", strconv.Itoa(len(body)))
	}

	return resolved, nil
}

// ExpandWithBody resolves the template and additionally encodes body for
// a method whose body parameter was left unbound. The encoder decides
// the representation and the Content-Type; a Content-Type declared on
// the method wins over the encoder's.
func (m *MethodMetadata) ExpandWithBody(args map[string]any, body any, enc BodyEncoder) (*ResolvedRequest, error) {
	if m.bodyIndex < 0 {
		return nil, &ExpandError{Name: m.configKey, Msg: "method declares no body parameter"}
	}

	resolved, err := Expand(m.template, args)
	if err != nil {
		return nil, err
	}

	encoded, err := enc.Encode(body)
	if err != nil {
		return nil, &ExpandError{Name: m.configKey, Msg: err.Error()}
	}
	resolved.Body = encoded
	if resolved.HeaderValues("Content-Type") == nil {
		resolved.setHeader("Content-Type", enc.ContentType())
	}
	resolved.setHeader("Content-Length", strconv.Itoa(len(encoded)))

	return resolved, nil
}

// encodeFormParams renders the bound form parameters as a form-encoded
// body, preserving declaration order. Every form parameter must have an
// argument value.
func encodeFormParams(names []string, args map[string]any) ([]byte, error) {
	var parts []string
	for _, name := range names {
		v, ok := args[name]
		if !ok {
			return nil, &ExpandError{Name: name, Msg: "no argument value supplied"}
		}
		text, err := stringifyValue(v)
		if err != nil {
			return nil, &ExpandError{Name: name, Msg: err.Error()}
		}
		parts = append(parts, url.QueryEscape(name)+"="+url.QueryEscape(text))
	}
	return []byte(strings.Join(parts, "&")), nil
}

// expandString substitutes placeholders in one template string, applying
// escape (when non-nil) to each substituted value.
func expandString(s string, args map[string]any, escape func(string) string) (string, error) {
	var failure error

	out, err := placeholder.Expand(s, func(name string) (string, bool) {
		v, ok := args[name]
		if !ok {
			return "", false
		}
		text, err := stringifyValue(v)
		if err != nil {
			failure = &ExpandError{Name: name, Msg: err.Error()}
			return "", false
		}
		if escape != nil {
			text = escape(text)
		}
		return text, true
	})
	if err != nil {
		if failure != nil {
			return "", failure
		}
		var unknown *placeholder.UnknownNameError
		if errors.As(err, &unknown) {
			return "", &ExpandError{Name: unknown.Name, Msg: "no argument value supplied"}
		}
		return "", err
	}

	return out, nil
}
