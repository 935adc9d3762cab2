// Package reqline parses the request-line micro-syntax used by method
// declarations: "<VERB> <path>[?<query>]", plus the "Name: value" form
// used by header declarations. The request line is lexed and parsed with
// participle; the query string is split by hand because its grammar is
// positional (first '?', entries on '&', first '=').
package reqline

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// line is the participle AST for a request line. The target token is
// optional: "PATCH" alone is a valid declaration with an empty path.
type line struct {
	Verb   string `parser:"@Verb"`
	Target string `parser:"@Target?"`
}

var lineLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Verb", Pattern: `[A-Za-z][A-Za-z0-9_-]*`},
	{Name: "Target", Pattern: `/[^\s]*`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var lineParser = participle.MustBuild[line](
	participle.Lexer(lineLexer),
	participle.Elide("Whitespace"),
)

// QueryEntry is one entry of a declared query string, in source order. A
// flag-style entry ("...&flag&...") has HasValue false and an empty
// Value. Keys and values may still contain {name} placeholders; they are
// stored literally.
type QueryEntry struct {
	Key      string
	Value    string
	HasValue bool
}

// RequestLine is the split form of a "<VERB> <path>[?<query>]"
// declaration. Path never contains a query string; everything after the
// first '?' lands in Query.
type RequestLine struct {
	Verb  string
	Path  string
	Query []QueryEntry
}

// Parse splits a raw request-line declaration into verb, path and query
// entries. The verb is normalized to uppercase. An empty declaration or
// one that does not start with a verb token is an error.
func Parse(raw string) (RequestLine, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return RequestLine{}, fmt.Errorf("missing verb")
	}

	parsed, err := lineParser.ParseString("", trimmed)
	if err != nil {
		return RequestLine{}, fmt.Errorf("malformed request line %q: %w", raw, err)
	}

	path, query := splitTarget(parsed.Target)
	return RequestLine{
		Verb:  strings.ToUpper(parsed.Verb),
		Path:  path,
		Query: query,
	}, nil
}

// splitTarget separates the path from the inline query string and parses
// the latter into ordered entries.
func splitTarget(target string) (string, []QueryEntry) {
	path, rawQuery, found := strings.Cut(target, "?")
	if !found || rawQuery == "" {
		return path, nil
	}

	var entries []QueryEntry
	for _, part := range strings.Split(rawQuery, "&") {
		if part == "" {
			continue
		}
		key, value, hasValue := strings.Cut(part, "=")
		entries = append(entries, QueryEntry{
			Key:      key,
			Value:    value,
			HasValue: hasValue,
		})
	}

	return path, entries
}

// ParseHeader splits a "Name: value" header declaration. The name must be
// non-empty; the value is trimmed of surrounding whitespace and may
// contain {name} placeholders.
func ParseHeader(raw string) (name, value string, err error) {
	name, value, found := strings.Cut(raw, ":")
	if !found {
		return "", "", fmt.Errorf("header %q is not in \"Name: value\" form", raw)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return "", "", fmt.Errorf("header %q has an empty name", raw)
	}

	return name, strings.TrimSpace(value), nil
}
