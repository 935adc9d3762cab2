// Package placeholder locates and expands {name} tokens inside template
// strings. The same syntax is used in paths, query strings, header values
// and body templates, so the scanner makes no assumptions about what
// surrounds a token.
package placeholder

import "fmt"

// UnknownNameError reports a placeholder whose name has no value in the
// lookup supplied to Expand.
type UnknownNameError struct {
	Name string
}

func (e *UnknownNameError) Error() string {
	return fmt.Sprintf("no value for placeholder {%s}", e.Name)
}

// Names returns the distinct placeholder names in s, ordered by first
// appearance. An unclosed brace, or a braced token that is not a valid
// name, is treated as literal text — so a literal JSON body is not
// mistaken for a template.
func Names(s string) []string {
	var names []string
	seen := make(map[string]bool)

	for _, name := range scan(s) {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}

	return names
}

// Has reports whether s contains at least one well-formed placeholder.
func Has(s string) bool {
	return len(scan(s)) > 0
}

// Expand substitutes every placeholder in s with the value returned by
// lookup. Every occurrence of the same name expands identically. A name
// lookup cannot satisfy aborts the expansion.
func Expand(s string, lookup func(name string) (string, bool)) (string, error) {
	var out []byte

	i := 0
	for i < len(s) {
		if s[i] != '{' {
			out = append(out, s[i])
			i++
			continue
		}

		j := closingBrace(s, i)
		if j < 0 || !validName(s[i+1:j]) {
			// Not a placeholder, keep the brace literal
			out = append(out, s[i])
			i++
			continue
		}

		name := s[i+1 : j]
		value, ok := lookup(name)
		if !ok {
			return "", &UnknownNameError{Name: name}
		}
		out = append(out, value...)
		i = j + 1
	}

	return string(out), nil
}

// scan returns every placeholder name in s in order, duplicates included.
func scan(s string) []string {
	var names []string

	i := 0
	for i < len(s) {
		if s[i] != '{' {
			i++
			continue
		}

		j := closingBrace(s, i)
		if j < 0 {
			i++
			continue
		}

		if !validName(s[i+1 : j]) {
			i++
			continue
		}
		names = append(names, s[i+1:j])
		i = j + 1
	}

	return names
}

// closingBrace finds the '}' matching the '{' at position open, or -1 if
// the token never closes. Nested braces are not part of the syntax.
func closingBrace(s string, open int) int {
	for j := open + 1; j < len(s); j++ {
		if s[j] == '}' {
			return j
		}
		if s[j] == '{' {
			return -1
		}
	}
	return -1
}

// validName reports whether a braced token is a placeholder name. Names
// are identifier-like: letters, digits, '_', '-' and '.'.
func validName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_' || c == '-' || c == '.':
		default:
			return false
		}
	}
	return true
}
