package restline

import (
	"fmt"
	"strings"
)

// CompileError is the interface implemented by every configuration error
// produced while compiling a method declaration. All compile errors are
// permanent: they describe a defect in the declaration itself, and the
// declaration that produced one must not be installed.
type CompileError interface {
	error

	// ConfigKey identifies the method whose declaration is broken.
	ConfigKey() string

	// Suggestion returns a short hint on how to fix the declaration.
	Suggestion() string
}

// RequestLineError reports a missing or malformed verb/path declaration.
type RequestLineError struct {
	Key  string // method config key
	Line string // offending request line
	Msg  string // what went wrong
}

func (e *RequestLineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Key, e.Msg)
}

func (e *RequestLineError) ConfigKey() string { return e.Key }

func (e *RequestLineError) Suggestion() string {
	return `declare every method as "<VERB> <path>[?<query>]", e.g. "GET /users/{id}"`
}

// HeaderError reports a header declaration that is not in "Name: value"
// form.
type HeaderError struct {
	Key    string // method config key
	Header string // offending header line
	Msg    string // what went wrong
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("%s: %s", e.Key, e.Msg)
}

func (e *HeaderError) ConfigKey() string { return e.Key }

func (e *HeaderError) Suggestion() string {
	return `declare headers as "Name: value", e.g. "Content-Type: application/json"`
}

// BodyError reports a method declaring more than one body-supplying
// parameter.
type BodyError struct {
	Key   string // method config key
	Count int    // number of unbound parameters seen so far
}

func (e *BodyError) Error() string {
	return fmt.Sprintf("%s: method has too many body parameters (%d)", e.Key, e.Count)
}

func (e *BodyError) ConfigKey() string { return e.Key }

func (e *BodyError) Suggestion() string {
	return "at most one parameter may be left unbound to supply the request body; bind the others by name"
}

// PlaceholderError reports a {name} placeholder that no parameter binds.
type PlaceholderError struct {
	Key  string // method config key
	Name string // unresolved placeholder name
}

func (e *PlaceholderError) Error() string {
	return fmt.Sprintf("%s: placeholder {%s} does not match any bound parameter", e.Key, e.Name)
}

func (e *PlaceholderError) ConfigKey() string { return e.Key }

func (e *PlaceholderError) Suggestion() string {
	return fmt.Sprintf("bind a parameter named %q or remove the placeholder", e.Name)
}

// URLOverrideError reports a method declaring more than one URL-override
// parameter.
type URLOverrideError struct {
	Key      string // method config key
	Position int    // position of the second override parameter
}

func (e *URLOverrideError) Error() string {
	return fmt.Sprintf("%s: parameter %d is a second URL override; only one is allowed", e.Key, e.Position)
}

func (e *URLOverrideError) ConfigKey() string { return e.Key }

func (e *URLOverrideError) Suggestion() string {
	return "a method may carry at most one URL-override parameter"
}

// RegistrationError reports a declaration problem discovered while
// registering a whole interface, such as two methods compiling to the
// same config key.
type RegistrationError struct {
	Key string // duplicated or invalid config key
	Msg string
}

func (e *RegistrationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Key, e.Msg)
}

func (e *RegistrationError) ConfigKey() string { return e.Key }

func (e *RegistrationError) Suggestion() string {
	return "every method of an interface must compile to a distinct config key"
}

// CompileErrors collects the compile errors of every broken method in one
// interface registration, so a single failed registration reports all of
// them at once.
type CompileErrors struct {
	Errors []error
}

func (e *CompileErrors) Error() string {
	switch len(e.Errors) {
	case 0:
		return "no errors"
	case 1:
		return e.Errors[0].Error()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d methods failed to compile:", len(e.Errors))
	for _, err := range e.Errors {
		b.WriteString("\n\t")
		b.WriteString(err.Error())
	}
	return b.String()
}

// Unwrap exposes the individual errors to errors.Is and errors.As.
func (e *CompileErrors) Unwrap() []error { return e.Errors }

// ExpandError reports a call-time expansion failure: a placeholder or
// form parameter present in the compiled template had no argument value,
// or the value could not be rendered as text.
type ExpandError struct {
	Name string // binding name that could not be resolved
	Msg  string
}

func (e *ExpandError) Error() string {
	return fmt.Sprintf("expand %q: %s", e.Name, e.Msg)
}
