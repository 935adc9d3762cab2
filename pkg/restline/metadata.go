package restline

// MethodMetadata is the compiled, immutable description of one declared
// method. It is created once by a Contract and shared read-only across
// every call made through that method.
type MethodMetadata struct {
	configKey   string
	template    *RequestTemplate
	formParams  []string
	indexToName map[int][]string
	bodyIndex   int // -1 when no body parameter
	bodyType    string
	urlIndex    int // -1 when no URL-override parameter
}

// ConfigKey returns the stable method identifier, used as the cache key
// and in error and log output.
func (m *MethodMetadata) ConfigKey() string { return m.configKey }

// Template returns the request template owned by this method.
func (m *MethodMetadata) Template() *RequestTemplate { return m.template }

// FormParams returns the binding names that are not referenced by any
// path, query or header placeholder, in declaration order. They are
// intended for form encoding. The result is a copy.
func (m *MethodMetadata) FormParams() []string {
	out := make([]string, len(m.formParams))
	copy(out, m.formParams)
	return out
}

// IndexToName maps each bound parameter position to its binding names.
// A position carries more than one entry only when the primary and the
// deprecated alias binding name it identically; URL-override and body
// positions are absent. The result is a copy.
func (m *MethodMetadata) IndexToName() map[int][]string {
	out := make(map[int][]string, len(m.indexToName))
	for i, names := range m.indexToName {
		copied := make([]string, len(names))
		copy(copied, names)
		out[i] = copied
	}
	return out
}

// BodyIndex returns the parameter position supplying the request body.
// ok is false when the method declares no body parameter.
func (m *MethodMetadata) BodyIndex() (index int, ok bool) {
	return m.bodyIndex, m.bodyIndex >= 0
}

// BodyType returns the declared type of the body parameter, or "" when
// there is none. It is preserved verbatim for downstream serialization.
func (m *MethodMetadata) BodyType() string { return m.bodyType }

// URLIndex returns the parameter position supplying a full override base
// URI. ok is false when the method declares no such parameter.
func (m *MethodMetadata) URLIndex() (index int, ok bool) {
	return m.urlIndex, m.urlIndex >= 0
}
