package restline

import (
	"fmt"
	"sync"
)

// Registry is the compile-once cache of method metadata. Interfaces are
// registered whole: either every method compiles and all of them are
// installed, or none are and the error reports every broken method.
//
// Compiled metadata is immutable, so redundant compilation of the same
// declaration is harmless; the registry still serializes installation.
type Registry struct {
	mu       sync.RWMutex
	contract Contract
	methods  map[string]*MethodMetadata
}

// NewRegistry creates a registry compiling through contract. A nil
// contract selects the default one.
func NewRegistry(contract Contract) *Registry {
	if contract == nil {
		contract = NewContract()
	}
	return &Registry{
		contract: contract,
		methods:  make(map[string]*MethodMetadata),
	}
}

// RegisterInterface compiles every method of decl and installs the
// results under their config keys. On any failure nothing is installed
// and the returned error collects one CompileError per broken method.
func (r *Registry) RegisterInterface(decl *InterfaceDecl) error {
	if err := declValidator.Struct(decl); err != nil {
		return &RegistrationError{
			Key: decl.Name,
			Msg: fmt.Sprintf("incomplete interface declaration: %v", err),
		}
	}

	staged := make(map[string]*MethodMetadata, len(decl.Methods))
	order := make([]string, 0, len(decl.Methods))
	var failed []error

	for i := range decl.Methods {
		method := &decl.Methods[i]
		md, err := r.contract.Compile(decl, method)
		if err != nil {
			failed = append(failed, err)
			continue
		}
		if _, dup := staged[md.ConfigKey()]; dup {
			failed = append(failed, &RegistrationError{
				Key: md.ConfigKey(),
				Msg: "two methods compile to the same config key",
			})
			continue
		}
		staged[md.ConfigKey()] = md
		order = append(order, md.ConfigKey())
	}

	if len(failed) > 0 {
		return &CompileErrors{Errors: failed}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, key := range order {
		r.methods[key] = staged[key]
	}
	return nil
}

// Lookup returns the metadata compiled for a config key.
func (r *Registry) Lookup(configKey string) (*MethodMetadata, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	md, ok := r.methods[configKey]
	return md, ok
}

// Keys returns the config keys of every installed method.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.methods))
	for key := range r.methods {
		keys = append(keys, key)
	}
	return keys
}
