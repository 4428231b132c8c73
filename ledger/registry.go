package ledger

import "sync"

// Registry tracks which addresses host deployed contract code. It stands
// in for the surrounding chain's code lookup: constructors use it to
// reject plain account addresses where a contract is required.
type Registry struct {
	mu        sync.RWMutex
	contracts map[Address]any
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{contracts: make(map[Address]any)}
}

// Deploy registers contract code at addr.
func (r *Registry) Deploy(addr Address, contract any) error {
	if addr.IsZero() {
		return ErrZeroAddress
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.contracts[addr]; ok {
		return ErrAddressInUse
	}
	r.contracts[addr] = contract
	return nil
}

// HasCode reports whether addr hosts a deployed contract.
func (r *Registry) HasCode(addr Address) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.contracts[addr]
	return ok
}

// TokenAt returns the Token deployed at addr, if any. The second return
// is false when the address is empty or hosts a non-token contract.
func (r *Registry) TokenAt(addr Address) (Token, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.contracts[addr].(Token)
	return t, ok
}
