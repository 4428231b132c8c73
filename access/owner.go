// Package access provides the single-owner access-control collaborator:
// one privileged role, checked by caller identity, transferable by the
// current holder only.
package access

import (
	"errors"
	"sync"

	"github.com/pflow-xyz/go-vesting/ledger"
)

var (
	// ErrNotOwner is returned when a caller other than the current owner
	// attempts a privileged operation.
	ErrNotOwner = errors.New("access: caller is not the owner")

	// ErrZeroOwner is returned when ownership would be assigned to the
	// null address.
	ErrZeroOwner = errors.New("access: zero owner address")
)

// SingleOwner holds a single transferable owner role.
type SingleOwner struct {
	mu    sync.RWMutex
	owner ledger.Address
}

// NewSingleOwner creates the role with its initial holder.
func NewSingleOwner(owner ledger.Address) (*SingleOwner, error) {
	if owner.IsZero() {
		return nil, ErrZeroOwner
	}
	return &SingleOwner{owner: owner}, nil
}

// Owner returns the current role holder.
func (s *SingleOwner) Owner() ledger.Address {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.owner
}

// Has reports whether caller currently holds the role.
func (s *SingleOwner) Has(caller ledger.Address) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return caller == s.owner
}

// TransferOwnership moves the role to newOwner. Only the current holder
// may transfer it, and never to the null address.
func (s *SingleOwner) TransferOwnership(caller, newOwner ledger.Address) error {
	if newOwner.IsZero() {
		return ErrZeroOwner
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if caller != s.owner {
		return ErrNotOwner
	}
	s.owner = newOwner
	return nil
}
