package access

import (
	"errors"
	"testing"

	"github.com/pflow-xyz/go-vesting/ledger"
)

func TestSingleOwner(t *testing.T) {
	if _, err := NewSingleOwner(ledger.ZeroAddress); !errors.Is(err, ErrZeroOwner) {
		t.Errorf("NewSingleOwner(zero) = %v, want %v", err, ErrZeroOwner)
	}

	o, err := NewSingleOwner("alice")
	if err != nil {
		t.Fatalf("NewSingleOwner: %v", err)
	}
	if got := o.Owner(); got != "alice" {
		t.Errorf("Owner() = %q, want alice", got)
	}
	if !o.Has("alice") || o.Has("bob") {
		t.Error("Has() role check wrong")
	}
}

func TestTransferOwnership(t *testing.T) {
	o, err := NewSingleOwner("alice")
	if err != nil {
		t.Fatalf("NewSingleOwner: %v", err)
	}

	if err := o.TransferOwnership("bob", "carol"); !errors.Is(err, ErrNotOwner) {
		t.Errorf("transfer by non-owner = %v, want %v", err, ErrNotOwner)
	}
	if err := o.TransferOwnership("alice", ledger.ZeroAddress); !errors.Is(err, ErrZeroOwner) {
		t.Errorf("transfer to zero = %v, want %v", err, ErrZeroOwner)
	}

	if err := o.TransferOwnership("alice", "carol"); err != nil {
		t.Fatalf("transfer: %v", err)
	}
	if got := o.Owner(); got != "carol" {
		t.Errorf("Owner() after transfer = %q, want carol", got)
	}
	if o.Has("alice") {
		t.Error("old owner still holds the role")
	}
}
