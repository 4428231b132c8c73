package vesting

import (
	"fmt"

	"github.com/holiman/uint256"

	"github.com/pflow-xyz/go-vesting/ledger"
)

// gateway wraps the three external transfer call sites: pull-from-owner
// at creation, push-to-beneficiary at release, push-to-owner at revoke.
// Each is a single synchronous call against the token contract, made on
// behalf of the lockup instance's own address.
type gateway struct {
	token ledger.Token
	self  ledger.Address
}

// pull moves amount from the funding account into the instance's balance
// via the delegated transfer primitive, and returns the balance delta the
// instance actually observed. Comparing the delta against the requested
// amount is the sole defense against fee-on-transfer and other
// non-standard token behavior.
func (g *gateway) pull(from ledger.Address, amount *uint256.Int) (*uint256.Int, error) {
	before := g.token.BalanceOf(g.self)
	if err := g.token.TransferFrom(g.self, from, g.self, amount); err != nil {
		return nil, fmt.Errorf("pull transfer: %w", err)
	}
	after := g.token.BalanceOf(g.self)
	if after.Lt(before) {
		return nil, ErrTransferAmountMismatch
	}
	return after.Sub(after, before), nil
}

// push moves amount from the instance's balance to the recipient.
func (g *gateway) push(to ledger.Address, amount *uint256.Int) error {
	if err := g.token.Transfer(g.self, to, amount); err != nil {
		return fmt.Errorf("push transfer: %w", err)
	}
	return nil
}
