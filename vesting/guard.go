package vesting

import (
	"time"

	"github.com/holiman/uint256"

	"github.com/pflow-xyz/go-vesting/ledger"
)

// validateToken is the construction-time sanity check: the token address
// must be non-zero and must host deployed contract code. This rejects the
// accidental use of a plain account address; it is not a full interface
// conformance proof.
func validateToken(reg *ledger.Registry, addr ledger.Address) (ledger.Token, error) {
	if addr.IsZero() || !reg.HasCode(addr) {
		return nil, ErrInvalidTokenAddress
	}
	token, ok := reg.TokenAt(addr)
	if !ok {
		return nil, ErrInvalidTokenAddress
	}
	return token, nil
}

// validateCreate runs the cheap createLockup preconditions in fail-fast
// order. The duplicate check comes first: re-creation must be rejected
// regardless of the validity of any other parameter.
func validateCreate(rec *LockupRecord, beneficiary ledger.Address, total *uint256.Int, cliff, duration time.Duration) error {
	if rec.Exists() {
		return ErrLockupExists
	}
	if beneficiary.IsZero() {
		return ErrInvalidBeneficiary
	}
	if total == nil || total.IsZero() {
		return ErrInvalidAmount
	}
	// Equality of cliff and duration is rejected so a gradual-vesting
	// window always exists.
	if cliff < 0 || cliff >= duration || duration > MaxVestingDuration {
		return ErrInvalidDuration
	}
	return nil
}

// checkFunds verifies the owner can fund the lockup: balance first, then
// the allowance granted to this instance. The two are distinct error
// kinds so a caller can tell "need more tokens" from "need to authorize
// more tokens".
func checkFunds(token ledger.Token, owner, spender ledger.Address, total *uint256.Int) error {
	if token.BalanceOf(owner).Lt(total) {
		return ErrInsufficientBalance
	}
	if token.Allowance(owner, spender).Lt(total) {
		return ErrInsufficientAllowance
	}
	return nil
}
