// Package vesting implements a single-beneficiary token vesting lockup:
// an owner locks a fixed amount of a fungible token for one beneficiary,
// the amount vests linearly after an optional cliff, and the owner may
// optionally revoke the unvested remainder.
//
// A Lockup instance holds exactly one LockupRecord. The record is created
// once by CreateLockup, grown monotonically by Release, frozen by Revoke,
// and never deleted. All amounts are 256-bit unsigned integers; all
// time-dependent values derive from the instance Clock at the moment of
// the call.
package vesting

import (
	"time"

	"github.com/holiman/uint256"

	"github.com/pflow-xyz/go-vesting/ledger"
)

// MaxVestingDuration bounds vesting schedules to ten years.
const MaxVestingDuration = 10 * 365 * 24 * time.Hour

// LockupRecord is the single vesting schedule held by a Lockup instance.
type LockupRecord struct {
	// Beneficiary receives released tokens. Immutable after creation.
	Beneficiary ledger.Address

	// TotalAmount is the quantity locked at creation; always > 0 once the
	// record exists. Its presence is the guard against re-creation.
	TotalAmount *uint256.Int

	// ReleasedAmount is the cumulative amount transferred to the
	// beneficiary. Monotonically non-decreasing.
	ReleasedAmount *uint256.Int

	// StartTime is the creation timestamp. Immutable.
	StartTime time.Time

	// CliffDuration is the initial interval during which nothing vests.
	CliffDuration time.Duration

	// VestingDuration is the total linear vesting interval, measured from
	// StartTime. Always strictly greater than CliffDuration.
	VestingDuration time.Duration

	// Revocable is fixed at creation.
	Revocable bool

	// Revoked flips to true at most once, on a successful Revoke.
	Revoked bool

	// VestedAtRevoke snapshots the vested amount at the moment of
	// revocation. Meaningful only when Revoked is true.
	VestedAtRevoke *uint256.Int
}

// Exists reports whether the record has been created. A populated record
// always has TotalAmount > 0, so a nil or zero total means no lockup.
func (r *LockupRecord) Exists() bool {
	return r.TotalAmount != nil && !r.TotalAmount.IsZero()
}

// Clone returns a deep copy of the record.
func (r *LockupRecord) Clone() *LockupRecord {
	c := *r
	c.TotalAmount = cloneAmount(r.TotalAmount)
	c.ReleasedAmount = cloneAmount(r.ReleasedAmount)
	c.VestedAtRevoke = cloneAmount(r.VestedAtRevoke)
	return &c
}

func cloneAmount(a *uint256.Int) *uint256.Int {
	if a == nil {
		return nil
	}
	return a.Clone()
}
