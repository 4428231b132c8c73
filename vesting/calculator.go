package vesting

import (
	"math/big"
	"time"

	"github.com/holiman/uint256"
)

// VestedAmount returns the amount earned by the beneficiary as of now,
// per the linear-with-cliff schedule. Pure: no side effects, any number
// of calls, depends only on the record and the given time.
//
// Before the cliff the result is zero. At or past the end of the vesting
// duration (and not revoked) it is exactly TotalAmount, eliminating any
// division dust. In between it is TotalAmount * elapsed / duration,
// multiply-then-divide with a widened intermediate so that amounts near
// the token's full 256-bit range cannot overflow. After revocation the
// result is clamped to the snapshot taken at that moment.
func VestedAmount(r *LockupRecord, now time.Time) *uint256.Int {
	if !r.Exists() {
		return new(uint256.Int)
	}

	elapsed := now.Sub(r.StartTime)
	if elapsed < r.CliffDuration {
		return new(uint256.Int)
	}
	if elapsed >= r.VestingDuration && !r.Revoked {
		return r.TotalAmount.Clone()
	}

	vested := linearVested(r.TotalAmount, elapsed, r.VestingDuration)
	if r.Revoked && r.VestedAtRevoke != nil && vested.Gt(r.VestedAtRevoke) {
		return r.VestedAtRevoke.Clone()
	}
	return vested
}

// linearVested computes total * elapsed / duration, floor-rounded. The
// product is taken before the division; if it exceeds 256 bits the
// calculation falls back to arbitrary precision.
func linearVested(total *uint256.Int, elapsed, duration time.Duration) *uint256.Int {
	if elapsed <= 0 {
		return new(uint256.Int)
	}
	if elapsed > duration {
		elapsed = duration
	}

	elapsedU := uint256.NewInt(uint64(elapsed))
	durationU := uint256.NewInt(uint64(duration))

	product, overflow := new(uint256.Int).MulOverflow(total, elapsedU)
	if !overflow {
		return product.Div(product, durationU)
	}

	wide := new(big.Int).Mul(total.ToBig(), big.NewInt(int64(elapsed)))
	wide.Quo(wide, big.NewInt(int64(duration)))
	// elapsed <= duration, so the quotient is bounded by total and fits.
	out, _ := uint256.FromBig(wide)
	return out
}

// ReleasableAmount returns the vested amount not yet claimed.
func ReleasableAmount(r *LockupRecord, now time.Time) *uint256.Int {
	vested := VestedAmount(r, now)
	if r.ReleasedAmount == nil {
		return vested
	}
	if vested.Lt(r.ReleasedAmount) {
		return new(uint256.Int)
	}
	return vested.Sub(vested, r.ReleasedAmount)
}

// VestingProgress returns the elapsed share of the vesting duration as an
// integer percentage 0..100, floor-rounded. The cliff is ignored: progress
// reflects time, not claimability.
func VestingProgress(r *LockupRecord, now time.Time) int {
	if !r.Exists() {
		return 0
	}
	elapsed := now.Sub(r.StartTime)
	if elapsed <= 0 {
		return 0
	}
	if elapsed >= r.VestingDuration {
		return 100
	}
	// Millisecond resolution keeps 100*elapsed within int64 for the full
	// ten-year duration range.
	durMs := r.VestingDuration.Milliseconds()
	if durMs == 0 {
		return 0
	}
	return int(elapsed.Milliseconds() * 100 / durMs)
}

// RemainingVestingTime returns the time left until the schedule is fully
// vested, or zero once it is.
func RemainingVestingTime(r *LockupRecord, now time.Time) time.Duration {
	if !r.Exists() {
		return 0
	}
	end := r.StartTime.Add(r.VestingDuration)
	if !now.Before(end) {
		return 0
	}
	return end.Sub(now)
}
