package vesting

// State is the lifecycle state of a lockup, derived from its record.
//
//	Uninitialized → Active → Revoked
//	                   ↓         ↓
//	              FullyReleased (all claimable tokens released)
//
// Revoked is terminal for vesting growth, but release of the frozen
// vested balance remains permitted until fully claimed.
type State int

const (
	StateUninitialized State = iota
	StateActive
	StateRevoked
	StateFullyReleased
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateActive:
		return "active"
	case StateRevoked:
		return "revoked"
	case StateFullyReleased:
		return "fully_released"
	default:
		return "unknown"
	}
}

// StateOf derives the lifecycle state from a record. A revoked lockup
// whose frozen vested balance has been fully claimed, or an unrevoked one
// whose entire total has been released, is FullyReleased.
func StateOf(r *LockupRecord) State {
	if !r.Exists() {
		return StateUninitialized
	}
	if r.Revoked {
		if r.ReleasedAmount != nil && r.VestedAtRevoke != nil && r.ReleasedAmount.Eq(r.VestedAtRevoke) {
			return StateFullyReleased
		}
		return StateRevoked
	}
	if r.ReleasedAmount != nil && r.ReleasedAmount.Eq(r.TotalAmount) {
		return StateFullyReleased
	}
	return StateActive
}
