package vesting

import "errors"

var (
	// Construction errors
	ErrInvalidTokenAddress = errors.New("vesting: invalid token address")

	// createLockup precondition errors
	ErrLockupExists          = errors.New("vesting: lockup already exists")
	ErrInvalidBeneficiary    = errors.New("vesting: invalid beneficiary")
	ErrInvalidAmount         = errors.New("vesting: amount must be greater than zero")
	ErrInvalidDuration       = errors.New("vesting: invalid vesting duration")
	ErrInsufficientBalance   = errors.New("vesting: insufficient owner balance")
	ErrInsufficientAllowance = errors.New("vesting: insufficient allowance")

	// Transfer integrity
	ErrTransferAmountMismatch = errors.New("vesting: transfer amount mismatch")

	// release / revoke errors
	ErrNoTokensAvailable = errors.New("vesting: no tokens available for release")
	ErrNotRevocable      = errors.New("vesting: lockup is not revocable")
	ErrAlreadyRevoked    = errors.New("vesting: lockup already revoked")
	ErrNothingToRevoke   = errors.New("vesting: nothing to revoke")

	// Access and reentrancy
	ErrUnauthorized  = errors.New("vesting: unauthorized caller")
	ErrReentrantCall = errors.New("vesting: reentrant call")
)
