package vesting

import "time"

// Lifecycle event types recorded on each successful mutation.
const (
	EventLockupCreated  = "LockupCreated"
	EventTokensReleased = "TokensReleased"
	EventLockupRevoked  = "LockupRevoked"
)

// LockupCreatedPayload records a successful CreateLockup.
type LockupCreatedPayload struct {
	Actor        string    `json:"actor"`
	Beneficiary  string    `json:"beneficiary"`
	TotalAmount  string    `json:"total_amount"`
	CliffNanos   int64     `json:"cliff_ns"`
	VestingNanos int64     `json:"vesting_ns"`
	Revocable    bool      `json:"revocable"`
	StartTime    time.Time `json:"start_time"`
}

// TokensReleasedPayload records a successful Release.
type TokensReleasedPayload struct {
	Actor  string    `json:"actor"`
	Amount string    `json:"amount"`
	At     time.Time `json:"at"`
}

// LockupRevokedPayload records a successful Revoke.
type LockupRevokedPayload struct {
	Actor          string    `json:"actor"`
	VestedAtRevoke string    `json:"vested_at_revoke"`
	UnvestedAmount string    `json:"unvested_amount"`
	At             time.Time `json:"at"`
}
