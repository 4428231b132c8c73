package vesting

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/holiman/uint256"

	"github.com/pflow-xyz/go-vesting/access"
	"github.com/pflow-xyz/go-vesting/eventsource"
	"github.com/pflow-xyz/go-vesting/ledger"
)

// Lockup is a single-lockup vesting instance: one token, one owner role,
// at most one LockupRecord for its entire lifetime.
//
// Clock, Events and Logger may be replaced after construction and before
// first use. Events is optional; when set, every successful mutation
// appends a lifecycle event to the stream named by ID.
type Lockup struct {
	// Clock supplies the current time. Defaults to SystemClock.
	Clock Clock

	// Events, when non-nil, records lifecycle events.
	Events eventsource.Store

	// Logger receives operational diagnostics. Defaults to slog.Default.
	Logger *slog.Logger

	id        string
	addr      ledger.Address
	tokenAddr ledger.Address
	owner     *access.SingleOwner
	gw        gateway

	mu      sync.RWMutex
	busy    atomic.Bool
	version int
	rec     LockupRecord
}

// New constructs a lockup instance bound to the token deployed at
// tokenAddr. The address must be non-zero and must host contract code in
// the registry, otherwise ErrInvalidTokenAddress is returned. The
// instance registers its own address so that its token holdings are
// attributable on the ledger.
func New(reg *ledger.Registry, tokenAddr ledger.Address, owner *access.SingleOwner) (*Lockup, error) {
	token, err := validateToken(reg, tokenAddr)
	if err != nil {
		return nil, err
	}

	id := uuid.New().String()
	addr := ledger.Address("lockup:" + id)
	l := &Lockup{
		Clock:     SystemClock,
		Logger:    slog.Default(),
		id:        id,
		addr:      addr,
		tokenAddr: tokenAddr,
		owner:     owner,
		gw:        gateway{token: token, self: addr},
		version:   -1,
	}
	if err := reg.Deploy(addr, l); err != nil {
		return nil, err
	}
	return l, nil
}

// ID returns the instance identifier, also used as the event stream ID.
func (l *Lockup) ID() string { return l.id }

// Addr returns the instance's own ledger address.
func (l *Lockup) Addr() ledger.Address { return l.addr }

// Token returns the address of the vested token.
func (l *Lockup) Token() ledger.Address { return l.tokenAddr }

// Owner returns the current holder of the owner role.
func (l *Lockup) Owner() ledger.Address { return l.owner.Owner() }

// CreateLockup locks totalAmount of the token for the beneficiary,
// vesting linearly over duration after the cliff. Owner only; at most one
// lockup per instance. The tokens are pulled from the owner's balance via
// the allowance previously granted to l.Addr(); a received amount that
// differs from the request aborts the operation with
// ErrTransferAmountMismatch and refunds whatever arrived.
func (l *Lockup) CreateLockup(ctx context.Context, caller, beneficiary ledger.Address, totalAmount *uint256.Int, cliff, duration time.Duration, revocable bool) error {
	if l.busy.Load() {
		return ErrReentrantCall
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	owner := l.owner.Owner()
	if caller != owner {
		return ErrUnauthorized
	}
	if err := validateCreate(&l.rec, beneficiary, totalAmount, cliff, duration); err != nil {
		return err
	}
	if err := checkFunds(l.gw.token, owner, l.addr, totalAmount); err != nil {
		return err
	}

	l.busy.Store(true)
	defer l.busy.Store(false)

	received, err := l.gw.pull(owner, totalAmount)
	if err != nil {
		return err
	}
	if !received.Eq(totalAmount) {
		// Deflationary or fee-bearing asset: abort with no state change,
		// returning whatever actually arrived.
		if !received.IsZero() {
			if pushErr := l.gw.push(owner, received); pushErr != nil {
				l.Logger.Error("refund after transfer mismatch failed",
					"lockup", l.id, "err", pushErr)
			}
		}
		return ErrTransferAmountMismatch
	}

	now := l.Clock.Now()
	l.rec = LockupRecord{
		Beneficiary:     beneficiary,
		TotalAmount:     totalAmount.Clone(),
		ReleasedAmount:  new(uint256.Int),
		StartTime:       now,
		CliffDuration:   cliff,
		VestingDuration: duration,
		Revocable:       revocable,
	}

	l.emit(ctx, EventLockupCreated, LockupCreatedPayload{
		Actor:        caller.String(),
		Beneficiary:  beneficiary.String(),
		TotalAmount:  totalAmount.Dec(),
		CliffNanos:   int64(cliff),
		VestingNanos: int64(duration),
		Revocable:    revocable,
		StartTime:    now,
	})
	return nil
}

// Release transfers the currently releasable amount to the beneficiary.
// Beneficiary only. Fails ErrNoTokensAvailable when nothing is claimable.
// The record is updated before the external transfer; if the transfer
// itself fails the update is compensated so the operation leaves no
// observable state change.
func (l *Lockup) Release(ctx context.Context) error {
	if l.busy.Load() {
		return ErrReentrantCall
	}
	return l.ReleaseAs(ctx, l.Beneficiary())
}

// ReleaseAs is Release with an explicit caller identity.
func (l *Lockup) ReleaseAs(ctx context.Context, caller ledger.Address) error {
	if l.busy.Load() {
		return ErrReentrantCall
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.rec.Exists() {
		return ErrNoTokensAvailable
	}
	if caller != l.rec.Beneficiary {
		return ErrUnauthorized
	}

	now := l.Clock.Now()
	releasable := ReleasableAmount(&l.rec, now)
	if releasable.IsZero() {
		return ErrNoTokensAvailable
	}

	// Checks-effects-interactions: commit the release before the
	// external transfer.
	l.rec.ReleasedAmount.Add(l.rec.ReleasedAmount, releasable)

	l.busy.Store(true)
	defer l.busy.Store(false)

	if err := l.gw.push(l.rec.Beneficiary, releasable); err != nil {
		l.rec.ReleasedAmount.Sub(l.rec.ReleasedAmount, releasable)
		return err
	}

	l.emit(ctx, EventTokensReleased, TokensReleasedPayload{
		Actor:  caller.String(),
		Amount: releasable.Dec(),
		At:     now,
	})
	return nil
}

// Revoke freezes vesting at the current vested amount and returns the
// unvested remainder to the owner. Owner only; the lockup must be
// revocable, not already revoked, and not yet fully vested. After a
// successful revoke the beneficiary's lifetime claim is permanently
// capped at the snapshot.
func (l *Lockup) Revoke(ctx context.Context) error {
	if l.busy.Load() {
		return ErrReentrantCall
	}
	return l.RevokeAs(ctx, l.Owner())
}

// RevokeAs is Revoke with an explicit caller identity.
func (l *Lockup) RevokeAs(ctx context.Context, caller ledger.Address) error {
	if l.busy.Load() {
		return ErrReentrantCall
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if caller != l.owner.Owner() {
		return ErrUnauthorized
	}
	if !l.rec.Exists() {
		return ErrNothingToRevoke
	}
	if !l.rec.Revocable {
		return ErrNotRevocable
	}
	if l.rec.Revoked {
		return ErrAlreadyRevoked
	}

	now := l.Clock.Now()
	vested := VestedAmount(&l.rec, now)
	if !vested.Lt(l.rec.TotalAmount) {
		// Fully vested: revoking would return zero value.
		return ErrNothingToRevoke
	}
	unvested := new(uint256.Int).Sub(l.rec.TotalAmount, vested)

	l.rec.Revoked = true
	l.rec.VestedAtRevoke = vested.Clone()

	l.busy.Store(true)
	defer l.busy.Store(false)

	if err := l.gw.push(caller, unvested); err != nil {
		l.rec.Revoked = false
		l.rec.VestedAtRevoke = nil
		return err
	}

	l.emit(ctx, EventLockupRevoked, LockupRevokedPayload{
		Actor:          caller.String(),
		VestedAtRevoke: vested.Dec(),
		UnvestedAmount: unvested.Dec(),
		At:             now,
	})
	return nil
}

// emit appends a lifecycle event to the configured store. The mutation is
// already committed when emit runs; append failures are logged, not
// propagated.
func (l *Lockup) emit(ctx context.Context, eventType string, payload any) {
	if l.Events == nil {
		return
	}
	ev, err := eventsource.NewEvent(l.id, eventType, payload)
	if err != nil {
		l.Logger.Warn("encode lifecycle event failed",
			"lockup", l.id, "type", eventType, "err", err)
		return
	}
	version, err := l.Events.Append(ctx, l.id, l.version, []*eventsource.Event{ev})
	if err != nil {
		l.Logger.Warn("append lifecycle event failed",
			"lockup", l.id, "type", eventType, "err", err)
		return
	}
	l.version = version
}

// LockupInfo returns a deep-copied snapshot of the record.
func (l *Lockup) LockupInfo() *LockupRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.rec.Clone()
}

// Beneficiary returns the beneficiary address, or the zero address before
// creation.
func (l *Lockup) Beneficiary() ledger.Address {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.rec.Beneficiary
}

// State returns the derived lifecycle state.
func (l *Lockup) State() State {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return StateOf(&l.rec)
}

// VestedAmount returns the amount vested as of now.
func (l *Lockup) VestedAmount() *uint256.Int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return VestedAmount(&l.rec, l.Clock.Now())
}

// ReleasableAmount returns the amount claimable as of now.
func (l *Lockup) ReleasableAmount() *uint256.Int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return ReleasableAmount(&l.rec, l.Clock.Now())
}

// VestingProgress returns the elapsed share of the schedule, 0..100.
func (l *Lockup) VestingProgress() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return VestingProgress(&l.rec, l.Clock.Now())
}

// RemainingVestingTime returns the time left until fully vested.
func (l *Lockup) RemainingVestingTime() time.Duration {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return RemainingVestingTime(&l.rec, l.Clock.Now())
}
