package vesting

import (
	"context"
	"fmt"
	"time"

	"github.com/holiman/uint256"

	"github.com/pflow-xyz/go-vesting/eventsource"
	"github.com/pflow-xyz/go-vesting/ledger"
)

// Replay rebuilds a LockupRecord snapshot from a recorded lifecycle
// stream. The returned record reflects the state immediately after the
// last recorded event; it is a read model only and carries no token
// holdings.
func Replay(ctx context.Context, store eventsource.Store, streamID string) (*LockupRecord, error) {
	events, err := store.Read(ctx, streamID, 0)
	if err != nil {
		return nil, err
	}

	rec := &LockupRecord{}
	for _, ev := range events {
		if err := applyEvent(rec, ev); err != nil {
			return nil, fmt.Errorf("event %d (%s): %w", ev.Version, ev.Type, err)
		}
	}
	return rec, nil
}

func applyEvent(rec *LockupRecord, ev *eventsource.Event) error {
	switch ev.Type {
	case EventLockupCreated:
		var p LockupCreatedPayload
		if err := ev.Unmarshal(&p); err != nil {
			return err
		}
		total, err := uint256.FromDecimal(p.TotalAmount)
		if err != nil {
			return fmt.Errorf("total amount: %w", err)
		}
		*rec = LockupRecord{
			Beneficiary:     ledger.Address(p.Beneficiary),
			TotalAmount:     total,
			ReleasedAmount:  new(uint256.Int),
			StartTime:       p.StartTime,
			CliffDuration:   time.Duration(p.CliffNanos),
			VestingDuration: time.Duration(p.VestingNanos),
			Revocable:       p.Revocable,
		}

	case EventTokensReleased:
		var p TokensReleasedPayload
		if err := ev.Unmarshal(&p); err != nil {
			return err
		}
		amount, err := uint256.FromDecimal(p.Amount)
		if err != nil {
			return fmt.Errorf("amount: %w", err)
		}
		if !rec.Exists() {
			return fmt.Errorf("release before creation")
		}
		rec.ReleasedAmount.Add(rec.ReleasedAmount, amount)

	case EventLockupRevoked:
		var p LockupRevokedPayload
		if err := ev.Unmarshal(&p); err != nil {
			return err
		}
		vested, err := uint256.FromDecimal(p.VestedAtRevoke)
		if err != nil {
			return fmt.Errorf("vested at revoke: %w", err)
		}
		if !rec.Exists() {
			return fmt.Errorf("revoke before creation")
		}
		rec.Revoked = true
		rec.VestedAtRevoke = vested

	default:
		return fmt.Errorf("unknown event type")
	}
	return nil
}
