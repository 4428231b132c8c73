package vesting

import (
	"testing"
	"time"

	"github.com/holiman/uint256"

	"github.com/pflow-xyz/go-vesting/ledger"
)

var testStart = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestRecord(total uint64, cliff, duration time.Duration) *LockupRecord {
	return &LockupRecord{
		Beneficiary:     ledger.Address("bob"),
		TotalAmount:     uint256.NewInt(total),
		ReleasedAmount:  new(uint256.Int),
		StartTime:       testStart,
		CliffDuration:   cliff,
		VestingDuration: duration,
	}
}

func TestVestedAmountBeforeCliff(t *testing.T) {
	rec := newTestRecord(1000, 6*time.Hour, 12*time.Hour)

	for _, elapsed := range []time.Duration{0, time.Second, 3 * time.Hour, 6*time.Hour - time.Nanosecond} {
		got := VestedAmount(rec, testStart.Add(elapsed))
		if !got.IsZero() {
			t.Errorf("VestedAmount at %v = %s, want 0", elapsed, got.Dec())
		}
	}
}

func TestVestedAmountAtAndPastEnd(t *testing.T) {
	rec := newTestRecord(12000, 0, 12*time.Hour)

	for _, elapsed := range []time.Duration{12 * time.Hour, 13 * time.Hour, 120 * time.Hour} {
		got := VestedAmount(rec, testStart.Add(elapsed))
		if !got.Eq(rec.TotalAmount) {
			t.Errorf("VestedAmount at %v = %s, want %s", elapsed, got.Dec(), rec.TotalAmount.Dec())
		}
	}
}

func TestVestedAmountLinear(t *testing.T) {
	// Scenario: 12000 over 12 periods, no cliff.
	rec := newTestRecord(12000, 0, 12*time.Hour)

	tests := []struct {
		elapsed time.Duration
		want    uint64
	}{
		{time.Hour, 1000},
		{3 * time.Hour, 3000},
		{6 * time.Hour, 6000},
		{9 * time.Hour, 9000},
		{11 * time.Hour, 11000},
	}
	for _, tc := range tests {
		got := VestedAmount(rec, testStart.Add(tc.elapsed))
		if got.Uint64() != tc.want {
			t.Errorf("VestedAmount at %v = %s, want %d", tc.elapsed, got.Dec(), tc.want)
		}
	}
}

func TestVestedAmountNonDecreasing(t *testing.T) {
	rec := newTestRecord(999983, 2*time.Hour, 11*time.Hour)

	prev := new(uint256.Int)
	for elapsed := time.Duration(0); elapsed <= 12*time.Hour; elapsed += 7 * time.Minute {
		got := VestedAmount(rec, testStart.Add(elapsed))
		if got.Lt(prev) {
			t.Fatalf("VestedAmount decreased at %v: %s < %s", elapsed, got.Dec(), prev.Dec())
		}
		prev = got
	}
}

func TestVestedAmountRevokedFrozen(t *testing.T) {
	rec := newTestRecord(12000, 0, 12*time.Hour)
	atRevoke := VestedAmount(rec, testStart.Add(6*time.Hour))
	rec.Revoked = true
	rec.VestedAtRevoke = atRevoke.Clone()

	for _, elapsed := range []time.Duration{6 * time.Hour, 9 * time.Hour, 12 * time.Hour, 1000 * time.Hour} {
		got := VestedAmount(rec, testStart.Add(elapsed))
		if !got.Eq(atRevoke) {
			t.Errorf("VestedAmount at %v after revoke = %s, want frozen %s", elapsed, got.Dec(), atRevoke.Dec())
		}
	}
}

func TestVestedAmountTenYearSchedule(t *testing.T) {
	// One billion units over ten years; one elapsed year vests exactly 10%.
	year := 365 * 24 * time.Hour
	rec := newTestRecord(1_000_000_000, 0, 10*year)

	got := VestedAmount(rec, testStart.Add(year))
	if got.Uint64() != 100_000_000 {
		t.Errorf("VestedAmount after 1y = %s, want 100000000", got.Dec())
	}
}

func TestVestedAmountWideIntermediate(t *testing.T) {
	// A total near 2^255 overflows the 256-bit product and must take the
	// widened path. Half the schedule vests exactly half the total.
	total := new(uint256.Int).Lsh(uint256.NewInt(1), 255)
	rec := &LockupRecord{
		Beneficiary:     ledger.Address("bob"),
		TotalAmount:     total,
		ReleasedAmount:  new(uint256.Int),
		StartTime:       testStart,
		VestingDuration: 10 * 365 * 24 * time.Hour,
	}

	want := new(uint256.Int).Lsh(uint256.NewInt(1), 254)
	got := VestedAmount(rec, testStart.Add(5*365*24*time.Hour))
	if !got.Eq(want) {
		t.Errorf("VestedAmount at midpoint = %s, want %s", got.Dec(), want.Dec())
	}
}

func TestReleasableAmount(t *testing.T) {
	rec := newTestRecord(12000, 0, 12*time.Hour)
	rec.ReleasedAmount = uint256.NewInt(2500)

	got := ReleasableAmount(rec, testStart.Add(6*time.Hour))
	if got.Uint64() != 3500 {
		t.Errorf("ReleasableAmount = %s, want 3500", got.Dec())
	}

	// Nothing claimable before the cliff even with zero released.
	rec2 := newTestRecord(1000, 6*time.Hour, 12*time.Hour)
	if got := ReleasableAmount(rec2, testStart.Add(3*time.Hour)); !got.IsZero() {
		t.Errorf("ReleasableAmount during cliff = %s, want 0", got.Dec())
	}
}

func TestVestingProgress(t *testing.T) {
	rec := newTestRecord(1000, 6*time.Hour, 12*time.Hour)

	tests := []struct {
		elapsed time.Duration
		want    int
	}{
		{-time.Hour, 0},
		{0, 0},
		{3 * time.Hour, 25}, // cliff is ignored
		{6 * time.Hour, 50},
		{9 * time.Hour, 75},
		{10*time.Hour + 48*time.Minute, 90},
		{12 * time.Hour, 100},
		{24 * time.Hour, 100},
	}
	for _, tc := range tests {
		if got := VestingProgress(rec, testStart.Add(tc.elapsed)); got != tc.want {
			t.Errorf("VestingProgress at %v = %d, want %d", tc.elapsed, got, tc.want)
		}
	}
}

func TestVestingProgressFloors(t *testing.T) {
	rec := newTestRecord(1000, 0, 3*time.Hour)
	// 59m59s of 3h is 33.32..%, floor 33.
	if got := VestingProgress(rec, testStart.Add(time.Hour-time.Second)); got != 33 {
		t.Errorf("VestingProgress = %d, want 33", got)
	}
}

func TestRemainingVestingTime(t *testing.T) {
	rec := newTestRecord(1000, 0, 12*time.Hour)

	tests := []struct {
		elapsed time.Duration
		want    time.Duration
	}{
		{0, 12 * time.Hour},
		{5 * time.Hour, 7 * time.Hour},
		{12 * time.Hour, 0},
		{15 * time.Hour, 0},
	}
	for _, tc := range tests {
		if got := RemainingVestingTime(rec, testStart.Add(tc.elapsed)); got != tc.want {
			t.Errorf("RemainingVestingTime at %v = %v, want %v", tc.elapsed, got, tc.want)
		}
	}
}

func TestCalculatorEmptyRecord(t *testing.T) {
	rec := &LockupRecord{}

	if got := VestedAmount(rec, testStart); !got.IsZero() {
		t.Errorf("VestedAmount on empty record = %s, want 0", got.Dec())
	}
	if got := VestingProgress(rec, testStart); got != 0 {
		t.Errorf("VestingProgress on empty record = %d, want 0", got)
	}
	if got := RemainingVestingTime(rec, testStart); got != 0 {
		t.Errorf("RemainingVestingTime on empty record = %v, want 0", got)
	}
}
