package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/holiman/uint256"

	"github.com/pflow-xyz/go-vesting/ledger"
	"github.com/pflow-xyz/go-vesting/vesting"
)

func simulate(args []string) error {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	total := fs.String("total", "12000", "Total locked amount (decimal)")
	cliff := fs.Duration("cliff", 0, "Cliff duration")
	duration := fs.Duration("duration", 12*time.Hour, "Vesting duration")
	steps := fs.Int("steps", 12, "Number of sample points across the schedule")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: vestctl simulate [options]

Project vested and releasable amounts over a vesting schedule. Pure
calculation: no ledger, no store.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # One year with a 90-day cliff
  vestctl simulate --total 1000000 --cliff 2160h --duration 8760h

  # Finer sampling
  vestctl simulate --duration 24h --steps 24
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *steps < 1 {
		return fmt.Errorf("steps must be >= 1")
	}

	amount, err := uint256.FromDecimal(*total)
	if err != nil {
		return fmt.Errorf("parse total: %w", err)
	}

	start := time.Now().UTC().Truncate(time.Second)
	rec := &vesting.LockupRecord{
		Beneficiary:     ledger.Address("beneficiary"),
		TotalAmount:     amount,
		ReleasedAmount:  new(uint256.Int),
		StartTime:       start,
		CliffDuration:   *cliff,
		VestingDuration: *duration,
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ELAPSED\tVESTED\tPROGRESS\tREMAINING")
	for i := 0; i <= *steps; i++ {
		elapsed := time.Duration(int64(*duration) * int64(i) / int64(*steps))
		now := start.Add(elapsed)
		fmt.Fprintf(w, "%v\t%s\t%d%%\t%v\n",
			elapsed,
			vesting.VestedAmount(rec, now).Dec(),
			vesting.VestingProgress(rec, now),
			vesting.RemainingVestingTime(rec, now))
	}
	return w.Flush()
}
