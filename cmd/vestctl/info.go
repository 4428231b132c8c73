package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pflow-xyz/go-vesting/vesting"
)

func info(args []string) error {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	stream := fs.String("stream", "", "Lockup stream ID (required)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: vestctl info -stream <id>

Replay a lockup's recorded event stream and print the reconstructed
record, with vested/releasable amounts as of now.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *stream == "" {
		fs.Usage()
		return fmt.Errorf("-stream required")
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	rec, err := vesting.Replay(context.Background(), store, *stream)
	if err != nil {
		return fmt.Errorf("replay stream: %w", err)
	}
	if !rec.Exists() {
		return fmt.Errorf("stream %s holds no lockup", *stream)
	}

	printRecord(*stream, rec, time.Now().UTC())
	return nil
}

func printRecord(streamID string, rec *vesting.LockupRecord, now time.Time) {
	fmt.Printf("Lockup %s\n", streamID)
	fmt.Printf("  state:         %s\n", vesting.StateOf(rec))
	fmt.Printf("  beneficiary:   %s\n", rec.Beneficiary)
	fmt.Printf("  total:         %s\n", rec.TotalAmount.Dec())
	fmt.Printf("  released:      %s\n", rec.ReleasedAmount.Dec())
	fmt.Printf("  start:         %s\n", rec.StartTime.Format(time.RFC3339))
	fmt.Printf("  cliff:         %v\n", rec.CliffDuration)
	fmt.Printf("  duration:      %v\n", rec.VestingDuration)
	fmt.Printf("  revocable:     %v\n", rec.Revocable)
	if rec.Revoked {
		fmt.Printf("  revoked:       true (frozen at %s)\n", rec.VestedAtRevoke.Dec())
	}
	fmt.Printf("  vested now:    %s\n", vesting.VestedAmount(rec, now).Dec())
	fmt.Printf("  releasable:    %s\n", vesting.ReleasableAmount(rec, now).Dec())
	fmt.Printf("  progress:      %d%%\n", vesting.VestingProgress(rec, now))
	fmt.Printf("  remaining:     %v\n", vesting.RemainingVestingTime(rec, now))
}
