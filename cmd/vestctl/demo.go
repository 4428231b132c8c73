package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/holiman/uint256"

	"github.com/pflow-xyz/go-vesting/access"
	"github.com/pflow-xyz/go-vesting/ledger"
	"github.com/pflow-xyz/go-vesting/vesting"
)

// demo drives a complete lockup lifecycle against an in-memory ledger,
// recording events to the configured store so they can be inspected with
// 'vestctl events' and 'vestctl info'.
func demo(args []string) error {
	fs := flag.NewFlagSet("demo", flag.ExitOnError)
	total := fs.String("total", "12000", "Total locked amount (decimal)")
	cliff := fs.Duration("cliff", 0, "Cliff duration")
	duration := fs.Duration("duration", 12*time.Hour, "Vesting duration")
	revoke := fs.Bool("revoke", false, "Revoke the lockup at the midpoint after releasing")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: vestctl demo [options]

Run create -> release -> (optional) revoke against a fresh in-memory
token ledger, advancing a simulated clock to the schedule midpoint.
Lifecycle events are appended to the event store (VESTCTL_STORE).

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	amount, err := uint256.FromDecimal(*total)
	if err != nil {
		return fmt.Errorf("parse total: %w", err)
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	const (
		ownerAddr       = ledger.Address("owner")
		beneficiaryAddr = ledger.Address("beneficiary")
		tokenAddr       = ledger.Address("token:demo")
	)

	reg := ledger.NewRegistry()
	token := ledger.NewFungibleToken("Demo Token", "DEMO")
	if err := reg.Deploy(tokenAddr, token); err != nil {
		return err
	}
	if err := token.Mint(ownerAddr, amount); err != nil {
		return err
	}

	owner, err := access.NewSingleOwner(ownerAddr)
	if err != nil {
		return err
	}
	lockup, err := vesting.New(reg, tokenAddr, owner)
	if err != nil {
		return err
	}
	clock := vesting.NewManualClock(time.Now().UTC().Truncate(time.Second))
	lockup.Clock = clock
	lockup.Events = store
	lockup.Logger = logger

	if err := token.Approve(ownerAddr, lockup.Addr(), amount); err != nil {
		return err
	}

	ctx := context.Background()
	if err := lockup.CreateLockup(ctx, ownerAddr, beneficiaryAddr, amount, *cliff, *duration, *revoke); err != nil {
		return fmt.Errorf("create lockup: %w", err)
	}
	logger.Info("lockup created",
		"stream", lockup.ID(), "total", amount.Dec(),
		"cliff", *cliff, "duration", *duration, "revocable", *revoke)

	clock.Advance(*duration / 2)
	if err := lockup.Release(ctx); err != nil {
		return fmt.Errorf("release: %w", err)
	}
	logger.Info("released at midpoint",
		"beneficiary_balance", token.BalanceOf(beneficiaryAddr).Dec(),
		"progress", lockup.VestingProgress())

	if *revoke {
		if err := lockup.Revoke(ctx); err != nil {
			return fmt.Errorf("revoke: %w", err)
		}
		logger.Info("revoked at midpoint",
			"owner_balance", token.BalanceOf(ownerAddr).Dec())
	}

	printRecord(lockup.ID(), lockup.LockupInfo(), clock.Now())
	fmt.Printf("\nInspect the recorded stream with:\n  vestctl events -stream %s\n  vestctl info -stream %s\n", lockup.ID(), lockup.ID())
	return nil
}
