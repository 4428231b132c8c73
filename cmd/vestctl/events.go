package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/pflow-xyz/go-vesting/eventlog"
)

func events(args []string) error {
	fs := flag.NewFlagSet("events", flag.ExitOnError)
	stream := fs.String("stream", "", "Lockup stream ID (default: all streams)")
	format := fs.String("format", "table", "Output format: table, csv or jsonl")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: vestctl events [options]

List recorded lifecycle events from the event store (VESTCTL_STORE).

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # All streams as a table
  vestctl events

  # One stream exported for audit tooling
  vestctl events -stream 9f2c... -format csv > audit.csv
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	streamIDs := []string{*stream}
	if *stream == "" {
		streamIDs, err = store.Streams(ctx)
		if err != nil {
			return fmt.Errorf("list streams: %w", err)
		}
	}

	var entries []eventlog.Entry
	for _, id := range streamIDs {
		evs, err := store.Read(ctx, id, 0)
		if err != nil {
			return fmt.Errorf("read stream %s: %w", id, err)
		}
		entries = append(entries, eventlog.FromStream(evs)...)
	}

	switch *format {
	case "table":
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "STREAM\tACTIVITY\tTIMESTAMP\tACTOR\tAMOUNT")
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				e.CaseID, e.Activity, e.Timestamp.Format(time.RFC3339), e.Resource, e.Amount)
		}
		return w.Flush()
	case "csv":
		return eventlog.WriteCSV(os.Stdout, entries)
	case "jsonl":
		return eventlog.WriteJSONL(os.Stdout, entries)
	default:
		return fmt.Errorf("unknown format: %s", *format)
	}
}
