package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/five82/bambubar/internal/bambu"
	"github.com/five82/bambubar/internal/display"
)

func init() {
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Poll the printer once and print its status",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	a, _, closer, err := bootstrap(true)
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, cancel := signalContext()
	defer cancel()

	snap, err := a.Status(ctx)
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, display.Title(snap))
	for _, line := range display.Details(snap, time.Now()) {
		fmt.Fprintf(out, "  %s\n", line)
	}
	if errors.Is(err, bambu.ErrNotConfigured) {
		return fmt.Errorf("%w; run `bambubar setup`", err)
	}
	return err
}
