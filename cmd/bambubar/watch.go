package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/five82/bambubar/internal/ui"
)

func init() {
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Show live printer status in the terminal",
	RunE:  runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	a, _, closer, err := bootstrap(false)
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, cancel := signalContext()
	defer cancel()

	if err := a.RunWatch(ctx); err != nil && !errors.Is(err, ui.ErrSetupCanceled) {
		return err
	}
	return nil
}
