package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/bambubar/internal/ui"
)

func init() {
	rootCmd.AddCommand(setupCmd)
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Enter the printer address, serial number and access code",
	RunE:  runSetup,
}

func runSetup(cmd *cobra.Command, args []string) error {
	a, cfg, closer, err := bootstrap(false)
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, cancel := signalContext()
	defer cancel()

	if err := a.Setup(ctx); err != nil {
		if errors.Is(err, ui.ErrSetupCanceled) {
			fmt.Fprintln(cmd.OutOrStdout(), "Setup cancelled; nothing saved.")
			return nil
		}
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved printer settings to %s\n", cfg.PrinterPath)
	return nil
}
