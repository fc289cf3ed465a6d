package main

import (
	"github.com/spf13/cobra"

	"github.com/five82/bambubar/internal/prompt"
)

func init() {
	rootCmd.AddCommand(trayCmd)
}

var trayCmd = &cobra.Command{
	Use:   "tray",
	Short: "Show printer status in the menu bar (default)",
	RunE:  runTray,
}

func runTray(cmd *cobra.Command, args []string) error {
	a, _, closer, err := bootstrap(false)
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, cancel := signalContext()
	defer cancel()

	return a.RunTray(ctx, prompt.New())
}
