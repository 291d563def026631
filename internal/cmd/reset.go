package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all sessions, banked hours, settings, and timer state",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetYes {
			return fmt.Errorf("this deletes all tracked data; re-run with --yes to confirm")
		}
		eng, cleanup, err := newEngine(printNotifier)
		if err != nil {
			return err
		}
		defer cleanup()
		return eng.Reset()
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "confirm deletion of all data")
	rootCmd.AddCommand(resetCmd)
}
