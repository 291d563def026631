package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"hourbank/internal/dateutil"
)

var (
	addDate  string
	addStart string
	addEnd   string
	addLunch bool
	addNote  string
	addHours float64
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a manual work entry",
	Long: `Record a manual entry for a day, either as a clock-time range or as a
plain number of hours.

  hourbank add --start 08:00 --end 16:00 --lunch
  hourbank add --hours 2.5 --note "offsite workshop"
  hourbank add --date 2026-01-05 --start 09:00 --end 17:30`,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, cleanup, err := newEngine(printNotifier)
		if err != nil {
			return err
		}
		defer cleanup()

		if cmd.Flags().Changed("hours") {
			if cmd.Flags().Changed("start") || cmd.Flags().Changed("end") {
				return fmt.Errorf("--hours cannot be combined with --start/--end")
			}
			if cmd.Flags().Changed("date") {
				return fmt.Errorf("--hours records for today; use --start/--end for past days")
			}
			return eng.AddQuickHours(addHours, addNote)
		}

		date := addDate
		if date == "" {
			date = dateutil.Key(time.Now())
		}

		if addStart == "" || addEnd == "" {
			return fmt.Errorf("either --hours or both --start and --end are required")
		}
		_, err = eng.AddRange(date, addStart, addEnd, addLunch, addNote)
		return err
	},
}

func init() {
	addCmd.Flags().StringVar(&addDate, "date", "", "day to record, YYYY-MM-DD (default today)")
	addCmd.Flags().StringVar(&addStart, "start", "", "start of the range, HH:MM (24h)")
	addCmd.Flags().StringVar(&addEnd, "end", "", "end of the range, HH:MM (24h)")
	addCmd.Flags().BoolVar(&addLunch, "lunch", false, "deduct the configured lunch break from the range")
	addCmd.Flags().StringVar(&addNote, "note", "", "free-form note for the entry")
	addCmd.Flags().Float64Var(&addHours, "hours", 0, "record a plain number of hours instead of a range")

	rootCmd.AddCommand(addCmd)
}
