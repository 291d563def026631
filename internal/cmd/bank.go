package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"hourbank/internal/ui"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Show or spend the banked-hours balance",
	RunE:  runBankShow,
}

var bankShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the banked balance and recent deductions",
	RunE:  runBankShow,
}

var bankUseReason string

var bankUseCmd = &cobra.Command{
	Use:   "use HOURS",
	Short: "Spend banked hours (time off against the balance)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hours, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid hours %q", args[0])
		}
		eng, cleanup, err := newEngine(printNotifier)
		if err != nil {
			return err
		}
		defer cleanup()
		return eng.UseBankedHours(hours, bankUseReason)
	},
}

var (
	bankAccrueDate string
	bankAccrueNote string
)

var bankAccrueCmd = &cobra.Command{
	Use:   "accrue HOURS",
	Short: "Deduct hours already granted elsewhere (time accrued)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hours, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid hours %q", args[0])
		}
		eng, cleanup, err := newEngine(printNotifier)
		if err != nil {
			return err
		}
		defer cleanup()
		return eng.LogTimeAccrued(hours, bankAccrueDate, bankAccrueNote)
	},
}

func runBankShow(cmd *cobra.Command, args []string) error {
	eng, cleanup, err := newEngine(printNotifier)
	if err != nil {
		return err
	}
	defer cleanup()

	banked, err := eng.Banked()
	if err != nil {
		return err
	}

	fmt.Printf("Banked balance: %s h\n", ui.FormatSigned(banked.Balance))

	if len(banked.Log) == 0 {
		return nil
	}
	fmt.Println("\nRecent deductions")
	fmt.Println(strings.Repeat("-", 44))
	start := len(banked.Log) - 5
	if start < 0 {
		start = 0
	}
	for i := len(banked.Log) - 1; i >= start; i-- {
		entry := banked.Log[i]
		reason := entry.Reason
		if reason != "" {
			reason = "  " + reason
		}
		fmt.Printf("%-12s -%.1fh%s\n", entry.Date, entry.Hours, reason)
	}
	return nil
}

func init() {
	bankUseCmd.Flags().StringVar(&bankUseReason, "reason", "", "why the hours are being used")
	bankAccrueCmd.Flags().StringVar(&bankAccrueDate, "date", "", "day the accrual applies to, YYYY-MM-DD (default today)")
	bankAccrueCmd.Flags().StringVar(&bankAccrueNote, "note", "", "free-form note for the deduction")

	bankCmd.AddCommand(bankShowCmd, bankUseCmd, bankAccrueCmd)
	rootCmd.AddCommand(bankCmd)
}
