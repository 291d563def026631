package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"hourbank/internal/dateutil"
	"hourbank/internal/ui"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show today, this week, the timer, and the banked balance",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, cleanup, err := newEngine(printNotifier)
		if err != nil {
			return err
		}
		defer cleanup()

		st, err := eng.Status()
		if err != nil {
			return err
		}

		fmt.Printf("Today (%s)\n", st.TodayKey)
		fmt.Println(strings.Repeat("-", 44))
		fmt.Printf("%-18s %.1f / %.1f h\n", "Worked:", st.TodayTotal, st.TargetHours)

		timerLine := st.Phase.String()
		if st.Phase.String() != "idle" {
			timerLine += " (" + ui.FormatElapsed(st.Elapsed) + ")"
		}
		if st.OnLunch {
			timerLine += fmt.Sprintf(", lunch %s left", ui.HumanDuration(st.LunchRemaining))
		}
		fmt.Printf("%-18s %s\n", "Timer:", timerLine)

		fmt.Printf("\nWeek %s\n", dateutil.FormatWeekRange(st.WeekStart))
		fmt.Println(strings.Repeat("-", 44))
		fmt.Printf("%-18s %.1f h\n", "Worked:", st.WeekWorked)
		fmt.Printf("%-18s %.1f h\n", "Target so far:", st.WeekTarget)
		fmt.Printf("%-18s %s h\n", "Balance:", ui.FormatSigned(st.WeekBalance))
		fmt.Printf("%-18s %s h\n", "Banked:", ui.FormatSigned(st.BankedBalance))

		sessions, err := eng.TodaySessions()
		if err != nil {
			return err
		}
		if len(sessions) > 0 {
			fmt.Println("\nToday's sessions")
			fmt.Println(strings.Repeat("-", 44))
			for _, s := range sessions {
				note := s.Note
				if note != "" {
					note = "  " + note
				}
				fmt.Printf("%-8s %-7s %5.1fh%s\n", s.Start.Format("15:04"), s.Type, s.Hours, note)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
