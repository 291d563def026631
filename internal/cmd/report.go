package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"hourbank/internal/dateutil"
	"hourbank/internal/tracker"
	"hourbank/internal/ui"
)

var reportRange string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show a report for today or the current week",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, cleanup, err := newEngine(printNotifier)
		if err != nil {
			return err
		}
		defer cleanup()

		switch reportRange {
		case "today":
			return reportToday(eng)
		case "week":
			return reportWeek(eng)
		default:
			return fmt.Errorf("unknown range %q, use today or week", reportRange)
		}
	},
}

func reportToday(eng *tracker.Engine) error {
	st, err := eng.Status()
	if err != nil {
		return err
	}
	sessions, err := eng.TodaySessions()
	if err != nil {
		return err
	}

	fmt.Printf("Report for %s\n", st.TodayKey)
	fmt.Println(strings.Repeat("-", 52))

	if len(sessions) == 0 && st.Elapsed == 0 {
		fmt.Println("No sessions recorded.")
	}
	for _, s := range sessions {
		note := s.Note
		if note != "" {
			note = "  " + note
		}
		fmt.Printf("%-8s %-7s %5.1fh%s\n", s.Start.Format("15:04"), s.Type, s.Hours, note)
	}
	if st.Elapsed > 0 {
		fmt.Printf("%-8s %-7s %5.1fh  (in progress)\n", "now", "timer", st.Elapsed.Hours())
	}

	fmt.Println(strings.Repeat("-", 52))
	fmt.Printf("%-16s %.1f / %.1f h  %s\n", "Total:", st.TodayTotal, st.TargetHours,
		percentOfTarget(st.TodayTotal, st.TargetHours))
	return nil
}

func reportWeek(eng *tracker.Engine) error {
	st, err := eng.Status()
	if err != nil {
		return err
	}
	dates, err := dateutil.WeekDates(st.WeekStart)
	if err != nil {
		return err
	}

	fmt.Printf("Week %s\n", dateutil.FormatWeekRange(st.WeekStart))
	fmt.Println(strings.Repeat("-", 52))

	for _, d := range dates {
		worked, err := eng.TotalForDay(d)
		if err != nil {
			return err
		}
		if d == st.TodayKey {
			worked = st.TodayTotal
		}

		label := dateutil.FormatDate(d)

		var mark string
		switch {
		case d == st.TodayKey:
			mark = "today"
		case d > st.TodayKey:
			mark = "-"
		case worked >= st.TargetHours:
			mark = "done"
		default:
			mark = "short"
		}

		diff := ""
		if d <= st.TodayKey {
			diff = ui.FormatSigned(worked-st.TargetHours) + "h"
		}
		fmt.Printf("%-10s %5.1fh   %-6s %s\n", label, worked, mark, diff)
	}

	fmt.Println(strings.Repeat("-", 52))
	fmt.Printf("%-16s %.1f h\n", "Worked:", st.WeekWorked)
	fmt.Printf("%-16s %.1f h\n", "Target so far:", st.WeekTarget)
	fmt.Printf("%-16s %s h\n", "Balance:", ui.FormatSigned(st.WeekBalance))
	fmt.Printf("%-16s %s h\n", "Banked:", ui.FormatSigned(st.BankedBalance))

	banked, err := eng.Banked()
	if err != nil {
		return err
	}
	var inWeek []string
	for _, entry := range banked.Log {
		if entry.Date >= dates[0] && entry.Date <= dates[len(dates)-1] {
			reason := entry.Reason
			if reason != "" {
				reason = "  " + reason
			}
			inWeek = append(inWeek, fmt.Sprintf("%-12s -%.1fh%s", entry.Date, entry.Hours, reason))
		}
	}
	if len(inWeek) > 0 {
		fmt.Println("\nBanked deductions this week")
		fmt.Println(strings.Repeat("-", 52))
		for _, line := range inWeek {
			fmt.Println(line)
		}
	}
	return nil
}

func percentOfTarget(worked, target float64) string {
	if target <= 0 {
		return ""
	}
	return fmt.Sprintf("(%d%%)", int(worked/target*100))
}

func init() {
	reportCmd.Flags().StringVar(&reportRange, "range", "today", "report range: today or week")
	rootCmd.AddCommand(reportCmd)
}
