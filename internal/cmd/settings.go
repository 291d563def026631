package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change tracker settings",
	RunE:  runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Change a setting: target, lunch, or notifications",
	Long: `Change one setting.

  hourbank settings set target 7.6        daily target in hours
  hourbank settings set lunch 45          lunch break in minutes
  hourbank settings set notifications off advisory messages on/off

Changing the target recomputes the banked balance for all past days.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, cleanup, err := newEngine(printNotifier)
		if err != nil {
			return err
		}
		defer cleanup()

		key, value := args[0], args[1]
		switch key {
		case "target":
			hours, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return fmt.Errorf("invalid target %q", value)
			}
			return eng.SetTargetHours(hours)
		case "lunch":
			minutes, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("invalid lunch duration %q", value)
			}
			return eng.SetLunchDuration(minutes)
		case "notifications":
			switch value {
			case "on", "true":
				return eng.SetNotificationsEnabled(true)
			case "off", "false":
				return eng.SetNotificationsEnabled(false)
			default:
				return fmt.Errorf("invalid value %q, use on or off", value)
			}
		default:
			return fmt.Errorf("unknown setting %q, use target, lunch, or notifications", key)
		}
	},
}

func runSettingsShow(cmd *cobra.Command, args []string) error {
	eng, cleanup, err := newEngine(printNotifier)
	if err != nil {
		return err
	}
	defer cleanup()

	s := eng.Settings()
	fmt.Printf("%-16s %.1f h/day\n", "target:", s.TargetHours)
	fmt.Printf("%-16s %d min\n", "lunch:", s.LunchDuration)
	fmt.Printf("%-16s %v\n", "notifications:", s.NotificationsEnabled)
	return nil
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd, settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}
