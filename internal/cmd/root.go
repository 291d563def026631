// Package cmd wires the command-line surface: the interactive dashboard
// as the default command plus one-shot subcommands for manual entry,
// banked hours, reports, and settings.
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"hourbank/internal/config"
	"hourbank/internal/logging"
	"hourbank/internal/store"
	"hourbank/internal/tracker"
	"hourbank/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   "hourbank",
	Short: "Personal work-hours tracker with banked overtime",
	Long: `Hourbank tracks daily work sessions with a live timer, computes the
weekly target-vs-actual balance, and banks accumulated overtime that can
be spent later against undertime.

Running hourbank with no arguments opens the interactive dashboard,
which hosts the timer. Subcommands cover manual entry, banked hours,
reports, and settings.`,
	RunE: runDashboard,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/hourbank/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func initConfig() {
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("HOURBANK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Missing config file is fine; defaults cover everything.
	_ = viper.ReadInConfig()
}

// newEngine builds the engine with the configured store and logger. The
// returned cleanup closes the log file.
func newEngine(notifier tracker.Notifier) (*tracker.Engine, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	st, err := store.Open(cfg.DataDir)
	if err != nil {
		return nil, nil, err
	}
	logger, closer, err := logging.New(cfg.LogPath(), cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	eng, err := tracker.New(st,
		tracker.WithLogger(logger),
		tracker.WithNotifier(notifier),
	)
	if err != nil {
		closer.Close()
		return nil, nil, err
	}
	return eng, func() { closer.Close() }, nil
}

// printNotifier renders advisory messages for one-shot commands.
func printNotifier(message string) {
	fmt.Println(message)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	msgs := make(chan string, 8)
	eng, cleanup, err := newEngine(func(message string) {
		select {
		case msgs <- message:
		default: // dashboard is behind; drop rather than block the engine
		}
	})
	if err != nil {
		return err
	}
	defer cleanup()

	return ui.Run(eng, msgs)
}

var dashCmd = &cobra.Command{
	Use:   "dash",
	Short: "Open the interactive dashboard (default)",
	RunE:  runDashboard,
}

func init() {
	rootCmd.AddCommand(dashCmd)
}
