package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/san-kum/lander/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	configFile string
	preset     string
	host       string
	fps        int
	policy     string
	dataDir    string
	logLevel   string
	logFile    string
	trace      bool
	speed      float64
)

// main registers the commands and runs the root command, which starts the
// configured host. It exits with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:          "lander",
		Short:        "lander input and frame driver",
		SilenceUsage: true,
		RunE:         runHost,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "start from a named preset")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "session data directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file")
	rootCmd.Flags().StringVar(&host, "host", config.DefaultHost, "host: tui, gui or web")
	rootCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
	rootCmd.Flags().StringVar(&policy, "touch-policy", "multi", "touch policy: multi or single")
	rootCmd.Flags().BoolVar(&trace, "trace", false, "record control events to the data directory")

	replayCmd := &cobra.Command{
		Use:   "replay [session_id]",
		Short: "replay a recorded session into a headless world",
		Args:  cobra.ExactArgs(1),
		RunE:  replaySession,
	}
	replayCmd.Flags().Float64Var(&speed, "speed", 1.0, "replay speed multiplier (0 = no waiting)")
	replayCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")

	sessionsCmd := &cobra.Command{
		Use:   "sessions",
		Short: "list recorded sessions",
		RunE:  listSessions,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration",
		RunE:  printConfig,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
		},
	}

	rootCmd.AddCommand(replayCmd, sessionsCmd, configCmd, presetsCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func listSessions(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	sessions, err := openStore(cfg).List()
	if err != nil {
		return err
	}

	if len(sessions) == 0 {
		fmt.Println("no sessions found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tHOST\tPOLICY\tSTARTED\tDURATION\tEVENTS")
	for _, s := range sessions {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2fs\t%d\n",
			s.ID,
			s.Host,
			s.Policy,
			s.Started.Format("2006-01-02 15:04:05"),
			s.Duration,
			s.NumEvents,
		)
	}
	return w.Flush()
}

func printConfig(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(out)
	return err
}
