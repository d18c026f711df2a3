package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Build info (set via ldflags).
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"

	// Global flags.
	logLevel   string
	logFormat  string
	configPath string
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	rootCmd := &cobra.Command{
		Use:   "clubhouse",
		Short: "Command-line client for the Clubhouse API",
		Long: `clubhouse manages milestones and epics from the terminal.

Credentials come from a YAML config file or the CLUBHOUSE_API_TOKEN
environment variable; a .env file in the working directory is loaded
automatically.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Missing .env files are fine; explicit config problems are not.
			_ = godotenv.Load()

			level, err := logrus.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			log.SetLevel(level)

			switch logFormat {
			case "json":
				log.SetFormatter(&logrus.JSONFormatter{})
			default:
				log.SetFormatter(&logrus.TextFormatter{
					FullTimestamp: true,
				})
			}

			return nil
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn",
		"Log level (trace, debug, info, warn, error, fatal)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"Log format (text, json)")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath,
		"Path to configuration file")

	rootCmd.AddCommand(
		newMilestonesCmd(log),
		newEpicsCmd(log),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
