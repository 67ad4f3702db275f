// Package root contains the root command for the application
package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"receiptcsv/receipt-csv/internal/config"
	"receiptcsv/receipt-csv/internal/container"
	"receiptcsv/receipt-csv/internal/export"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the resolved application configuration, populated in
	// PersistentPreRunE before any subcommand executes.
	Cfg *config.Config

	// App is the wired dependency container, populated alongside Cfg.
	App *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "receipt-csv",
		Short: "A CLI tool to turn OCR receipt text into structured, categorized expense records.",
		Long: `receipt-csv parses raw OCR text from Japanese retail receipts into
structured expense records (store, total, items, date) with a confidence
score, resolves expense categories through a tiered classifier, and exports
the results to CSV.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to receipt-csv!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			cfg, err := config.InitializeConfig()
			if err != nil {
				return err
			}
			Cfg = cfg

			app, err := container.NewContainer(cfg)
			if err != nil {
				return err
			}
			App = app

			export.SetLogger(app.Logger())
			if cfg.CSV.Delimiter != "" {
				export.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])
			}
			return nil
		},
	}

	// SharedFlags are common flags accessible to all commands
	SharedFlags = CommonFlags{}

	// Specific classify command flags
	Description string
	UserID      string

	// Specific batch command flags
	InputDir  string
	OutputDir string
	FromCSV   string
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
}
