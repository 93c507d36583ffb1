package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"labreport/internal/config"
)

var (
	cfg     config.Config
	logger  *zap.Logger
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "labreport",
	Short: "Send graded lab reports to NSPs by email",
	Long: `labreport reconciles a lab grading workbook against the NSP roster,
renders an HTML grade report per student with a finished evaluation, and
sends the reports over SMTP after an explicit confirmation.

Rows with an incomplete grade or a name that cannot be matched to a
roster address are reported in the preview and skipped.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load(".env")
		cfg = config.Load()

		zcfg := zap.NewDevelopmentConfig()
		if !verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable info-level logging")
	rootCmd.AddCommand(sendCmd, singleCmd, credentialsCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
