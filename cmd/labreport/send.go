package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"labreport/internal/credentials"
	"labreport/internal/mailer"
	"labreport/internal/models"
	"labreport/internal/pipeline"
	"labreport/internal/sheet"
)

var (
	sendModule string
	sendDryRun bool
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Preview and send lab reports for one module",
	Long: `Build the dispatch plan for a module sheet, print it, and send the
ready reports after a yes/no confirmation. --dry-run stops after the
preview and touches nothing.`,
	RunE: runSend,
}

func init() {
	sendCmd.Flags().StringVarP(&sendModule, "module", "m", "", "module sheet name (prompted when omitted)")
	sendCmd.Flags().BoolVar(&sendDryRun, "dry-run", false, "preview the plan without sending")
}

func runSend(cmd *cobra.Command, args []string) error {
	module := sendModule
	if module == "" {
		var err error
		if module, err = chooseModule(cfg.GradingFile); err != nil {
			return err
		}
	}

	plan, err := buildPlan(module)
	if err != nil {
		return err
	}
	printPlan(module, plan)

	if len(plan.Ready) == 0 {
		fmt.Println("No emails to send!")
		return nil
	}
	if sendDryRun {
		return nil
	}

	if !confirm("\nDo you want to send these emails? (yes/no): ") {
		fmt.Println("Sending cancelled.")
		return nil
	}

	creds, err := loadOrSetupCredentials(credentials.NewFileStore(cfg.CredentialsFile))
	if err != nil {
		return err
	}
	transport, err := mailer.NewSMTPTransport(creds)
	if err != nil {
		return err
	}

	fmt.Printf("\nSending %d emails via %s...\n\n", len(plan.Ready), creds.Host)
	results := mailer.SendBatch(transport, plan.Ready, logger)
	printResults(results)
	return nil
}

func buildPlan(module string) (pipeline.Plan, error) {
	roster, err := sheet.LoadRoster(cfg.RosterFile, cfg.RosterSheet)
	if err != nil {
		return pipeline.Plan{}, err
	}
	fmt.Printf("Loaded %d NSPs\n", len(roster))

	rows, err := sheet.LoadGrading(cfg.GradingFile, module)
	if err != nil {
		return pipeline.Plan{}, err
	}
	fmt.Printf("Loaded %d grading records\n", len(rows))

	return pipeline.Build(rows, roster), nil
}

func printPlan(module string, plan pipeline.Plan) {
	rule := strings.Repeat("=", 80)

	fmt.Printf("\n%s\nEMAIL PREVIEW - %s\n%s\n\n", rule, module, rule)
	for i, job := range plan.Ready {
		fmt.Printf("[%d] To: %s <%s>\n", i+1, job.ToName, job.To)
		fmt.Printf("    Subject: %s\n\n", job.Subject)
	}

	fmt.Printf("%s\nSUMMARY\n%s\n", rule, rule)
	fmt.Printf("Emails to send: %d\n", len(plan.Ready))

	if n := len(plan.SkippedIncomplete); n > 0 {
		fmt.Printf("\nSkipped (incomplete grades): %d\n", n)
		for _, s := range head(plan.SkippedIncomplete, 10) {
			fmt.Printf("  - %s: %s\n", s.Name, s.Reason)
		}
		if n > 10 {
			fmt.Printf("  ... and %d more\n", n-10)
		}
	}
	if n := len(plan.SkippedUnmatched); n > 0 {
		fmt.Printf("\nSkipped (no email address): %d\n", n)
		fmt.Printf("  Students: %s\n", strings.Join(head(plan.SkippedUnmatched, 5), ", "))
		if n > 5 {
			fmt.Printf("  ... and %d more\n", n-5)
		}
	}
	fmt.Printf("%s\n", rule)
}

func printResults(results []models.SendResult) {
	for _, r := range results {
		if r.Err != nil {
			fmt.Printf("[FAILED] %s (%s): %v\n", r.Job.ToName, r.Job.To, r.Err)
		} else {
			fmt.Printf("[OK] Sent to %s (%s)\n", r.Job.ToName, r.Job.To)
		}
	}
	fmt.Printf("\nSending complete! Sent: %d/%d\n", mailer.Sent(results), len(results))
}

func head[T any](s []T, n int) []T {
	if len(s) < n {
		return s
	}
	return s[:n]
}
