package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"labreport/internal/credentials"
	"labreport/internal/mailer"
	"labreport/internal/models"
	"labreport/internal/report"
	"labreport/internal/sheet"
)

var (
	singleModule  string
	singleTo      string
	singleHTMLOut string
)

var singleCmd = &cobra.Command{
	Use:   "single",
	Short: "Send one student's report to a chosen address",
	Long: `Pick a single student from a module sheet and send their report to an
address of your choice. The subject is tagged [TEST] so the mail is
recognizable in an inbox. Useful for checking credentials and the HTML
layout before a real batch.`,
	RunE: runSingle,
}

func init() {
	singleCmd.Flags().StringVarP(&singleModule, "module", "m", "", "module sheet name (prompted when omitted)")
	singleCmd.Flags().StringVar(&singleTo, "to", "", "destination address (prompted when omitted)")
	singleCmd.Flags().StringVar(&singleHTMLOut, "html-out", "", "also write the rendered body to this file")
}

func runSingle(cmd *cobra.Command, args []string) error {
	module := singleModule
	if module == "" {
		var err error
		if module, err = chooseModule(cfg.GradingFile); err != nil {
			return err
		}
	}

	rows, err := sheet.LoadGrading(cfg.GradingFile, module)
	if err != nil {
		return err
	}

	row, err := chooseStudent(rows)
	if err != nil {
		return err
	}

	to := singleTo
	if to == "" {
		if to, err = readLine("Destination email address: "); err != nil {
			return err
		}
	}
	if to == "" {
		return fmt.Errorf("no destination address given")
	}

	subject, body := report.Render(row)
	job := models.EmailJob{
		ID:      uuid.NewString(),
		To:      to,
		ToName:  row.Cell(models.ColStudent),
		Subject: subject + " [TEST]",
		Body:    body,
	}

	if singleHTMLOut != "" {
		if err := os.WriteFile(singleHTMLOut, []byte(job.Body), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", singleHTMLOut, err)
		}
		fmt.Printf("Saved HTML body to %s\n", singleHTMLOut)
	}

	fmt.Printf("\nTo: %s <%s>\nSubject: %s\nBody length: %d characters\n",
		job.ToName, job.To, job.Subject, len(job.Body))
	if !confirm("\nSend this email? (yes/no): ") {
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
	printResults(mailer.SendBatch(transport, []models.EmailJob{job}, logger))
	return nil
}

// chooseStudent narrows the module's rows by a search term and asks for
// a pick from the numbered list.
func chooseStudent(rows []models.Row) (models.Row, error) {
	var named []models.Row
	for _, r := range rows {
		if !r.Blank(models.ColStudent) {
			named = append(named, r)
		}
	}
	if len(named) == 0 {
		return models.Row{}, fmt.Errorf("no students in this module")
	}
	fmt.Printf("\nFound %d students.\n", len(named))

	query, err := readLine("Enter student name to search (or press Enter to list all): ")
	if err != nil {
		return models.Row{}, err
	}
	query = strings.ToLower(query)

	var candidates []models.Row
	for _, r := range named {
		if query == "" || strings.Contains(strings.ToLower(r.Cell(models.ColStudent)), query) {
			candidates = append(candidates, r)
		}
	}
	if len(candidates) == 0 {
		return models.Row{}, fmt.Errorf("no students found matching %q", query)
	}

	fmt.Println("\nSelect student:")
	for i, r := range candidates {
		status := report.StatusRedo
		if total, ok := r.Float(models.ColTotalScore); ok && total >= report.PassingScore {
			status = report.StatusPassed
		}
		fmt.Printf("%d. %s (%s)\n", i+1, r.Cell(models.ColStudent), status)
	}

	answer, err := readLine("\nSelect number from above list: ")
	if err != nil {
		return models.Row{}, err
	}
	n, err := strconv.Atoi(answer)
	if err != nil || n < 1 || n > len(candidates) {
		return models.Row{}, fmt.Errorf("invalid selection %q", answer)
	}
	return candidates[n-1], nil
}
