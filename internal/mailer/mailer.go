// Package mailer dispatches rendered report jobs over SMTP.
package mailer

import (
	"fmt"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"

	"labreport/internal/models"
)

// Transport delivers a single job. Implementations must treat every
// call independently so one failure cannot poison the batch.
type Transport interface {
	Send(job models.EmailJob) error
}

// SMTPTransport sends through an authenticated SMTP account with
// mandatory STARTTLS, the way the usual Gmail/Outlook submission ports
// expect.
type SMTPTransport struct {
	client *mail.Client
	from   string
}

func NewSMTPTransport(creds models.Credentials) (*SMTPTransport, error) {
	client, err := mail.NewClient(creds.Host,
		mail.WithPort(creds.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(creds.Email),
		mail.WithPassword(creds.Password),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return nil, fmt.Errorf("smtp client for %s: %w", creds.Host, err)
	}
	return &SMTPTransport{client: client, from: creds.Email}, nil
}

func (t *SMTPTransport) Send(job models.EmailJob) error {
	msg := mail.NewMsg()
	if err := msg.From(t.from); err != nil {
		return fmt.Errorf("set sender %s: %w", t.from, err)
	}
	if err := msg.AddToFormat(job.ToName, job.To); err != nil {
		return fmt.Errorf("set recipient %s: %w", job.To, err)
	}
	msg.Subject(job.Subject)
	msg.SetBodyString(mail.TypeTextHTML, job.Body)

	if err := t.client.DialAndSend(msg); err != nil {
		return fmt.Errorf("send to %s: %w", job.To, err)
	}
	return nil
}

// SendBatch attempts every job once, in order. Failures are recorded
// and logged but never abort the batch.
func SendBatch(t Transport, jobs []models.EmailJob, log *zap.Logger) []models.SendResult {
	results := make([]models.SendResult, 0, len(jobs))
	for _, job := range jobs {
		err := t.Send(job)
		if err != nil {
			log.Warn("send failed",
				zap.String("job_id", job.ID),
				zap.String("to", job.To),
				zap.String("to_name", job.ToName),
				zap.Error(err))
		} else {
			log.Info("sent",
				zap.String("job_id", job.ID),
				zap.String("to", job.To),
				zap.String("to_name", job.ToName))
		}
		results = append(results, models.SendResult{Job: job, Err: err})
	}
	return results
}

// Sent counts the successful results of a batch.
func Sent(results []models.SendResult) int {
	n := 0
	for _, r := range results {
		if r.Err == nil {
			n++
		}
	}
	return n
}
