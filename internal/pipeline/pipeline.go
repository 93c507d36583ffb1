// Package pipeline reconciles grading rows against the roster and
// builds a dispatch plan. Building a plan has no side effects; nothing
// is sent until the caller hands the ready jobs to a mail transport.
package pipeline

import (
	"github.com/google/uuid"

	"labreport/internal/grade"
	"labreport/internal/match"
	"labreport/internal/models"
	"labreport/internal/report"
)

// Plan partitions the grading rows of one module sheet. Ready jobs keep
// the relative order of their source rows.
type Plan struct {
	Ready             []models.EmailJob
	SkippedIncomplete []models.SkippedRow
	SkippedUnmatched  []string
}

// Total is the number of rows that reached any bucket.
func (p Plan) Total() int {
	return len(p.Ready) + len(p.SkippedIncomplete) + len(p.SkippedUnmatched)
}

// Build walks the grading rows in order: rows without a student name
// are dropped silently, incomplete grades and unmatched names land in
// their skip buckets, everything else is rendered into a ready job.
func Build(rows []models.Row, roster []models.RosterEntry) Plan {
	var plan Plan
	for _, row := range rows {
		name := row.Cell(models.ColStudent)
		if name == "" {
			continue
		}

		if verdict := grade.Classify(row); !verdict.Complete {
			plan.SkippedIncomplete = append(plan.SkippedIncomplete, models.SkippedRow{
				Name:   name,
				Reason: verdict.Reason,
			})
			continue
		}

		email, ok := match.Resolve(name, roster)
		if !ok {
			plan.SkippedUnmatched = append(plan.SkippedUnmatched, name)
			continue
		}

		subject, body := report.Render(row)
		plan.Ready = append(plan.Ready, models.EmailJob{
			ID:      uuid.NewString(),
			To:      email,
			ToName:  name,
			Subject: subject,
			Body:    body,
		})
	}
	return plan
}
