// Package grade decides whether a grading row carries a finished
// evaluation. Rows fail conservatively: a cell that does not parse as a
// number counts as absent, never as an error.
package grade

import "labreport/internal/models"

const (
	ReasonNoTotal   = "no total score"
	ReasonNoRubric  = "no rubric scores"
	ReasonNoRemarks = "no remarks"
)

// Classify applies the completeness rules in order; the first failing
// rule sets the verdict's reason.
func Classify(row models.Row) models.Verdict {
	total, ok := row.Float(models.ColTotalScore)
	if !ok || total <= 0 {
		return models.Verdict{Reason: ReasonNoTotal}
	}
	if len(RubricScores(row)) == 0 {
		return models.Verdict{Reason: ReasonNoRubric}
	}
	if row.Blank(models.ColStrengths) && row.Blank(models.ColGaps) {
		return models.Verdict{Reason: ReasonNoRemarks}
	}
	return models.Verdict{Complete: true}
}
