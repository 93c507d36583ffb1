package grade

import "labreport/internal/models"

// excluded are the grading sheet columns that carry identity, totals or
// prose rather than a per-criterion score.
var excluded = map[string]bool{
	models.ColReviewDate:   true,
	models.ColStudent:      true,
	models.ColReviewer:     true,
	models.ColLabTitle:     true,
	models.ColAttempt:      true,
	models.ColTotalScore:   true,
	models.ColRedoLab:      true,
	models.ColPlagiarism:   true,
	models.ColStrengths:    true,
	models.ColGaps:         true,
	models.ColOtherRemarks: true,
}

// RubricColumns returns the columns that may carry rubric scores:
// every column outside the excluded set, in sheet order.
func RubricColumns(columns []string) []string {
	var out []string
	for _, c := range columns {
		if !excluded[c] {
			out = append(out, c)
		}
	}
	return out
}

type RubricScore struct {
	Name  string
	Value float64
}

// RubricScores returns the rubric columns of a row whose cell holds a
// number, in sheet order. Non-numeric cells are skipped, not errors.
func RubricScores(row models.Row) []RubricScore {
	var out []RubricScore
	for _, c := range RubricColumns(row.Columns) {
		if v, ok := row.Float(c); ok {
			out = append(out, RubricScore{Name: c, Value: v})
		}
	}
	return out
}
