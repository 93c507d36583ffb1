// Package report renders a grading row into a self-contained HTML
// grade report. Rendering is total: absent optional fields fall back to
// placeholder text, and the same row always produces identical bytes.
package report

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"labreport/internal/grade"
	"labreport/internal/models"
)

// PassingScore is the fixed pass threshold on the total score fraction.
const PassingScore = 0.8

const (
	StatusPassed = "PASSED"
	StatusRedo   = "NEEDS RE-DO"
)

type rubricView struct {
	Name     string
	Score    string
	BarWidth int
	BarColor string
}

type view struct {
	StudentName    string
	LabTitle       string
	Status         string
	StatusColor    string
	StatusBg       string
	StatusIcon     string
	ScorePercent   int
	PassingPercent int
	Attempt        string
	RedoLab        string
	Plagiarism     string
	Rubrics        []rubricView
	Strengths      string
	Gaps           string
	OtherRemarks   string
}

// Render produces the mail subject and HTML body for one grading row.
func Render(row models.Row) (subject, body string) {
	total, _ := row.Float(models.ColTotalScore)

	status := StatusRedo
	if total >= PassingScore {
		status = StatusPassed
	}

	labTitle := cellOr(row, models.ColLabTitle, "Lab")
	subject = fmt.Sprintf("Lab Grade: %s - %s", labTitle, status)

	v := view{
		StudentName:    cellOr(row, models.ColStudent, "NSP"),
		LabTitle:       labTitle,
		Status:         status,
		StatusColor:    "#dc3545",
		StatusBg:       "#f8d7da",
		StatusIcon:     "✗",
		ScorePercent:   int(math.Round(total * 100)),
		PassingPercent: int(math.Round(PassingScore * 100)),
		Attempt:        cellOr(row, models.ColAttempt, "N/A"),
		RedoLab:        cellOr(row, models.ColRedoLab, "No"),
		Plagiarism:     cellOr(row, models.ColPlagiarism, "N/A"),
		Strengths:      cellOr(row, models.ColStrengths, "No feedback provided"),
		Gaps:           cellOr(row, models.ColGaps, "No feedback provided"),
		OtherRemarks:   cellOr(row, models.ColOtherRemarks, "No additional remarks"),
	}
	if status == StatusPassed {
		v.StatusColor = "#28a745"
		v.StatusBg = "#d4edda"
		v.StatusIcon = "✓"
	}
	for _, rs := range grade.RubricScores(row) {
		v.Rubrics = append(v.Rubrics, rubricView{
			Name:     rs.Name,
			Score:    formatScore(rs.Value),
			BarWidth: barWidth(rs.Value),
			BarColor: barColor(rs.Value),
		})
	}

	var buf bytes.Buffer
	if err := reportTmpl.Execute(&buf, v); err != nil {
		// The template is fixed and the view is plain data; execution
		// cannot fail at runtime.
		panic(fmt.Sprintf("render report: %v", err))
	}
	return subject, buf.String()
}

func cellOr(row models.Row, col, fallback string) string {
	if row.Blank(col) {
		return fallback
	}
	return row.Cell(col)
}

// formatScore drops the decimal point for whole scores: 4.0 renders as
// "4", 3.5 as "3.5".
func formatScore(v float64) string {
	if v == math.Trunc(v) {
		return strconv.Itoa(int(v))
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// barWidth maps a rubric score onto a 0–100 progress bar, assuming the
// rubric maximum of 5.
func barWidth(v float64) int {
	frac := v / 5
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	return int(math.Round(frac * 100))
}

func barColor(v float64) string {
	switch {
	case v >= 4:
		return "#28a745"
	case v >= 3:
		return "#ffc107"
	default:
		return "#dc3545"
	}
}
