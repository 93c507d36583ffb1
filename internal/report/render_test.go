package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"labreport/internal/models"
)

func reportRow(cells map[string]string) models.Row {
	columns := []string{
		models.ColStudent, models.ColReviewer, models.ColLabTitle,
		models.ColAttempt, "Code Quality", "Testing", "Documentation",
		models.ColTotalScore, models.ColRedoLab, models.ColPlagiarism,
		models.ColStrengths, models.ColGaps, models.ColOtherRemarks,
	}
	r := models.NewRow(columns)
	for k, v := range cells {
		r.Cells[k] = v
	}
	return r
}

func TestRenderSubjectPassed(t *testing.T) {
	subject, _ := Render(reportRow(map[string]string{
		models.ColLabTitle:   "Lab 3: REST APIs",
		models.ColTotalScore: "0.9",
	}))
	require.Equal(t, "Lab Grade: Lab 3: REST APIs - PASSED", subject)
}

func TestRenderSubjectRedo(t *testing.T) {
	subject, _ := Render(reportRow(map[string]string{
		models.ColLabTitle:   "Lab 3: REST APIs",
		models.ColTotalScore: "0.79",
	}))
	require.Equal(t, "Lab Grade: Lab 3: REST APIs - NEEDS RE-DO", subject)
}

func TestRenderExactThresholdPasses(t *testing.T) {
	subject, _ := Render(reportRow(map[string]string{
		models.ColLabTitle:   "Lab 1",
		models.ColTotalScore: "0.8",
	}))
	require.Contains(t, subject, StatusPassed)
}

func TestRenderDeterministic(t *testing.T) {
	row := reportRow(map[string]string{
		models.ColStudent:    "Jane Doe",
		models.ColLabTitle:   "Lab 2",
		models.ColTotalScore: "0.85",
		"Code Quality":       "4",
		"Testing":            "3.5",
		models.ColStrengths:  "Clean structure",
	})
	s1, b1 := Render(row)
	s2, b2 := Render(row)
	require.Equal(t, s1, s2)
	require.Equal(t, b1, b2)
}

func TestRenderBody(t *testing.T) {
	_, body := Render(reportRow(map[string]string{
		models.ColStudent:    "Jane Doe",
		models.ColLabTitle:   "Lab 2",
		models.ColAttempt:    "1st",
		models.ColTotalScore: "0.85",
		models.ColRedoLab:    "No",
		models.ColPlagiarism: "Pass",
		"Code Quality":       "4",
		"Testing":            "3.5",
		models.ColStrengths:  "Clean structure",
		models.ColGaps:       "More edge cases",
	}))

	require.Contains(t, body, "Dear <strong>Jane Doe</strong>")
	require.Contains(t, body, "Lab 2")
	require.Contains(t, body, "85%")
	require.Contains(t, body, "Passing Score: 80%")
	require.Contains(t, body, "Clean structure")
	require.Contains(t, body, "More edge cases")
	require.Contains(t, body, "No additional remarks")
	// self-contained document, no external references
	require.NotContains(t, body, "src=")
	require.NotContains(t, body, "href=")
}

func TestRenderIntegerScoreHasNoDecimalPoint(t *testing.T) {
	_, body := Render(reportRow(map[string]string{
		models.ColTotalScore: "0.9",
		"Code Quality":       "4.0",
		"Testing":            "3.5",
		models.ColStrengths:  "fine",
	}))
	require.Contains(t, body, ">4<")
	require.NotContains(t, body, ">4.0<")
	require.Contains(t, body, ">3.5<")
}

func TestRenderPlaceholders(t *testing.T) {
	_, body := Render(reportRow(map[string]string{
		models.ColTotalScore: "0.3",
	}))
	require.Contains(t, body, "Dear <strong>NSP</strong>")
	require.Contains(t, body, "No rubric scores available")
	require.Equal(t, 2, strings.Count(body, "No feedback provided"))
	require.Contains(t, body, "No additional remarks")
	require.Contains(t, body, "N/A")
}

func TestBarWidthClamped(t *testing.T) {
	require.Equal(t, 80, barWidth(4))
	require.Equal(t, 100, barWidth(7))
	require.Equal(t, 0, barWidth(-1))
	require.Equal(t, 70, barWidth(3.5))
}

func TestBarColorBands(t *testing.T) {
	require.Equal(t, "#28a745", barColor(4))
	require.Equal(t, "#ffc107", barColor(3))
	require.Equal(t, "#dc3545", barColor(2.9))
}
