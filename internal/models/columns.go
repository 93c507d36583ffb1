package models

// Well-known grading sheet columns. Any other column is treated as a
// rubric criterion.
const (
	ColReviewDate   = "Review Date"
	ColStudent      = "Name of NSP"
	ColReviewer     = "Reviewer"
	ColLabTitle     = "Lab Title"
	ColAttempt      = "Attempt"
	ColTotalScore   = "Total Score"
	ColRedoLab      = "Re-do Lab"
	ColPlagiarism   = "Plagiarism Check"
	ColStrengths    = "Remarks: Strengths"
	ColGaps         = "Remarks: Gaps"
	ColOtherRemarks = "Other Remarks"
)
