package models

import (
	"strconv"
	"strings"
)

// Row is one data row of a grading sheet: the sheet's column names in
// their original order plus the cell text under each. Cells are kept as
// strings; numeric interpretation happens at the point of use. A blank
// cell and a missing column are both "absent".
type Row struct {
	Columns []string
	Cells   map[string]string
}

func NewRow(columns []string) Row {
	return Row{Columns: columns, Cells: make(map[string]string, len(columns))}
}

// Cell returns the trimmed text under a column, "" if absent.
func (r Row) Cell(name string) string {
	return strings.TrimSpace(r.Cells[name])
}

// Blank reports whether a column is absent or holds only whitespace.
func (r Row) Blank(name string) bool {
	return r.Cell(name) == ""
}

// Float parses a column as a number. Blank or unparsable cells report
// false rather than an error.
func (r Row) Float(name string) (float64, bool) {
	s := r.Cell(name)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

type RosterEntry struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// Verdict is the completeness decision for one grading row.
type Verdict struct {
	Complete bool   `json:"complete"`
	Reason   string `json:"reason,omitempty"`
}

// EmailJob is one fully rendered report ready for dispatch.
type EmailJob struct {
	ID      string `json:"id"`
	To      string `json:"to"`
	ToName  string `json:"to_name"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// SkippedRow records a student held back by an incomplete grade.
type SkippedRow struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

type Credentials struct {
	Host     string `json:"smtp_server"`
	Port     int    `json:"smtp_port"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SendResult is the per-job outcome of a dispatch attempt.
type SendResult struct {
	Job EmailJob
	Err error
}
