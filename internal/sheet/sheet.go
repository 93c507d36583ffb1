// Package sheet loads the roster and grading workbooks. All loader
// failures are structural (unreadable file, missing sheet or column)
// and fatal to the run; data-quality problems inside the rows are left
// to the classifier.
package sheet

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"labreport/internal/models"
)

// Roster sheet columns.
const (
	colFullName = "Full Name"
	colEmail    = "AmaliTech Email"
)

// Grading module sheets carry three metadata rows (allocated points,
// passing score, attempt weights) above the header, so the header sits
// on physical row 4 and data starts on row 5.
const gradingHeaderRow = 3

// SourceError is an unreadable or malformed workbook.
type SourceError struct {
	Path string
	Op   string
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

// LoadRoster reads the contact roster: one entry per data row holding a
// full name and address. Rows with neither are dropped. Names are kept
// as-is; normalization is the matcher's job.
func LoadRoster(path, sheetName string) ([]models.RosterEntry, error) {
	rows, err := readSheet(path, sheetName, "load roster")
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, &SourceError{Path: path, Op: "load roster", Err: fmt.Errorf("sheet %q is empty", sheetName)}
	}

	nameIdx, emailIdx := -1, -1
	for i, h := range rows[0] {
		switch strings.TrimSpace(h) {
		case colFullName:
			nameIdx = i
		case colEmail:
			emailIdx = i
		}
	}
	if nameIdx < 0 {
		return nil, &SourceError{Path: path, Op: "load roster", Err: fmt.Errorf("sheet %q: missing column %q", sheetName, colFullName)}
	}
	if emailIdx < 0 {
		return nil, &SourceError{Path: path, Op: "load roster", Err: fmt.Errorf("sheet %q: missing column %q", sheetName, colEmail)}
	}

	var roster []models.RosterEntry
	for _, row := range rows[1:] {
		e := models.RosterEntry{FullName: cellAt(row, nameIdx), Email: cellAt(row, emailIdx)}
		if e.FullName == "" && e.Email == "" {
			continue
		}
		roster = append(roster, e)
	}
	return roster, nil
}

// LoadGrading reads the data rows of one module sheet, mapped by the
// header names on row 4. Blank header cells are ignored; when a header
// name repeats, the first column wins.
func LoadGrading(path, module string) ([]models.Row, error) {
	raw, err := readSheet(path, module, "load grading")
	if err != nil {
		return nil, err
	}
	if len(raw) <= gradingHeaderRow {
		return nil, &SourceError{Path: path, Op: "load grading", Err: fmt.Errorf("sheet %q: no header row", module)}
	}

	var columns []string
	index := make(map[string]int)
	for i, h := range raw[gradingHeaderRow] {
		name := strings.TrimSpace(h)
		if name == "" {
			continue
		}
		if _, dup := index[name]; dup {
			continue
		}
		index[name] = i
		columns = append(columns, name)
	}
	if len(columns) == 0 {
		return nil, &SourceError{Path: path, Op: "load grading", Err: fmt.Errorf("sheet %q: no header row", module)}
	}

	var rows []models.Row
	for _, cells := range raw[gradingHeaderRow+1:] {
		row := models.NewRow(columns)
		for _, c := range columns {
			row.Cells[c] = cellAt(cells, index[c])
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Modules lists the sheet names of the grading workbook.
func Modules(path string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &SourceError{Path: path, Op: "list modules", Err: err}
	}
	defer f.Close()
	return f.GetSheetList(), nil
}

func readSheet(path, sheetName, op string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &SourceError{Path: path, Op: op, Err: err}
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, &SourceError{Path: path, Op: op, Err: err}
	}
	return rows, nil
}

// cellAt tolerates the ragged rows GetRows returns: cells past the last
// populated column simply do not exist.
func cellAt(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
