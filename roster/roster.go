// Package roster bulk-replaces the officer table from a spreadsheet.
//
// This is a destructive, non-incremental maintenance operation: the previous
// roster is deleted in full and officer IDs are regenerated, so any feedback
// rows that already exist end up pointing at stale identifiers. Seeding is
// meant for initial, pre-launch setup and must not run against live traffic.
package roster

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"police-feedback-server/models"
)

// Spreadsheet column headers, as exported by the department roster
const (
	colFirstName = "First Name"
	colLastName  = "Last Name"
	colJobTitle  = "Job Title"
)

// Row is one officer row read from the spreadsheet
type Row struct {
	FirstName string
	LastName  string
	JobTitle  string
}

// Report summarizes one seeding run
type Report struct {
	Found    int
	Imported int
	Skipped  int
}

// ReadWorkbook reads officer rows from the first sheet of an .xlsx file.
// The first row must be a header naming the columns; unknown columns are
// ignored.
func ReadWorkbook(path string) ([]Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	cells, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(cells) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheets[0])
	}

	columns := make(map[string]int, len(cells[0]))
	for i, header := range cells[0] {
		columns[strings.TrimSpace(header)] = i
	}
	for _, required := range []string{colFirstName, colLastName} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}

	rows := make([]Row, 0, len(cells)-1)
	for _, record := range cells[1:] {
		rows = append(rows, Row{
			FirstName: cellAt(record, columns, colFirstName),
			LastName:  cellAt(record, columns, colLastName),
			JobTitle:  cellAt(record, columns, colJobTitle),
		})
	}

	return rows, nil
}

// cellAt returns the trimmed cell for a named column; short rows read as ""
func cellAt(record []string, columns map[string]int, name string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

// Replace deletes the entire officer roster and inserts the given rows in
// one transaction. Rows missing a first or last name are skipped and
// counted. Either everything lands or nothing does.
func Replace(db *gorm.DB, rows []Row) (Report, error) {
	report := Report{Found: len(rows)}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM officers").Error; err != nil {
			return fmt.Errorf("failed to clear old roster: %w", err)
		}

		for _, row := range rows {
			if row.FirstName == "" || row.LastName == "" {
				report.Skipped++
				continue
			}

			officer := models.Officer{
				FirstName: row.FirstName,
				LastName:  row.LastName,
				JobTitle:  row.JobTitle,
			}
			if err := tx.Create(&officer).Error; err != nil {
				return fmt.Errorf("failed to insert officer %s %s: %w", row.FirstName, row.LastName, err)
			}
			report.Imported++
		}

		return nil
	})
	if err != nil {
		return Report{Found: len(rows)}, err
	}

	return report, nil
}

// FeedbackCount reports how many feedback rows exist. Used by the importer
// to warn before a reseed orphans them.
func FeedbackCount(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Feedback{}).Count(&count).Error
	return count, err
}
