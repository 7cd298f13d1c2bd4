// Package export renders engagement data as downloadable documents.
package export

import (
	"bytes"
	"fmt"
	"sort"

	"client-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// TimesheetSheet is the name of the worksheet holding the entries
const TimesheetSheet = "Timesheet"

// ContentTypeXLSX is the media type of the generated workbook
const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// TimesheetHeader is the first row of the worksheet
var TimesheetHeader = []string{"Date", "Member", "Hours", "Description"}

// Timesheet renders the time entries of a project as an xlsx workbook. Entries are
// ordered by date, members are shown by name when known, and a total row closes the sheet.
func Timesheet(projectTitle string, entries []models.TimeEntry, names map[uuid.UUID]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(TimesheetSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.SetDocProps(&excelize.DocProperties{Title: projectTitle + " timesheet"}); err != nil {
		return nil, fmt.Errorf("failed to set document properties: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	if err := f.SetSheetRow(TimesheetSheet, "A1", &TimesheetHeader); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	if err := f.SetCellStyle(TimesheetSheet, "A1", "D1", headerStyle); err != nil {
		return nil, fmt.Errorf("failed to set header style: %w", err)
	}

	sorted := make([]models.TimeEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	var total float64
	for i, e := range sorted {
		member, ok := names[e.UserID]
		if !ok {
			member = e.UserID.String()
		}
		row := []any{e.Date.Format("2006-01-02"), member, e.Hours, e.Description}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetSheetRow(TimesheetSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
		total += e.Hours
	}

	totalRow := len(sorted) + 2
	if err := f.SetCellValue(TimesheetSheet, fmt.Sprintf("B%d", totalRow), "Total"); err != nil {
		return nil, fmt.Errorf("failed to write total label: %w", err)
	}
	if err := f.SetCellValue(TimesheetSheet, fmt.Sprintf("C%d", totalRow), total); err != nil {
		return nil, fmt.Errorf("failed to write total: %w", err)
	}

	for col, width := range map[string]float64{"A": 12, "B": 24, "C": 8, "D": 48} {
		if err := f.SetColWidth(TimesheetSheet, col, col, width); err != nil {
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
