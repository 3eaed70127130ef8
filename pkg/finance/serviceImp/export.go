package serviceImp

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"farmdash/entities"
	"farmdash/pkg/finance/service"
)

const exportSheet = "Transactions"

var exportHeader = []any{"Date", "Type", "Category", "Description", "Farm", "Amount"}

// Export writes the filtered, sorted transactions and a totals row.
func (s *financeSvc) Export(w io.Writer, f service.Filter) error {
	rows, _ := s.rows(f)

	x := excelize.NewFile()
	defer x.Close()
	if err := x.SetSheetName("Sheet1", exportSheet); err != nil {
		return err
	}
	if err := x.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return err
	}
	bold, err := x.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := x.SetRowStyle(exportSheet, 1, 1, bold); err != nil {
		return err
	}

	var net float64
	for i, r := range rows {
		net += r.Signed()
		line := []any{r.Date, string(r.Type), entities.Humanize(r.Category), r.Description, r.FarmName, r.Signed()}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := x.SetSheetRow(exportSheet, cell, &line); err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
	}
	total := []any{"Net", "", "", "", "", net}
	cell, err := excelize.CoordinatesToCellName(1, len(rows)+2)
	if err != nil {
		return err
	}
	if err := x.SetSheetRow(exportSheet, cell, &total); err != nil {
		return err
	}
	if err := x.SetRowStyle(exportSheet, len(rows)+2, len(rows)+2, bold); err != nil {
		return err
	}
	if err := x.SetColWidth(exportSheet, "A", "F", 16); err != nil {
		return err
	}
	_, err = x.WriteTo(w)
	return err
}
