package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/tsawler/grille/model"
)

// Sheet names used in workbook output.
const (
	ZonesSheet  = "Zones"
	UsagesSheet = "Usages"
)

var zoneHeader = []any{"zone", "marge_avant", "marge_arriere", "marge_laterale", "marge_laterale_combinee", "dominante", "usages"}

var usageHeader = []any{"zone", "code", "group"}

// WriteXLSX writes reg as a workbook with a "Zones" sheet holding one row
// per zone and a "Usages" sheet holding one row per (zone, usage) pair.
// Margins that read as numbers are stored as numeric cells.
func WriteXLSX(w io.Writer, reg *model.Registry) error {
	f, err := buildWorkbook(reg)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// SaveXLSX writes reg as a workbook file at path.
func SaveXLSX(path string, reg *model.Registry) error {
	f, err := buildWorkbook(reg)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func buildWorkbook(reg *model.Registry) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", ZonesSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}
	if _, err := f.NewSheet(UsagesSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to add sheet: %w", err)
	}

	if err := setRow(f, ZonesSheet, 1, zoneHeader); err != nil {
		f.Close()
		return nil, err
	}
	if err := setRow(f, UsagesSheet, 1, usageHeader); err != nil {
		f.Close()
		return nil, err
	}

	zoneRow, usageRow := 2, 2
	for _, z := range sortedRecords(reg) {
		row := []any{z.Code}
		for _, kind := range model.MarginKinds() {
			if v := z.Margin(kind); v != "" {
				row = append(row, Coerce(v))
			} else {
				row = append(row, nil)
			}
		}
		row = append(row, z.Dominante, len(z.Usages))
		if err := setRow(f, ZonesSheet, zoneRow, row); err != nil {
			f.Close()
			return nil, err
		}
		zoneRow++

		for _, u := range z.Usages {
			if err := setRow(f, UsagesSheet, usageRow, []any{z.Code, u.Code, u.Group}); err != nil {
				f.Close()
				return nil, err
			}
			usageRow++
		}
	}

	return f, nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write %s row %d: %w", sheet, row, err)
	}
	return nil
}
