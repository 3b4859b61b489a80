package services

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const slipSheet = "Salary Slips"

var slipHeaders = []string{
	"Slip ID", "Staff", "Email", "Role", "Month", "LPA",
	"Total Working Hours", "Calculated Salary", "Status", "Rejection Reason",
}

// Export writes the slips of month (all months when empty) as an xlsx workbook.
func (s *SalaryService) Export(ctx context.Context, month string, w io.Writer) error {
	slips, err := s.All(ctx, month)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", slipSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	for i, h := range slipHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(slipSheet, cell, h); err != nil {
			return err
		}
	}

	for r, slip := range slips {
		row := []interface{}{
			slip.ID, slip.Staff.Name, slip.Staff.Email, slip.Staff.Role, slip.Month, slip.LPA,
			slip.TotalWorkingHours, slip.CalculatedSalary, slip.Status, slip.RejectionReason,
		}
		cell, _ := excelize.CoordinatesToCellName(1, r+2)
		if err := f.SetSheetRow(slipSheet, cell, &row); err != nil {
			return err
		}
	}

	_, err = f.WriteTo(w)
	return err
}
