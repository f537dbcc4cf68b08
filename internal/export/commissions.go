package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

const commissionSheet = "Commissions"

// CommissionHeader is the header row of the commission workbook
var CommissionHeader = []string{
	"Commission ID",
	"Referrer",
	"Referrer Email",
	"Lead ID",
	"Tier",
	"Base Amount",
	"Rate %",
	"Commission",
	"Status",
	"Created",
	"Paid",
}

// CommissionRow is one line of the report
type CommissionRow struct {
	ID              string
	ReferrerName    string
	ReferrerEmail   string
	LeadID          string
	Tier            string
	BaseAmountCents int64
	RateBPS         int
	AmountCents     int64
	Status          string
	CreatedAt       time.Time
	PaidAt          *time.Time
}

// CommissionWorkbook renders rows as an xlsx document
func CommissionWorkbook(rows []CommissionRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(commissionSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	moneyFmt := "#,##0.00"
	moneyStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &moneyFmt})
	if err != nil {
		return nil, fmt.Errorf("failed to create money style: %w", err)
	}

	header := make([]interface{}, len(CommissionHeader))
	for i, h := range CommissionHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(commissionSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	lastCol, _ := excelize.CoordinatesToCellName(len(CommissionHeader), 1)
	if err := f.SetCellStyle(commissionSheet, "A1", lastCol, headerStyle); err != nil {
		return nil, fmt.Errorf("failed to style header: %w", err)
	}

	for i, r := range rows {
		rowNum := i + 2
		paid := ""
		if r.PaidAt != nil {
			paid = r.PaidAt.UTC().Format("2006-01-02")
		}
		values := []interface{}{
			r.ID,
			r.ReferrerName,
			r.ReferrerEmail,
			r.LeadID,
			r.Tier,
			float64(r.BaseAmountCents) / 100,
			float64(r.RateBPS) / 100,
			float64(r.AmountCents) / 100,
			r.Status,
			r.CreatedAt.UTC().Format("2006-01-02"),
			paid,
		}
		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetSheetRow(commissionSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", rowNum, err)
		}
		from, _ := excelize.CoordinatesToCellName(6, rowNum)
		to, _ := excelize.CoordinatesToCellName(8, rowNum)
		if err := f.SetCellStyle(commissionSheet, from, to, moneyStyle); err != nil {
			return nil, fmt.Errorf("failed to style row %d: %w", rowNum, err)
		}
	}

	widths := []float64{38, 24, 30, 38, 20, 14, 10, 14, 12, 12, 12}
	for i, w := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(commissionSheet, col, col, w); err != nil {
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
