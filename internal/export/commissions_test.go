package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestCommissionWorkbook(t *testing.T) {
	paid := time.Date(2025, 4, 20, 0, 0, 0, 0, time.UTC)
	rows := []CommissionRow{
		{ID: "c1", ReferrerName: "Jane Doe", ReferrerEmail: "jane@example.com", LeadID: "l1", Tier: "affiliate-standard", BaseAmountCents: 30000, RateBPS: 1500, AmountCents: 4500, Status: "paid", CreatedAt: paid.AddDate(0, 0, -10), PaidAt: &paid},
		{ID: "c2", ReferrerName: "Sam Roe", ReferrerEmail: "sam@example.com", LeadID: "l2", Tier: "client", BaseAmountCents: 10000, RateBPS: 1000, AmountCents: 1000, Status: "pending", CreatedAt: paid},
	}

	data, err := CommissionWorkbook(rows)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{commissionSheet}, f.GetSheetList())

	all, err := f.GetRows(commissionSheet)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, CommissionHeader, all[0])
	assert.Equal(t, "Jane Doe", all[1][1])
	assert.Equal(t, "2025-04-20", all[1][10])
	assert.Equal(t, "pending", all[2][8])

	amount, err := f.GetCellValue(commissionSheet, "H2", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "45", amount)
}

func TestCommissionWorkbookEmpty(t *testing.T) {
	data, err := CommissionWorkbook(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	all, err := f.GetRows(commissionSheet)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
