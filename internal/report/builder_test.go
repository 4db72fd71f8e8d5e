package report

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heggies-id/disbursement-report/internal/format"
	"github.com/heggies-id/disbursement-report/internal/types"
)

func purchaseRecord(id, date string) types.TransactionRecord {
	return types.TransactionRecord{
		MerchantName:    "Toko Sejahtera",
		TransactionID:   id,
		TransactionDate: date,
		CustomerName:    "Budi",
		Amount:          decimal.RequireFromString("1000"),
		Fee:             decimal.RequireFromString("10"),
		PayToMerchant:   decimal.RequireFromString("990"),
		PayoutDate:      "2023-01-09T03:00:00Z",
		Tenure:          "3",
	}
}

func refundRecord(id, date string) types.TransactionRecord {
	record := purchaseRecord(id, date)
	record.RefundIDs = []string{"RF-" + id}
	return record
}

func TestBuildReportSheetOrder(t *testing.T) {
	doc, err := BuildReport(
		[]types.TransactionRecord{purchaseRecord("P1", "2023-01-02T00:00:00Z")},
		[]types.TransactionRecord{refundRecord("R1", "2023-01-03T00:00:00Z")},
	)
	require.NoError(t, err)

	assert.Equal(t, []string{SheetTransaction, SheetRefund, SheetLedger}, doc.GetSheetList())
}

func TestBuildReportLedgerOrdersByDate(t *testing.T) {
	// Purchase dated after the refund: the ledger must list the refund
	// first.
	doc, err := BuildReport(
		[]types.TransactionRecord{purchaseRecord("P1", "2023-01-02T00:00:00Z")},
		[]types.TransactionRecord{refundRecord("R1", "2023-01-01T00:00:00Z")},
	)
	require.NoError(t, err)

	rows, err := doc.GetRows(SheetLedger)
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + 2 data rows

	// Column D is TRANSIDMERCHANT, column L is TRANSACTION TYPE.
	assert.Equal(t, "R1", rows[1][3])
	assert.Equal(t, "Refund", rows[1][11])
	assert.Equal(t, "P1", rows[2][3])
	assert.Equal(t, "Purchase", rows[2][11])

	// The NO ordinal is re-assigned after the merge.
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "2", rows[2][0])
}

func TestBuildReportLedgerTieKeepsPurchaseFirst(t *testing.T) {
	date := "2023-01-05T12:00:00Z"
	doc, err := BuildReport(
		[]types.TransactionRecord{purchaseRecord("P1", date)},
		[]types.TransactionRecord{refundRecord("R1", date)},
	)
	require.NoError(t, err)

	rows, err := doc.GetRows(SheetLedger)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "P1", rows[1][3])
	assert.Equal(t, "R1", rows[2][3])
}

func TestBuildReportEmptyRefunds(t *testing.T) {
	doc, err := BuildReport(
		[]types.TransactionRecord{
			purchaseRecord("P1", "2023-01-02T00:00:00Z"),
			purchaseRecord("P2", "2023-01-03T00:00:00Z"),
		},
		nil,
	)
	require.NoError(t, err)

	// The Refund sheet still exists, with the header row only.
	refundRows, err := doc.GetRows(SheetRefund)
	require.NoError(t, err)
	require.Len(t, refundRows, 1)
	assert.Equal(t, "REFUND IDS", refundRows[0][13])

	// The ledger equals the purchase rows, in order.
	transactionRows, err := doc.GetRows(SheetTransaction)
	require.NoError(t, err)
	ledgerRows, err := doc.GetRows(SheetLedger)
	require.NoError(t, err)
	assert.Equal(t, transactionRows, ledgerRows)
}

func TestBuildReportTerminalIDColumnPerSheet(t *testing.T) {
	purchase := purchaseRecord("P1", "2023-01-02T00:00:00Z")
	purchase.TerminalID = "TERM-1"
	refund := refundRecord("R1", "2023-01-03T00:00:00Z")

	doc, err := BuildReport(
		[]types.TransactionRecord{purchase},
		[]types.TransactionRecord{refund},
	)
	require.NoError(t, err)

	// Purchase sheet: 13 fixed columns + TERMINAL ID.
	transactionRows, err := doc.GetRows(SheetTransaction)
	require.NoError(t, err)
	require.Len(t, transactionRows[0], 14)
	assert.Equal(t, "TERMINAL ID", transactionRows[0][13])
	assert.Equal(t, "TERM-1", transactionRows[1][13])

	// Refund sheet scanned independently: no terminal IDs there, so only
	// the REFUND IDS column is appended.
	refundRows, err := doc.GetRows(SheetRefund)
	require.NoError(t, err)
	require.Len(t, refundRows[0], 14)
	assert.Equal(t, "REFUND IDS", refundRows[0][13])
	assert.Equal(t, "RF-R1", refundRows[1][13])

	// The ledger never shows TERMINAL ID, even though a record has one.
	ledgerRows, err := doc.GetRows(SheetLedger)
	require.NoError(t, err)
	require.Len(t, ledgerRows[0], 13)
}

func TestBuildReportInvalidDateAborts(t *testing.T) {
	bad := purchaseRecord("P1", "not-a-date")

	doc, err := BuildReport([]types.TransactionRecord{bad}, nil)
	require.Error(t, err)
	assert.Nil(t, doc)

	var invalid *format.InvalidDateError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "not-a-date", invalid.Value)
}

func TestBuildReportLeavesInputsUntagged(t *testing.T) {
	purchases := []types.TransactionRecord{purchaseRecord("P1", "2023-01-02T00:00:00Z")}
	refunds := []types.TransactionRecord{refundRecord("R1", "2023-01-03T00:00:00Z")}

	_, err := BuildReport(purchases, refunds)
	require.NoError(t, err)

	assert.Empty(t, purchases[0].TransactionType)
	assert.Empty(t, refunds[0].TransactionType)
}
