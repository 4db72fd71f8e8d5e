package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heggies-id/disbursement-report/internal/types"
)

var fixedHeaders = []string{
	"NO", "MERCHANT NAME", "TRANSACTION DATE", "TRANSIDMERCHANT",
	"CUSTOMER NAME", "AMOUNT", "FEE", "TAX", "MERCHANT SUPPORT",
	"PAY TO MERCHANT", "PAY OUT DATE", "TRANSACTION TYPE", "TENURE",
}

func headers(columns []ColumnDefinition) []string {
	out := make([]string, len(columns))
	for i, column := range columns {
		out[i] = column.Header
	}
	return out
}

func TestBuildColumnsPurchaseBase(t *testing.T) {
	columns := BuildColumns(ReportContext{
		TransactionType:              types.TransactionTypePurchase,
		HasTransactionWithTerminalID: false,
	})

	require.Len(t, columns, 13)
	assert.Equal(t, fixedHeaders, headers(columns))
}

func TestBuildColumnsRefundAppendsRefundIDs(t *testing.T) {
	columns := BuildColumns(ReportContext{
		TransactionType: types.TransactionTypeRefund,
	})

	require.Len(t, columns, 14)
	assert.Equal(t, "REFUND IDS", columns[13].Header)
	assert.Equal(t, KeyRefundIDs, columns[13].Key)
}

func TestBuildColumnsRefundWithTerminalID(t *testing.T) {
	columns := BuildColumns(ReportContext{
		TransactionType:              types.TransactionTypeRefund,
		HasTransactionWithTerminalID: true,
	})

	// 13 fixed + refundIds + terminalId, in that order.
	require.Len(t, columns, 15)
	assert.Equal(t, append(append([]string{}, fixedHeaders...), "REFUND IDS", "TERMINAL ID"), headers(columns))
}

func TestBuildColumnsPurchaseWithTerminalID(t *testing.T) {
	columns := BuildColumns(ReportContext{
		TransactionType:              types.TransactionTypePurchase,
		HasTransactionWithTerminalID: true,
	})

	require.Len(t, columns, 14)
	assert.Equal(t, "TERMINAL ID", columns[13].Header)
}

func TestBuildColumnsReturnsFreshSlices(t *testing.T) {
	first := BuildColumns(ReportContext{})
	first[0].Header = "mutated"

	second := BuildColumns(ReportContext{})
	assert.Equal(t, "NO", second[0].Header)
}
