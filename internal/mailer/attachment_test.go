package mailer

import (
	"bytes"
	"encoding/base64"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/heggies-id/disbursement-report/internal/report"
	"github.com/heggies-id/disbursement-report/internal/types"
)

func buildTestDocument(t *testing.T) *excelize.File {
	t.Helper()

	doc, err := report.BuildReport([]types.TransactionRecord{{
		MerchantName:    "Toko Sejahtera",
		TransactionID:   "TRX-001",
		TransactionDate: "2023-01-02T03:04:05Z",
		CustomerName:    "Budi",
		Amount:          decimal.RequireFromString("1000"),
		Fee:             decimal.RequireFromString("10"),
		PayToMerchant:   decimal.RequireFromString("990"),
		PayoutDate:      "2023-01-09T03:00:00Z",
		Tenure:          "3",
	}}, nil)
	require.NoError(t, err)
	return doc
}

func TestToAttachmentDescriptor(t *testing.T) {
	doc := buildTestDocument(t)
	defer doc.Close()

	attachment, err := ToAttachment(doc, "Disbursement Report 02-01-2023")
	require.NoError(t, err)

	assert.Equal(t, XLSXMimeType, attachment.Type)
	assert.Equal(t, "Disbursement Report 02-01-2023.xlsx", attachment.Name)
	assert.NotEmpty(t, attachment.Content)
}

func TestToAttachmentRoundTrip(t *testing.T) {
	doc := buildTestDocument(t)
	defer doc.Close()

	attachment, err := ToAttachment(doc, "report")
	require.NoError(t, err)

	decoded, err := base64.StdEncoding.DecodeString(attachment.Content)
	require.NoError(t, err)

	// The decoded bytes are a readable workbook with the three report
	// sheets intact.
	reopened, err := excelize.OpenReader(bytes.NewReader(decoded))
	require.NoError(t, err)
	defer reopened.Close()

	assert.Equal(t,
		[]string{report.SheetTransaction, report.SheetRefund, report.SheetLedger},
		reopened.GetSheetList())

	rows, err := reopened.GetRows(report.SheetTransaction)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "TRX-001", rows[1][3])
}

func TestSaveDocumentProducesSameStructure(t *testing.T) {
	doc := buildTestDocument(t)
	defer doc.Close()

	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, SaveDocument(doc, path))

	saved, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer saved.Close()

	attachment, err := ToAttachment(doc, "report")
	require.NoError(t, err)
	decoded, err := base64.StdEncoding.DecodeString(attachment.Content)
	require.NoError(t, err)
	encoded, err := excelize.OpenReader(bytes.NewReader(decoded))
	require.NoError(t, err)
	defer encoded.Close()

	// File persistence and attachment encoding expose the same sheets and
	// the same cell contents.
	assert.Equal(t, saved.GetSheetList(), encoded.GetSheetList())
	for _, sheet := range saved.GetSheetList() {
		savedRows, err := saved.GetRows(sheet)
		require.NoError(t, err)
		encodedRows, err := encoded.GetRows(sheet)
		require.NoError(t, err)
		assert.Equal(t, savedRows, encodedRows, "sheet %s", sheet)
	}
}
