// =============================================================================
// Disbursement Report Generator - Attachment Encoder
// =============================================================================
//
// This module wraps a finished report document into the payload shape the
// email delivery pipeline expects: a named, typed, base64-encoded attachment.
// It is a pure boundary adapter; the document's structure was decided
// entirely by the report builder, and the actual email transport lives
// outside this repository.
//
// Both output paths (in-memory attachment, file on disk) serialize the same
// document object, so identical input produces an identical spreadsheet
// either way.
//
// =============================================================================

package mailer

import (
	"encoding/base64"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/heggies-id/disbursement-report/internal/types"
)

// XLSXMimeType is the MIME type stamped on every report attachment.
const XLSXMimeType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// xlsxExtension is appended to the caller-supplied base name.
const xlsxExtension = ".xlsx"

// ToAttachment serializes the document and wraps it as an email attachment.
//
// PARAMETERS:
//   - f: The finished report document.
//   - filename: The attachment base name, without extension. The report
//     label and period date are the caller's business, e.g.
//     "Disbursement Report 02-01-2023".
//
// RETURNS:
//   - The attachment descriptor with base64 content.
//   - An error if the document cannot be serialized.
func ToAttachment(f *excelize.File, filename string) (types.Attachment, error) {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return types.Attachment{}, fmt.Errorf("failed to serialize report document: %w", err)
	}

	return types.Attachment{
		Type:    XLSXMimeType,
		Name:    filename + xlsxExtension,
		Content: base64.StdEncoding.EncodeToString(buf.Bytes()),
	}, nil
}

// SaveDocument persists the document directly to a named file instead of
// returning it as an in-memory attachment.
func SaveDocument(f *excelize.File, path string) error {
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save report document to %s: %w", path, err)
	}
	return nil
}
