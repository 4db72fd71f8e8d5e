// =============================================================================
// Disbursement Report Generator - Cell Formatters
// =============================================================================
//
// This module contains the pure formatting functions applied to report cells:
//   - Money values are rendered with two fixed decimal places and comma
//     thousands grouping ("#,##0.00").
//   - Timestamps are rendered in the fixed Indonesia (WIB, UTC+7) offset,
//     regardless of the offset the upstream source used or the timezone of
//     the host running the generator.
//
// ERROR HANDLING:
//   An unparseable date fails loudly with InvalidDateError carrying the raw
//   value. The error propagates uncaught through row mapping and report
//   building: a report with silently malformed rows is worse than no report.
//
// =============================================================================

package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// DATE FORMATTING
// =============================================================================

// DateLayout is the fixed output pattern for every date cell in the report:
// "YYYY-MM-DD HH:mm:ss +07:00".
const DateLayout = "2006-01-02 15:04:05 Z07:00"

// reportZone is the fixed UTC+7 zone (Waktu Indonesia Barat) all dates are
// rendered in.
var reportZone = time.FixedZone("WIB", 7*60*60)

// acceptedLayouts are the input layouts tried in order when parsing a raw
// timestamp. DateLayout itself is included so that FormatDate is idempotent:
// re-formatting a previously formatted value yields the same string.
var acceptedLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	DateLayout,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// InvalidDateError reports a raw value that could not be parsed into a valid
// calendar date/time.
type InvalidDateError struct {
	// Value is the offending raw input.
	Value string
}

// Error implements the error interface.
func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date value: %q", e.Value)
}

// ParseDate parses a raw timestamp from the payment summary. Layouts without
// an explicit offset are interpreted as WIB.
//
// RETURNS:
//   - The parsed time.
//   - An *InvalidDateError if no accepted layout matches.
func ParseDate(raw string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, &InvalidDateError{Value: raw}
	}

	for _, layout := range acceptedLayouts {
		if t, err := time.ParseInLocation(layout, value, reportZone); err == nil {
			return t, nil
		}
	}

	return time.Time{}, &InvalidDateError{Value: raw}
}

// FormatDate renders a raw timestamp in the fixed report pattern and offset.
//
// EXAMPLE:
//   FormatDate("2023-01-02T03:04:05Z") -> "2023-01-02 10:04:05 +07:00"
func FormatDate(raw string) (string, error) {
	t, err := ParseDate(raw)
	if err != nil {
		return "", err
	}
	return t.In(reportZone).Format(DateLayout), nil
}

// =============================================================================
// MONEY FORMATTING
// =============================================================================

// Money renders an amount with exactly two fractional digits and comma
// thousands grouping. Zero renders as "0.00"; the sign of negative amounts
// is preserved.
//
// EXAMPLES:
//   Money(decimal.NewFromFloat(1500.5)) -> "1,500.50"
//   Money(decimal.Zero)                 -> "0.00"
//   Money(decimal.NewFromInt(-2500))    -> "-2,500.00"
func Money(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	if negative {
		fixed = fixed[1:]
	}

	dot := strings.Index(fixed, ".")
	intPart, fracPart := fixed[:dot], fixed[dot+1:]

	var grouped strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(digit)
	}

	out := grouped.String() + "." + fracPart
	if negative {
		out = "-" + out
	}
	return out
}
