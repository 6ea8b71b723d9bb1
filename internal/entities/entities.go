// =============================================================================
// FIRE 1099 Converter - Record Tables
// =============================================================================
//
// This package holds the six field tables that make up a 1099-MISC FIRE
// submission, one per record kind:
//
//   T - Transmitter            (transmitter.go)
//   A - Payer                  (payer.go)
//   B - Payee                  (payee.go)
//   C - End of Payer           (endofpayer.go)
//   K - State Totals           (statetotals.go)
//   F - End of Transmission    (endoftransmission.go)
//
// Field names, defaults, and widths follow IRS Publication 1220. Each table
// is a flat, ordered list of descriptors; the total width of every table is
// exactly fields.RecordLength (750). The tables are reference data - they are
// built once at package init and never modified.
//
// =============================================================================

package entities

import (
	"strings"

	"github.com/firefmt/fire-1099/internal/fields"
)

// Codes lists the sixteen payment amount codes used by B, C, and K records:
// digits 1-9 then letters A-G, in Publication 1220 order.
var Codes = []string{
	"1", "2", "3", "4", "5", "6", "7", "8", "9",
	"A", "B", "C", "D", "E", "F", "G",
}

// AmountField returns the field name carrying the payment amount for the
// given code, e.g. "payment_amount_7".
func AmountField(code string) string {
	return "payment_amount_" + code
}

// Tables returns every record table in submission order. Used by tests to
// check the width invariants across all record kinds at once.
func Tables() []*fields.Table {
	return []*fields.Table{
		Transmitter,
		Payer,
		Payee,
		EndOfPayer,
		StateTotals,
		EndOfTransmission,
	}
}

// amountFields builds the sixteen payment amount descriptors shared by the
// B (12 wide), C, and K (18 wide) record layouts.
func amountFields(width int) []fields.Field {
	out := make([]fields.Field, 0, len(Codes))
	zeros := strings.Repeat("0", width)
	for _, code := range Codes {
		out = append(out, fields.Field{
			Name:      AmountField(code),
			Default:   zeros,
			Width:     width,
			Fill:      '0',
			Transform: fields.RightZero(width),
		})
	}
	return out
}

// concat splices field groups into one encoding-ordered list.
func concat(groups ...[]fields.Field) []fields.Field {
	var out []fields.Field
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
