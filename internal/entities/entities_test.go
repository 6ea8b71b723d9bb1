package entities

import (
	"strings"
	"testing"

	"github.com/firefmt/fire-1099/internal/fields"
)

// Every record kind must declare fields summing to exactly 750 characters,
// and a default-filled entity must encode to exactly that length. These two
// properties are the whole point of the declarative tables.
func TestTableWidths(t *testing.T) {
	for _, table := range Tables() {
		t.Run(table.Kind(), func(t *testing.T) {
			if table.Length() != fields.RecordLength {
				t.Errorf("declared length = %d, want %d", table.Length(), fields.RecordLength)
			}
			if got := table.TotalWidth(); got != fields.RecordLength {
				t.Errorf("field widths sum to %d, want %d", got, fields.RecordLength)
			}
		})
	}
}

func TestDefaultFilledEntitiesEncode(t *testing.T) {
	for _, table := range Tables() {
		t.Run(table.Kind(), func(t *testing.T) {
			record, err := table.Encode(table.Shape(nil))
			if err != nil {
				t.Fatalf("Encode of default-filled entity: %v", err)
			}
			if len(record) != fields.RecordLength {
				t.Fatalf("record length = %d, want %d", len(record), fields.RecordLength)
			}
			if got := record[:1]; got != table.Kind() {
				t.Errorf("record type position holds %q, want %q", got, table.Kind())
			}
		})
	}
}

func TestFieldNamesUnique(t *testing.T) {
	for _, table := range Tables() {
		seen := make(map[string]bool)
		for _, name := range table.Names() {
			if seen[name] {
				t.Errorf("table %s declares field %q twice", table.Kind(), name)
			}
			seen[name] = true
		}
	}
}

// Sequence numbers sit at positions 500-507 on T, A, C, K, and F records
// and at 516-523 on B records, per Publication 1220.
func TestSequenceNumberPositions(t *testing.T) {
	offsets := map[string]int{
		"T": 499, "A": 499, "C": 499, "K": 499, "F": 499,
		"B": 515,
	}

	for _, table := range Tables() {
		offset := 0
		for _, f := range table.Fields() {
			if f.Name == "record_sequence_number" {
				break
			}
			offset += f.Width
		}
		if want := offsets[table.Kind()]; offset != want {
			t.Errorf("table %s: sequence number at offset %d, want %d", table.Kind(), offset, want)
		}
	}
}

func TestPayeeAmountPositions(t *testing.T) {
	// B record payment amounts occupy positions 55-246: sixteen 12-wide
	// fields starting at offset 54.
	shaped := Payee.Shape(map[string]string{
		AmountField("1"): "100",
		AmountField("G"): "25",
	})
	record, err := Payee.Encode(shaped)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	if got := record[54:66]; got != "000000000100" {
		t.Errorf("amount 1 = %q", got)
	}
	if got := record[234:246]; got != "000000000025" {
		t.Errorf("amount G = %q", got)
	}
	if !strings.HasPrefix(record, "B") {
		t.Errorf("record starts with %q", record[:1])
	}
}

func TestEndOfPayerAmountPositions(t *testing.T) {
	// C record control totals occupy positions 16-303: sixteen 18-wide
	// fields starting at offset 15.
	shaped := EndOfPayer.Shape(map[string]string{
		"number_of_payees": "3",
		AmountField("1"):   "150",
	})
	record, err := EndOfPayer.Encode(shaped)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	if got := record[1:9]; got != "00000003" {
		t.Errorf("number_of_payees = %q", got)
	}
	if got := record[15:33]; got != "000000000000000150" {
		t.Errorf("control total 1 = %q", got)
	}
}

func TestCodes(t *testing.T) {
	if len(Codes) != 16 {
		t.Fatalf("len(Codes) = %d, want 16", len(Codes))
	}
	if Codes[0] != "1" || Codes[8] != "9" || Codes[9] != "A" || Codes[15] != "G" {
		t.Errorf("Codes = %v", Codes)
	}
	for _, code := range Codes {
		if code == "H" {
			t.Error("code H must not appear")
		}
	}
}
