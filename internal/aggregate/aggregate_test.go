package aggregate

import (
	"fmt"
	"testing"

	"github.com/firefmt/fire-1099/internal/entities"
	"github.com/firefmt/fire-1099/internal/types"
)

func payeeWith(state string, amounts map[string]string) types.Record {
	input := map[string]string{"payee_state": state}
	for code, amount := range amounts {
		input[entities.AmountField(code)] = amount
	}
	return entities.Payee.Shape(input)
}

func newSubmission(payers ...*types.Payer) *types.Submission {
	return &types.Submission{
		Transmitter:       entities.Transmitter.Shape(nil),
		Payers:            payers,
		EndOfTransmission: entities.EndOfTransmission.Shape(nil),
	}
}

func newPayer(combinedFedState string, payees ...types.Record) *types.Payer {
	return &types.Payer{
		Record:     entities.Payer.Shape(map[string]string{"combined_fed_state": combinedFedState}),
		Payees:     payees,
		EndOfPayer: entities.EndOfPayer.Shape(nil),
	}
}

// =============================================================================
// PAYER TOTALS
// =============================================================================

func TestPayerTotals(t *testing.T) {
	payer := newPayer("",
		payeeWith("CA", map[string]string{"1": "000000000000000100"}),
		payeeWith("CA", map[string]string{"1": "000000000000000050", "3": "25"}),
	)
	// An unparsable amount contributes zero and is skipped silently.
	bad := payeeWith("CA", nil)
	bad[entities.AmountField("1")] = "BAD"
	payer.Payees = append(payer.Payees, bad)

	sub := newSubmission(payer)
	Run(sub)

	if got := payer.EndOfPayer[entities.AmountField("1")]; got != "000000000000000150" {
		t.Errorf("control total 1 = %q, want 150 zero-padded to 18", got)
	}
	if got := payer.EndOfPayer[entities.AmountField("3")]; got != "000000000000000025" {
		t.Errorf("control total 3 = %q", got)
	}
	if got := payer.Record["amount_codes"]; got != "13" {
		t.Errorf("amount_codes = %q, want %q", got, "13")
	}
	if got := payer.EndOfPayer["number_of_payees"]; got != "00000003" {
		t.Errorf("number_of_payees = %q", got)
	}
}

func TestAmountCodesExcludeZeroTotals(t *testing.T) {
	payer := newPayer("",
		payeeWith("CA", map[string]string{"2": "0"}),
		payeeWith("CA", map[string]string{"7": "500"}),
	)
	sub := newSubmission(payer)
	Run(sub)

	if got := payer.Record["amount_codes"]; got != "7" {
		t.Errorf("amount_codes = %q, want %q (zero totals excluded)", got, "7")
	}
	// Zero totals keep the table default, untouched by aggregation.
	if got := payer.EndOfPayer[entities.AmountField("2")]; got != "000000000000000000" {
		t.Errorf("control total 2 = %q, want all zeros", got)
	}
}

// =============================================================================
// GLOBAL TOTALS
// =============================================================================

func TestGlobalTotals(t *testing.T) {
	sub := newSubmission(
		newPayer("", payeeWith("CA", nil), payeeWith("NY", nil)),
		newPayer("", payeeWith("OH", nil)),
	)
	Run(sub)

	if got := sub.Transmitter["total_number_of_payees"]; got != "00000003" {
		t.Errorf("transmitter payee count = %q", got)
	}
	if got := sub.EndOfTransmission["total_number_of_payees"]; got != "00000003" {
		t.Errorf("end-of-transmission payee count = %q", got)
	}
	if got := sub.EndOfTransmission["number_of_a_records"]; got != "00000002" {
		t.Errorf("number_of_a_records = %q", got)
	}
}

// =============================================================================
// STATE TOTALS (CF/SF)
// =============================================================================

func TestStateTotalsGrouping(t *testing.T) {
	// CA participates in CF/SF; NY does not. Three CA payees collapse into
	// one K record, the NY payee contributes nothing anywhere.
	payer := newPayer("1",
		payeeWith("CA", map[string]string{"1": "100"}),
		payeeWith("CA", map[string]string{"1": "200"}),
		payeeWith("NY", map[string]string{"1": "999"}),
		payeeWith("CA", map[string]string{"1": "300"}),
	)
	sub := newSubmission(payer)
	Run(sub)

	if len(payer.StateTotals) != 1 {
		t.Fatalf("got %d state totals records, want 1", len(payer.StateTotals))
	}
	k := payer.StateTotals[0]
	if got := k["number_of_payees"]; got != "00000003" {
		t.Errorf("K number_of_payees = %q, want 3", got)
	}
	if got := k["combined_federal_state_code"]; got != "06" {
		t.Errorf("K state code = %q, want %q", got, "06")
	}
	if got := k[entities.AmountField("1")]; got != "000000000000000600" {
		t.Errorf("K control total 1 = %q, want 600", got)
	}

	// Participating payees are annotated, the NY payee is not.
	if got := payer.Payees[0]["combined_federal_state_code"]; got != "06" {
		t.Errorf("CA payee state code = %q", got)
	}
	if got := payer.Payees[2]["combined_federal_state_code"]; got != "" {
		t.Errorf("NY payee state code = %q, want empty", got)
	}
}

func TestStateTotalsFirstEncounteredOrder(t *testing.T) {
	payer := newPayer("1",
		payeeWith("OH", map[string]string{"1": "1"}),
		payeeWith("CA", map[string]string{"1": "1"}),
		payeeWith("OH", map[string]string{"1": "1"}),
	)
	sub := newSubmission(payer)
	Run(sub)

	if len(payer.StateTotals) != 2 {
		t.Fatalf("got %d state totals records, want 2", len(payer.StateTotals))
	}
	if got := payer.StateTotals[0]["combined_federal_state_code"]; got != "39" {
		t.Errorf("first K record state code = %q, want OH (39)", got)
	}
	if got := payer.StateTotals[1]["combined_federal_state_code"]; got != "06" {
		t.Errorf("second K record state code = %q, want CA (06)", got)
	}
}

func TestNoStateTotalsWithoutOptIn(t *testing.T) {
	payer := newPayer("",
		payeeWith("CA", map[string]string{"1": "100"}),
	)
	sub := newSubmission(payer)
	Run(sub)

	if len(payer.StateTotals) != 0 {
		t.Errorf("got %d state totals records, want none for non-CF/SF payer", len(payer.StateTotals))
	}
	if got := payer.Payees[0]["combined_federal_state_code"]; got != "" {
		t.Errorf("payee state code = %q, want empty for non-CF/SF payer", got)
	}
}

// =============================================================================
// SEQUENCE NUMBERS
// =============================================================================

func TestSequenceNumbersTraversalOrder(t *testing.T) {
	// Two payers, the first CF/SF with two states. Expected order:
	// T, A1, B1, B2, B3, C1, K1, K2, A2, B4, C2, F.
	first := newPayer("1",
		payeeWith("CA", map[string]string{"1": "1"}),
		payeeWith("OH", map[string]string{"1": "1"}),
		payeeWith("CA", map[string]string{"1": "1"}),
	)
	second := newPayer("", payeeWith("NY", nil))
	sub := newSubmission(first, second)
	Run(sub)

	var got []string
	got = append(got, sub.Transmitter["record_sequence_number"])
	for _, payer := range sub.Payers {
		got = append(got, payer.Record["record_sequence_number"])
		for _, payee := range payer.Payees {
			got = append(got, payee["record_sequence_number"])
		}
		got = append(got, payer.EndOfPayer["record_sequence_number"])
		for _, stateTotal := range payer.StateTotals {
			got = append(got, stateTotal["record_sequence_number"])
		}
	}
	got = append(got, sub.EndOfTransmission["record_sequence_number"])

	if len(got) != sub.RecordCount() {
		t.Fatalf("assigned %d sequence numbers, tree has %d records", len(got), sub.RecordCount())
	}
	for i, seq := range got {
		if want := fmt.Sprintf("%08d", i+1); seq != want {
			t.Errorf("record %d sequence = %q, want %q", i, seq, want)
		}
	}
}

func TestSequence(t *testing.T) {
	seq := NewSequence()
	if got := seq.Next(); got != "00000001" {
		t.Errorf("first Next() = %q", got)
	}
	if got := seq.Next(); got != "00000002" {
		t.Errorf("second Next() = %q", got)
	}
	if got := seq.Current(); got != 2 {
		t.Errorf("Current() = %d", got)
	}

	// Counters are independent per instance.
	if got := NewSequence().Next(); got != "00000001" {
		t.Errorf("fresh sequence Next() = %q", got)
	}
}

func TestStateCode(t *testing.T) {
	tests := []struct {
		state string
		code  int
		ok    bool
	}{
		{"CA", 6, true},
		{"AL", 1, true},
		{"WI", 55, true},
		{"NY", 0, false},
		{"TX", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		code, ok := StateCode(tt.state)
		if code != tt.code || ok != tt.ok {
			t.Errorf("StateCode(%q) = (%d, %v), want (%d, %v)", tt.state, code, ok, tt.code, tt.ok)
		}
	}
}
