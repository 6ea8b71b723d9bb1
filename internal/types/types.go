// =============================================================================
// FIRE 1099 Converter - Shared Types
// =============================================================================
//
// This package contains the master record tree shared across packages to
// avoid import cycles. Types defined here are used by:
//   - translator
//   - aggregate
//   - report
//
// The tree mirrors one filing submission: a transmitter, an ordered list of
// payers (each with its payees, its end-of-payer record, and any state
// totals), and an end-of-transmission record. It is built once during
// shaping, mutated in place by the aggregation passes, then read-only during
// encoding.
//
// =============================================================================

package types

// Record is one shaped entity: a complete mapping from every field name in
// the entity's table to a string value.
type Record = map[string]string

// Submission is the master record tree for one filing.
type Submission struct {
	// Transmitter is the shaped "T" record.
	Transmitter Record `json:"transmitter"`

	// Payers holds every payer group in input order.
	Payers []*Payer `json:"payers"`

	// EndOfTransmission is the shaped "F" record.
	EndOfTransmission Record `json:"end_of_transmission"`
}

// Payer is one payer group: the "A" record plus its dependent records.
type Payer struct {
	// Record is the shaped "A" record.
	Record Record `json:"record"`

	// Payees holds the shaped "B" records in input order.
	Payees []Record `json:"payees"`

	// EndOfPayer is the shaped "C" record.
	EndOfPayer Record `json:"end_of_payer"`

	// StateTotals holds the shaped "K" records in first-encountered-state
	// order. Empty unless the payer participates in CF/SF; created by
	// aggregation, never supplied by the user.
	StateTotals []Record `json:"state_totals,omitempty"`
}

// CombinedFedState reports whether the payer opted into the Combined
// Federal/State Filing program.
func (p *Payer) CombinedFedState() bool {
	return p.Record["combined_fed_state"] == "1"
}

// RecordCount returns the number of physical records the submission encodes
// to: one T, per payer one A + payees + one C + state totals, and one F.
func (s *Submission) RecordCount() int {
	n := 2 // T and F
	for _, p := range s.Payers {
		n += 2 + len(p.Payees) + len(p.StateTotals)
	}
	return n
}
