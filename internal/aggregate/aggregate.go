// =============================================================================
// FIRE 1099 Converter - Aggregation Engine
// =============================================================================
//
// This module computes every value that cannot be known per record in
// isolation. It runs four deterministic passes over the master record tree,
// in a fixed order, mutating the tree in place:
//
//   1. Payer totals        - per payer, sum each payee's sixteen payment
//                            amounts into the end-of-payer control totals,
//                            derive the payer's amount_codes string, and
//                            write the payee count.
//   2. Global totals       - total payee count onto the transmitter and
//                            end-of-transmission records; payer count onto
//                            end-of-transmission.
//   3. State totals        - for CF/SF payers only, group payees by state,
//                            build one K record per participating state, and
//                            annotate participating payees with their state
//                            code.
//   4. Sequence numbers    - number every record in traversal order, after
//                            all K records exist.
//
// Payment amounts that fail to parse as integers contribute zero to every
// total and are skipped silently. That leniency matches the upstream
// compliance decision of record: malformed amounts disappear from totals
// rather than failing the conversion.
//
// =============================================================================

package aggregate

import (
	"fmt"
	"strconv"

	"github.com/firefmt/fire-1099/internal/entities"
	"github.com/firefmt/fire-1099/internal/types"
)

// Run executes all aggregation passes over the submission, in order. The
// sequence counter is created here and lives for exactly one call, so
// concurrent conversions never share state.
func Run(sub *types.Submission) {
	insertPayerTotals(sub)
	insertGlobalTotals(sub)
	insertStateTotals(sub)
	insertSequenceNumbers(sub, NewSequence())
}

// =============================================================================
// PASS 1: PAYER TOTALS
// =============================================================================

// insertPayerTotals fills each payer's end-of-payer record with the control
// totals and payee count, and sets the payer's amount_codes string.
func insertPayerTotals(sub *types.Submission) {
	for _, payer := range sub.Payers {
		totals := sumAmounts(payer.Payees)

		amountCodes := ""
		for _, code := range entities.Codes {
			if totals[code] == 0 {
				continue
			}
			amountCodes += code
			payer.EndOfPayer[entities.AmountField(code)] = fmt.Sprintf("%018d", totals[code])
		}

		payer.Record["amount_codes"] = amountCodes
		payer.EndOfPayer["number_of_payees"] = fmt.Sprintf("%08d", len(payer.Payees))
	}
}

// sumAmounts accumulates the sixteen payment-code totals across the given
// payees. Unparsable amounts add zero.
func sumAmounts(payees []types.Record) map[string]int64 {
	totals := make(map[string]int64, len(entities.Codes))
	for _, payee := range payees {
		for _, code := range entities.Codes {
			amount, err := strconv.ParseInt(payee[entities.AmountField(code)], 10, 64)
			if err != nil {
				continue
			}
			totals[code] += amount
		}
	}
	return totals
}

// =============================================================================
// PASS 2: GLOBAL TOTALS
// =============================================================================

// insertGlobalTotals writes the submission-wide payee count onto the
// transmitter and end-of-transmission records, and the payer count onto the
// end-of-transmission record.
func insertGlobalTotals(sub *types.Submission) {
	payeeCount := 0
	for _, payer := range sub.Payers {
		payeeCount += len(payer.Payees)
	}

	sub.Transmitter["total_number_of_payees"] = fmt.Sprintf("%08d", payeeCount)
	sub.EndOfTransmission["total_number_of_payees"] = fmt.Sprintf("%08d", payeeCount)
	sub.EndOfTransmission["number_of_a_records"] = fmt.Sprintf("%08d", len(sub.Payers))
}

// =============================================================================
// PASS 3: STATE TOTALS (CF/SF)
// =============================================================================

// stateGroup accumulates one future K record.
type stateGroup struct {
	code    int
	payees  int
	amounts map[string]int64
}

// insertStateTotals builds K records for payers participating in the
// Combined Federal/State Filing program and annotates their participating
// payees with the 2-digit state code. Non-CF/SF payers are left untouched;
// payees in non-participating states contribute nothing.
func insertStateTotals(sub *types.Submission) {
	for _, payer := range sub.Payers {
		if !payer.CombinedFedState() {
			continue
		}

		groups := make(map[string]*stateGroup)
		var order []string // first-encountered-state order

		for _, payee := range payer.Payees {
			state := payee["payee_state"]
			code, ok := StateCode(state)
			if !ok {
				continue
			}

			group := groups[state]
			if group == nil {
				group = &stateGroup{code: code, amounts: make(map[string]int64)}
				groups[state] = group
				order = append(order, state)
			}
			group.payees++
			for _, amountCode := range entities.Codes {
				amount, err := strconv.ParseInt(payee[entities.AmountField(amountCode)], 10, 64)
				if err != nil {
					continue
				}
				group.amounts[amountCode] += amount
			}

			payee["combined_federal_state_code"] = fmt.Sprintf("%02d", code)
		}

		for _, state := range order {
			group := groups[state]
			input := map[string]string{
				"number_of_payees":            fmt.Sprintf("%08d", group.payees),
				"combined_federal_state_code": fmt.Sprintf("%02d", group.code),
			}
			for amountCode, total := range group.amounts {
				input[entities.AmountField(amountCode)] = fmt.Sprintf("%018d", total)
			}
			payer.StateTotals = append(payer.StateTotals, entities.StateTotals.Shape(input))
		}
	}
}

// =============================================================================
// PASS 4: SEQUENCE NUMBERS
// =============================================================================

// insertSequenceNumbers assigns the 8-digit record sequence numbers in
// traversal order: transmitter, then for each payer its A record, payees,
// end-of-payer, and state totals, then end-of-transmission. Must run after
// the state-totals pass so every K record exists.
func insertSequenceNumbers(sub *types.Submission, seq *Sequence) {
	sub.Transmitter["record_sequence_number"] = seq.Next()
	for _, payer := range sub.Payers {
		payer.Record["record_sequence_number"] = seq.Next()
		for _, payee := range payer.Payees {
			payee["record_sequence_number"] = seq.Next()
		}
		payer.EndOfPayer["record_sequence_number"] = seq.Next()
		for _, stateTotal := range payer.StateTotals {
			stateTotal["record_sequence_number"] = seq.Next()
		}
	}
	sub.EndOfTransmission["record_sequence_number"] = seq.Next()
}
