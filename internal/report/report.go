// =============================================================================
// FIRE 1099 Converter - Summary Report Module
// =============================================================================
//
// This module writes an XLSX workbook summarizing an aggregated submission:
// one sheet of per-payer control totals and one sheet of CF/SF state totals.
// The workbook is a human-readable companion to the FIRE file - the fixed
// width output is unreadable without a position ruler, so reviewers sign off
// on the spreadsheet instead.
//
// The report reads the tree strictly after aggregation and never mutates it.
//
// =============================================================================

package report

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/firefmt/fire-1099/internal/entities"
	"github.com/firefmt/fire-1099/internal/types"
)

const (
	payersSheet = "Payers"
	statesSheet = "State Totals"
)

// Write renders the submission summary workbook at the given path.
func Write(sub *types.Submission, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", payersSheet); err != nil {
		return fmt.Errorf("failed to prepare report workbook: %w", err)
	}
	if _, err := f.NewSheet(statesSheet); err != nil {
		return fmt.Errorf("failed to prepare report workbook: %w", err)
	}

	if err := writePayers(f, sub); err != nil {
		return err
	}
	if err := writeStateTotals(f, sub); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return nil
}

// writePayers fills the per-payer sheet: identity, payee count, amount
// codes, and the sixteen control totals from the end-of-payer record.
func writePayers(f *excelize.File, sub *types.Submission) error {
	header := []any{"Payer", "TIN", "Payees", "Amount Codes"}
	for _, code := range entities.Codes {
		header = append(header, "Amount "+code)
	}
	if err := f.SetSheetRow(payersSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write report header: %w", err)
	}

	for i, payer := range sub.Payers {
		row := []any{
			payer.Record["first_payer_name"],
			payer.Record["payer_tin"],
			len(payer.Payees),
			payer.Record["amount_codes"],
		}
		for _, code := range entities.Codes {
			row = append(row, amountCell(payer.EndOfPayer[entities.AmountField(code)]))
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(payersSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write payer row %d: %w", i+1, err)
		}
	}
	return nil
}

// writeStateTotals fills the CF/SF sheet, one row per K record.
func writeStateTotals(f *excelize.File, sub *types.Submission) error {
	header := []any{"Payer", "State Code", "Payees"}
	for _, code := range entities.Codes {
		header = append(header, "Amount "+code)
	}
	if err := f.SetSheetRow(statesSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write report header: %w", err)
	}

	rowNum := 2
	for _, payer := range sub.Payers {
		for _, stateTotal := range payer.StateTotals {
			row := []any{
				payer.Record["first_payer_name"],
				stateTotal["combined_federal_state_code"],
				amountCell(stateTotal["number_of_payees"]),
			}
			for _, code := range entities.Codes {
				row = append(row, amountCell(stateTotal[entities.AmountField(code)]))
			}
			cell := fmt.Sprintf("A%d", rowNum)
			if err := f.SetSheetRow(statesSheet, cell, &row); err != nil {
				return fmt.Errorf("failed to write state totals row %d: %w", rowNum-1, err)
			}
			rowNum++
		}
	}
	return nil
}

// amountCell renders a zero-padded numeric field as a number, falling back
// to the raw string when it does not parse.
func amountCell(value string) any {
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return value
	}
	return n
}
