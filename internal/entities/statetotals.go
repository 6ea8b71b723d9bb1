package entities

import "github.com/firefmt/fire-1099/internal/fields"

// StateTotals is the "K" record table. Payers participating in the Combined
// Federal/State Filing program get one K record per state with payees in
// that state; aggregation creates these records wholesale.
//
// Positions per Publication 1220:
//
//	  1      Record Type           constant "K"
//	  2-  9  Number of Payees
//	 10- 15  Blank
//	 16-303  Control Totals 1-9, A-G (16 x 18)
//	304-499  Blank
//	500-507  Record Sequence Number
//	508-706  Blank
//	707-724  State Income Tax Withheld
//	725-742  Local Income Tax Withheld
//	743-746  Blank
//	747-748  Combined Federal/State Code
//	749-750  Blank
var StateTotals = fields.NewTable("K", fields.RecordLength, concat(
	[]fields.Field{
		{Name: "record_type", Default: "K", Width: 1, Fill: fields.Blank},
		{Name: "number_of_payees", Width: 8, Fill: '0', Transform: fields.RightZero(8)},
		{Name: "blank_1", Width: 6, Fill: fields.Blank},
	},
	amountFields(18),
	[]fields.Field{
		{Name: "blank_2", Width: 196, Fill: fields.Blank},
		{Name: "record_sequence_number", Width: 8, Fill: '0'},
		{Name: "blank_3", Width: 199, Fill: fields.Blank},
		{Name: "state_income_tax_withheld", Width: 18, Fill: fields.Blank},
		{Name: "local_income_tax_withheld", Width: 18, Fill: fields.Blank},
		{Name: "blank_4", Width: 4, Fill: fields.Blank},
		{Name: "combined_federal_state_code", Width: 2, Fill: fields.Blank},
		{Name: "blank_5", Width: 2, Fill: fields.Blank},
	},
))
