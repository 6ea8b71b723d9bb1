package entities

import "github.com/firefmt/fire-1099/internal/fields"

// EndOfPayer is the "C" record table, one per payer. Every meaningful field
// is computed by aggregation: the payee count and the sixteen 18-character
// control totals summed across the payer's B records.
//
// Positions per Publication 1220:
//
//	  1      Record Type           constant "C"
//	  2-  9  Number of Payees
//	 10- 15  Blank
//	 16-303  Control Totals 1-9, A-G (16 x 18)
//	304-499  Blank
//	500-507  Record Sequence Number
//	508-750  Blank / reserved
var EndOfPayer = fields.NewTable("C", fields.RecordLength, concat(
	[]fields.Field{
		{Name: "record_type", Default: "C", Width: 1, Fill: fields.Blank},
		{Name: "number_of_payees", Width: 8, Fill: '0', Transform: fields.RightZero(8)},
		{Name: "blank_1", Width: 6, Fill: fields.Blank},
	},
	amountFields(18),
	[]fields.Field{
		{Name: "blank_2", Width: 196, Fill: fields.Blank},
		{Name: "record_sequence_number", Width: 8, Fill: '0'},
		{Name: "blank_3", Width: 241, Fill: fields.Blank},
		{Name: "blank_4", Width: 2, Fill: fields.Blank},
	},
))
