package entities

import "github.com/firefmt/fire-1099/internal/fields"

// EndOfTransmission is the "F" record table, the last record of a
// submission. Aggregation fills the payer ("A") record count and repeats the
// global payee count carried on the transmitter record.
//
// Positions per Publication 1220:
//
//	  1      Record Type           constant "F"
//	  2-  9  Number of A Records
//	 10- 30  Zeros
//	 31- 49  Blank
//	 50- 57  Total Number of Payees
//	 58-499  Blank
//	500-507  Record Sequence Number
//	508-750  Blank / reserved
var EndOfTransmission = fields.NewTable("F", fields.RecordLength, []fields.Field{
	{Name: "record_type", Default: "F", Width: 1, Fill: fields.Blank},
	{Name: "number_of_a_records", Width: 8, Fill: '0', Transform: fields.RightZero(8)},
	{Name: "zeros", Default: "000000000000000000000", Width: 21, Fill: '0'},
	{Name: "blank_1", Width: 19, Fill: fields.Blank},
	{Name: "total_number_of_payees", Width: 8, Fill: '0', Transform: fields.RightZero(8)},
	{Name: "blank_2", Width: 442, Fill: fields.Blank},
	{Name: "record_sequence_number", Width: 8, Fill: '0'},
	{Name: "blank_3", Width: 241, Fill: fields.Blank},
	{Name: "blank_4", Width: 2, Fill: fields.Blank},
})
