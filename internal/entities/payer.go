package entities

import "github.com/firefmt/fire-1099/internal/fields"

// Payer is the "A" record table. One per payer; carries the payer identity
// and the amount_codes string computed from its payees' nonzero totals.
//
// Positions per Publication 1220:
//
//	  1      Record Type           constant "A"
//	  2-  5  Payment Year
//	  6      Combined Federal/State Filer ("1" opts into CF/SF)
//	  7- 11  Blank
//	 12- 20  Payer TIN
//	 21- 24  Payer Name Control
//	 25      Last Filing Indicator
//	 26- 27  Type of Return        "A " = 1099-MISC
//	 28- 43  Amount Codes          filled by aggregation
//	 44- 51  Blank
//	 52      Foreign Entity Indicator
//	 53-132  Payer Name (two 40-char lines)
//	133      Transfer Agent Indicator
//	134-173  Payer Shipping Address
//	174-213  Payer City
//	214-215  Payer State
//	216-224  Payer ZIP Code
//	225-239  Payer Phone Number
//	240-499  Blank
//	500-507  Record Sequence Number
//	508-750  Blank / reserved
var Payer = fields.NewTable("A", fields.RecordLength, []fields.Field{
	{Name: "record_type", Default: "A", Width: 1, Fill: fields.Blank},
	{Name: "payment_year", Width: 4, Fill: fields.Blank, Transform: fields.DigitsOnly},
	{Name: "combined_fed_state", Width: 1, Fill: fields.Blank},
	{Name: "blank_1", Width: 5, Fill: fields.Blank},
	{Name: "payer_tin", Width: 9, Fill: fields.Blank, Transform: fields.DigitsOnly},
	{Name: "payer_name_control", Width: 4, Fill: fields.Blank, Transform: fields.Uppercase},
	{Name: "last_filing_indicator", Width: 1, Fill: fields.Blank, Transform: fields.Uppercase},
	{Name: "type_of_return", Default: "A", Width: 2, Fill: fields.Blank, Transform: fields.Uppercase},
	{Name: "amount_codes", Width: 16, Fill: fields.Blank, Transform: fields.Uppercase},
	{Name: "blank_2", Width: 8, Fill: fields.Blank},
	{Name: "foreign_entity_indicator", Width: 1, Fill: fields.Blank},
	{Name: "first_payer_name", Width: 40, Fill: fields.Blank, Transform: fields.Uppercase},
	{Name: "second_payer_name", Width: 40, Fill: fields.Blank, Transform: fields.Uppercase},
	{Name: "transfer_agent_indicator", Default: "0", Width: 1, Fill: fields.Blank},
	{Name: "payer_shipping_address", Width: 40, Fill: fields.Blank, Transform: fields.Uppercase},
	{Name: "payer_city", Width: 40, Fill: fields.Blank, Transform: fields.Uppercase},
	{Name: "payer_state", Width: 2, Fill: fields.Blank, Transform: fields.Uppercase},
	{Name: "payer_zip_code", Width: 9, Fill: fields.Blank, Transform: fields.DigitsOnly},
	{Name: "payer_phone_number", Width: 15, Fill: fields.Blank, Transform: fields.DigitsOnly},
	{Name: "blank_3", Width: 260, Fill: fields.Blank},
	{Name: "record_sequence_number", Width: 8, Fill: '0'},
	{Name: "blank_4", Width: 241, Fill: fields.Blank},
	{Name: "blank_5", Width: 2, Fill: fields.Blank},
})
