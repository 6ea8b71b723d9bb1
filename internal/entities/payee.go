package entities

import "github.com/firefmt/fire-1099/internal/fields"

// Payee is the "B" record table, one per payee. Payment amounts are twelve
// characters here; the corresponding C and K control totals are eighteen.
//
// Positions per Publication 1220 (1099-MISC layout):
//
//	  1      Record Type           constant "B"
//	  2-  5  Payment Year
//	  6      Corrected Return Indicator
//	  7- 10  Payee Name Control
//	 11      Type of TIN
//	 12- 20  Payee TIN
//	 21- 40  Payer's Account Number for Payee
//	 41- 44  Payer's Office Code
//	 45- 54  Blank
//	 55-246  Payment Amounts 1-9, A-G (16 x 12)
//	247-262  Blank
//	263      Foreign Country Indicator
//	264-343  Payee Name (two 40-char lines)
//	344-383  Blank
//	384-423  Payee Mailing Address
//	424-463  Blank
//	464-503  Payee City
//	504-505  Payee State
//	506-514  Payee ZIP Code
//	515      Blank
//	516-523  Record Sequence Number
//	524-543  Blank
//	544      Second TIN Notice
//	545-546  Blank
//	547      Direct Sales Indicator
//	548      FATCA Filing Requirement Indicator
//	549-662  Blank
//	663-722  Special Data Entries
//	723-734  State Income Tax Withheld
//	735-746  Local Income Tax Withheld
//	747-748  Combined Federal/State Code (set by aggregation)
//	749-750  Blank
var Payee = fields.NewTable("B", fields.RecordLength, concat(
	[]fields.Field{
		{Name: "record_type", Default: "B", Width: 1, Fill: fields.Blank},
		{Name: "payment_year", Width: 4, Fill: fields.Blank, Transform: fields.DigitsOnly},
		{Name: "corrected_return_indicator", Width: 1, Fill: fields.Blank, Transform: fields.Uppercase},
		{Name: "payee_name_control", Width: 4, Fill: fields.Blank, Transform: fields.Uppercase},
		{Name: "type_of_tin", Width: 1, Fill: fields.Blank},
		{Name: "payee_tin", Width: 9, Fill: fields.Blank, Transform: fields.DigitsOnly},
		{Name: "payer_account_number", Width: 20, Fill: fields.Blank, Transform: fields.Uppercase},
		{Name: "payer_office_code", Width: 4, Fill: fields.Blank, Transform: fields.Uppercase},
		{Name: "blank_1", Width: 10, Fill: fields.Blank},
	},
	amountFields(12),
	[]fields.Field{
		{Name: "blank_2", Width: 16, Fill: fields.Blank},
		{Name: "foreign_country_indicator", Width: 1, Fill: fields.Blank},
		{Name: "first_payee_name", Width: 40, Fill: fields.Blank, Transform: fields.Uppercase},
		{Name: "second_payee_name", Width: 40, Fill: fields.Blank, Transform: fields.Uppercase},
		{Name: "blank_3", Width: 40, Fill: fields.Blank},
		{Name: "payee_mailing_address", Width: 40, Fill: fields.Blank, Transform: fields.Uppercase},
		{Name: "blank_4", Width: 40, Fill: fields.Blank},
		{Name: "payee_city", Width: 40, Fill: fields.Blank, Transform: fields.Uppercase},
		{Name: "payee_state", Width: 2, Fill: fields.Blank, Transform: fields.Uppercase},
		{Name: "payee_zip_code", Width: 9, Fill: fields.Blank, Transform: fields.DigitsOnly},
		{Name: "blank_5", Width: 1, Fill: fields.Blank},
		{Name: "record_sequence_number", Width: 8, Fill: '0'},
		{Name: "blank_6", Width: 20, Fill: fields.Blank},
		{Name: "second_tin_notice", Width: 1, Fill: fields.Blank},
		{Name: "blank_7", Width: 2, Fill: fields.Blank},
		{Name: "direct_sales_indicator", Width: 1, Fill: fields.Blank},
		{Name: "fatca_filing_requirement_indicator", Width: 1, Fill: fields.Blank},
		{Name: "blank_8", Width: 114, Fill: fields.Blank},
		{Name: "special_data_entries", Width: 60, Fill: fields.Blank},
		{Name: "state_income_tax_withheld", Default: "000000000000", Width: 12, Fill: '0', Transform: fields.RightZero(12)},
		{Name: "local_income_tax_withheld", Default: "000000000000", Width: 12, Fill: '0', Transform: fields.RightZero(12)},
		{Name: "combined_federal_state_code", Width: 2, Fill: fields.Blank},
		{Name: "blank_9", Width: 2, Fill: fields.Blank},
	},
))
