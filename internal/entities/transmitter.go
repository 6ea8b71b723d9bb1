package entities

import "github.com/firefmt/fire-1099/internal/fields"

// Transmitter is the "T" record table. One per submission; identifies the
// transmitter and carries the global payee count filled in by aggregation.
//
// Positions per Publication 1220:
//
//	  1      Record Type           constant "T"
//	  2-  5  Payment Year
//	  6      Prior Year Data Indicator
//	  7- 15  Transmitter TIN
//	 16- 20  Transmitter Control Code
//	 21- 27  Blank
//	 28      Test File Indicator
//	 29      Foreign Entity Indicator
//	 30-109  Transmitter Name (two 40-char lines)
//	110-189  Company Name (two 40-char lines)
//	190-229  Company Mailing Address
//	230-269  Company City
//	270-271  Company State
//	272-280  Company ZIP Code
//	281-295  Blank
//	296-303  Total Number of Payees
//	304-343  Contact Name
//	344-358  Contact Phone
//	359-408  Contact Email
//	409-499  Blank
//	500-507  Record Sequence Number
//	508-517  Blank
//	518-704  Vendor fields
//	705-750  Blank / reserved
var Transmitter = fields.NewTable("T", fields.RecordLength, []fields.Field{
	{Name: "record_type", Default: "T", Width: 1, Fill: fields.Blank},
	{Name: "payment_year", Width: 4, Fill: fields.Blank, Transform: fields.DigitsOnly},
	{Name: "prior_year_data_indicator", Width: 1, Fill: fields.Blank, Transform: fields.Uppercase},
	{Name: "transmitter_tin", Width: 9, Fill: fields.Blank, Transform: fields.DigitsOnly},
	{Name: "transmitter_control_code", Width: 5, Fill: fields.Blank, Transform: fields.Uppercase},
	{Name: "blank_1", Width: 7, Fill: fields.Blank},
	{Name: "test_file_indicator", Width: 1, Fill: fields.Blank, Transform: fields.Uppercase},
	{Name: "foreign_entity_indicator", Width: 1, Fill: fields.Blank},
	{Name: "transmitter_name", Width: 40, Fill: fields.Blank, Transform: fields.Uppercase},
	{Name: "transmitter_name_contd", Width: 40, Fill: fields.Blank, Transform: fields.Uppercase},
	{Name: "company_name", Width: 40, Fill: fields.Blank, Transform: fields.Uppercase},
	{Name: "company_name_contd", Width: 40, Fill: fields.Blank, Transform: fields.Uppercase},
	{Name: "company_mailing_address", Width: 40, Fill: fields.Blank, Transform: fields.Uppercase},
	{Name: "company_city", Width: 40, Fill: fields.Blank, Transform: fields.Uppercase},
	{Name: "company_state", Width: 2, Fill: fields.Blank, Transform: fields.Uppercase},
	{Name: "company_zip_code", Width: 9, Fill: fields.Blank, Transform: fields.DigitsOnly},
	{Name: "blank_2", Width: 15, Fill: fields.Blank},
	{Name: "total_number_of_payees", Width: 8, Fill: '0', Transform: fields.RightZero(8)},
	{Name: "transmitter_contact_name", Width: 40, Fill: fields.Blank, Transform: fields.Uppercase},
	{Name: "transmitter_contact_phone", Width: 15, Fill: fields.Blank, Transform: fields.DigitsOnly},
	{Name: "transmitter_contact_email", Width: 50, Fill: fields.Blank},
	{Name: "blank_3", Width: 91, Fill: fields.Blank},
	{Name: "record_sequence_number", Width: 8, Fill: '0'},
	{Name: "blank_4", Width: 10, Fill: fields.Blank},
	{Name: "vendor_indicator", Width: 1, Fill: fields.Blank, Transform: fields.Uppercase},
	{Name: "vendor_name", Width: 40, Fill: fields.Blank, Transform: fields.Uppercase},
	{Name: "vendor_mailing_address", Width: 40, Fill: fields.Blank, Transform: fields.Uppercase},
	{Name: "vendor_city", Width: 40, Fill: fields.Blank, Transform: fields.Uppercase},
	{Name: "vendor_state", Width: 2, Fill: fields.Blank, Transform: fields.Uppercase},
	{Name: "vendor_zip_code", Width: 9, Fill: fields.Blank, Transform: fields.DigitsOnly},
	{Name: "vendor_contact_name", Width: 40, Fill: fields.Blank, Transform: fields.Uppercase},
	{Name: "vendor_contact_phone", Width: 15, Fill: fields.Blank, Transform: fields.DigitsOnly},
	{Name: "blank_5", Width: 35, Fill: fields.Blank},
	{Name: "vendor_foreign_entity_indicator", Width: 1, Fill: fields.Blank},
	{Name: "blank_6", Width: 8, Fill: fields.Blank},
	{Name: "blank_7", Width: 2, Fill: fields.Blank},
})
