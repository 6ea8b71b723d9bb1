package report

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/firefmt/fire-1099/internal/aggregate"
	"github.com/firefmt/fire-1099/internal/entities"
	"github.com/firefmt/fire-1099/internal/types"
)

func TestWrite(t *testing.T) {
	payer := &types.Payer{
		Record: entities.Payer.Shape(map[string]string{
			"first_payer_name":   "Acme Co",
			"payer_tin":          "123456789",
			"combined_fed_state": "1",
		}),
		Payees: []types.Record{
			entities.Payee.Shape(map[string]string{
				"payee_state":      "CA",
				"payment_amount_1": "100",
			}),
		},
		EndOfPayer: entities.EndOfPayer.Shape(nil),
	}
	sub := &types.Submission{
		Transmitter:       entities.Transmitter.Shape(nil),
		Payers:            []*types.Payer{payer},
		EndOfTransmission: entities.EndOfTransmission.Shape(nil),
	}
	aggregate.Run(sub)

	path := filepath.Join(t.TempDir(), "summary.xlsx")
	if err := Write(sub, path); err != nil {
		t.Fatalf("Write: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	defer f.Close()

	name, err := f.GetCellValue("Payers", "A2")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if name != "ACME CO" {
		t.Errorf("payer name cell = %q", name)
	}

	code, err := f.GetCellValue("State Totals", "B2")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if code != "06" {
		t.Errorf("state code cell = %q", code)
	}
}
