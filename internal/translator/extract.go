// =============================================================================
// FIRE 1099 Converter - Input Extraction
// =============================================================================
//
// Pulls the validated generic JSON document apart into the string maps the
// shaping step consumes. The schema has already enforced structure and
// required fields by the time this runs, so the checks here are defensive
// guards against a schema/extractor mismatch, not user-facing validation.
//
// =============================================================================

package translator

import "fmt"

// input is the extracted user document: one transmitter, ordered payers.
type input struct {
	transmitter map[string]string
	payers      []*payerInput
}

// payerInput is one payer's scalar fields plus its payees.
type payerInput struct {
	fields map[string]string
	payees []map[string]string
}

// extract converts the decoded JSON document into string maps keyed by
// entity field names. Non-string scalar values are ignored; the schema
// restricts user fields to strings.
func extract(doc any) (*input, error) {
	root, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("input document is not a JSON object")
	}

	transmitter, ok := root["transmitter"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("input document is missing the transmitter object")
	}

	rawPayers, ok := root["payers"].([]any)
	if !ok {
		return nil, fmt.Errorf("input document is missing the payers array")
	}

	out := &input{transmitter: stringFields(transmitter, "")}
	for i, rawPayer := range rawPayers {
		payerDoc, ok := rawPayer.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("payer %d is not a JSON object", i)
		}

		payer := &payerInput{fields: stringFields(payerDoc, "payees")}
		rawPayees, ok := payerDoc["payees"].([]any)
		if !ok {
			return nil, fmt.Errorf("payer %d is missing the payees array", i)
		}
		for j, rawPayee := range rawPayees {
			payeeDoc, ok := rawPayee.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("payer %d payee %d is not a JSON object", i, j)
			}
			payer.payees = append(payer.payees, stringFields(payeeDoc, ""))
		}
		out.payers = append(out.payers, payer)
	}

	return out, nil
}

// stringFields copies the string-valued entries of a JSON object, skipping
// the named key (used to drop the nested payees array).
func stringFields(doc map[string]any, skip string) map[string]string {
	out := make(map[string]string, len(doc))
	for key, value := range doc {
		if key == skip {
			continue
		}
		if s, ok := value.(string); ok {
			out[key] = s
		}
	}
	return out
}
