// =============================================================================
// FIRE 1099 Converter - Translator Module
// =============================================================================
//
// This module contains the core conversion pipeline. It turns one validated
// JSON input document into the fixed-width ASCII stream required by the IRS
// FIRE system.
//
// CONVERSION PIPELINE:
//   1. Decode the JSON input document
//   2. Validate it against the embedded base schema
//   3. Shape every entity into the master record tree (defaults + transforms)
//   4. Run the aggregation passes (totals, state totals, sequence numbers)
//   5. Encode every record and concatenate the 750-character strings
//
// Any stage failure aborts the whole pipeline; no partial output is ever
// produced. The pipeline is a pure function of one input document - each
// call builds its own tree and sequence counter, so concurrent conversions
// need no synchronization.
//
// =============================================================================

package translator

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/firefmt/fire-1099/internal/aggregate"
	"github.com/firefmt/fire-1099/internal/entities"
	"github.com/firefmt/fire-1099/internal/fields"
	"github.com/firefmt/fire-1099/internal/types"
	"github.com/firefmt/fire-1099/internal/validation"
)

// Options adjusts a single conversion run.
type Options struct {
	// Debug dumps the aggregated master tree as indented JSON to DebugWriter
	// before encoding.
	Debug bool

	// DebugWriter receives the debug dump. Ignored unless Debug is set.
	DebugWriter io.Writer
}

// Translator converts input documents into FIRE submissions. One Translator
// may serve any number of conversions, concurrently or not; all per-run
// state lives in the call.
type Translator struct {
	validator *validation.Validator
}

// New builds a Translator with the embedded-schema validator.
func New() (*Translator, error) {
	v, err := validation.New()
	if err != nil {
		return nil, err
	}
	return &Translator{validator: v}, nil
}

// Validate decodes and schema-checks an input document without converting
// it. Used by the validate command.
func (t *Translator) Validate(data []byte) error {
	doc, err := decode(data)
	if err != nil {
		return err
	}
	return t.validator.Validate(doc)
}

// Convert runs the full pipeline over one input document and returns the
// FIRE-formatted string plus the aggregated master tree (for reporting).
func (t *Translator) Convert(data []byte, opts Options) (string, *types.Submission, error) {
	doc, err := decode(data)
	if err != nil {
		return "", nil, err
	}
	if err := t.validator.Validate(doc); err != nil {
		return "", nil, err
	}

	input, err := extract(doc)
	if err != nil {
		return "", nil, err
	}

	sub := shape(input)
	aggregate.Run(sub)

	if opts.Debug && opts.DebugWriter != nil {
		if err := dump(sub, opts.DebugWriter); err != nil {
			return "", nil, err
		}
	}

	out, err := encode(sub)
	if err != nil {
		return "", nil, err
	}
	return out, sub, nil
}

// decode unmarshals the raw input into a generic document for validation.
func decode(data []byte) (any, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse input JSON: %w", err)
	}
	return doc, nil
}

// =============================================================================
// SHAPING
// =============================================================================

// shape merges the user input with each entity table's defaults, producing
// the master record tree. End-of-payer and end-of-transmission records are
// shaped from empty input; aggregation fills them in later.
func shape(input *input) *types.Submission {
	sub := &types.Submission{
		Transmitter: entities.Transmitter.Shape(input.transmitter),
	}
	for _, p := range input.payers {
		payer := &types.Payer{
			Record:     entities.Payer.Shape(p.fields),
			EndOfPayer: entities.EndOfPayer.Shape(nil),
		}
		for _, payee := range p.payees {
			payer.Payees = append(payer.Payees, entities.Payee.Shape(payee))
		}
		sub.Payers = append(sub.Payers, payer)
	}
	sub.EndOfTransmission = entities.EndOfTransmission.Shape(nil)
	return sub
}

// =============================================================================
// ENCODING
// =============================================================================

// encode serializes the aggregated tree depth-first: transmitter, then per
// payer its A record, payees, end-of-payer, and state totals, then the
// end-of-transmission record. Records are concatenated with no delimiters;
// boundaries are purely positional.
func encode(sub *types.Submission) (string, error) {
	var b strings.Builder
	b.Grow(sub.RecordCount() * fields.RecordLength)

	write := func(table *fields.Table, record types.Record) error {
		s, err := table.Encode(record)
		if err != nil {
			return err
		}
		b.WriteString(s)
		return nil
	}

	if err := write(entities.Transmitter, sub.Transmitter); err != nil {
		return "", err
	}
	for _, payer := range sub.Payers {
		if err := write(entities.Payer, payer.Record); err != nil {
			return "", err
		}
		for _, payee := range payer.Payees {
			if err := write(entities.Payee, payee); err != nil {
				return "", err
			}
		}
		if err := write(entities.EndOfPayer, payer.EndOfPayer); err != nil {
			return "", err
		}
		for _, stateTotal := range payer.StateTotals {
			if err := write(entities.StateTotals, stateTotal); err != nil {
				return "", err
			}
		}
	}
	if err := write(entities.EndOfTransmission, sub.EndOfTransmission); err != nil {
		return "", err
	}

	return b.String(), nil
}

// dump writes the aggregated tree as indented JSON, mirroring the shape the
// encoder consumes. Intended for eyeballing totals and sequence numbers.
func dump(sub *types.Submission, w io.Writer) error {
	out, err := json.MarshalIndent(sub, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to render debug dump: %w", err)
	}
	if _, err := w.Write(append(out, '\n')); err != nil {
		return fmt.Errorf("failed to write debug dump: %w", err)
	}
	return nil
}
