// =============================================================================
// FIRE 1099 Converter - Field Tables and Record Codec
// =============================================================================
//
// This module defines the declarative field machinery shared by every record
// kind in a FIRE submission. Each record kind (Transmitter "T", Payer "A",
// Payee "B", End-of-Payer "C", State Totals "K", End-of-Transmission "F") is
// described by an ordered Table of Field descriptors:
//
//   (name, default value, width, fill character, transform function)
//
// The codec has two steps:
//   1. Shape  - merge user-supplied values with defaults, applying the field's
//               transform to supplied values only (defaults pass verbatim).
//   2. Encode - concatenate all fields in declared order, each padded to its
//               exact width, producing one fixed-length record string.
//
// Width enforcement lives here and nowhere else: any padded field whose
// length differs from its declared width, or any record whose total length
// differs from the record kind's fixed length, aborts the whole conversion.
// Those conditions indicate a defective table or transform, never bad user
// input, so they are not recoverable per record.
//
// =============================================================================

package fields

import (
	"fmt"
	"strings"
)

// RecordLength is the fixed length of every record in a FIRE submission,
// per IRS Publication 1220.
const RecordLength = 750

// Blank is the fill character used for unused positions in a record.
const Blank = ' '

// =============================================================================
// FIELD DESCRIPTOR
// =============================================================================

// Transform converts a user-supplied field value into its on-record form.
// Transforms are pure and are applied only to supplied values; defaults are
// emitted verbatim.
type Transform func(string) string

// Field describes a single position range within a record.
type Field struct {
	// Name is the user-facing key for the field, unique within its table.
	Name string

	// Default is the value emitted when the user supplies nothing.
	Default string

	// Width is the exact number of characters the field occupies.
	Width int

	// Fill pads the value up to Width during encoding.
	Fill byte

	// Transform shapes a user-supplied value. Nil means identity.
	Transform Transform
}

// =============================================================================
// TABLE
// =============================================================================

// Table is the ordered field list for one record kind. The declaration order
// is the encoding order; the widths must sum to the record kind's fixed
// total length.
type Table struct {
	kind   string
	length int
	fields []Field
}

// NewTable builds a Table for the given record kind ("T", "A", ...) with the
// kind's fixed total record length. Every FIRE record kind uses
// RecordLength.
func NewTable(kind string, length int, fields []Field) *Table {
	return &Table{
		kind:   kind,
		length: length,
		fields: fields,
	}
}

// Kind returns the record type letter for this table.
func (t *Table) Kind() string { return t.kind }

// Length returns the record kind's fixed total length.
func (t *Table) Length() int { return t.length }

// Fields returns the table's descriptors in encoding order.
func (t *Table) Fields() []Field { return t.fields }

// Names returns the field names in encoding order.
func (t *Table) Names() []string {
	names := make([]string, len(t.fields))
	for i, f := range t.fields {
		names[i] = f.Name
	}
	return names
}

// TotalWidth returns the sum of all declared field widths.
func (t *Table) TotalWidth() int {
	total := 0
	for _, f := range t.fields {
		total += f.Width
	}
	return total
}

// =============================================================================
// SHAPE
// =============================================================================

// Shape merges user-supplied values with the table's defaults. For each field
// in the table, the output holds transform(input[name]) when the user supplied
// a value, and the field's default otherwise. Missing user fields are never an
// error; required-field enforcement belongs to schema validation upstream.
//
// The result always contains exactly the table's field set.
func (t *Table) Shape(input map[string]string) map[string]string {
	shaped := make(map[string]string, len(t.fields))
	for _, f := range t.fields {
		value, ok := input[f.Name]
		if !ok {
			shaped[f.Name] = f.Default
			continue
		}
		if f.Transform != nil {
			value = f.Transform(value)
		}
		shaped[f.Name] = value
	}
	return shaped
}

// =============================================================================
// ENCODE
// =============================================================================

// Encode serializes a shaped entity into one fixed-width record string.
// Fields are emitted in declaration order, each padded on the right with its
// fill character. Numeric fields arrive already left-zero-padded from their
// transforms, so the codec itself only ever pads on the right.
//
// Returns a WidthError if any padded field does not land exactly on its
// declared width (an oversized value slipped past its transform), or a
// LengthError if the whole record is not exactly the table's fixed length.
// Both are fatal and abort the conversion.
func (t *Table) Encode(shaped map[string]string) (string, error) {
	var b strings.Builder
	b.Grow(t.length)

	for _, f := range t.fields {
		value := shaped[f.Name]
		padded := pad(value, f.Width, f.Fill)
		if len(padded) != f.Width {
			return "", &WidthError{
				Kind:  t.kind,
				Field: f.Name,
				Want:  f.Width,
				Got:   len(padded),
				Value: value,
			}
		}
		b.WriteString(padded)
	}

	record := b.String()
	if len(record) != t.length {
		return "", &LengthError{Kind: t.kind, Want: t.length, Got: len(record)}
	}
	return record, nil
}

// pad right-pads value with fill up to width. Values already at or beyond
// width are returned unchanged; Encode reports the overflow.
func pad(value string, width int, fill byte) string {
	if len(value) >= width {
		return value
	}
	return value + strings.Repeat(string(fill), width-len(value))
}

// =============================================================================
// CODEC ERRORS
// =============================================================================

// WidthError reports a field whose padded value missed its declared width.
type WidthError struct {
	Kind  string
	Field string
	Want  int
	Got   int
	Value string
}

// Error implements the error interface.
func (e *WidthError) Error() string {
	return fmt.Sprintf("record %q field %q: encoded width %d, want %d (value %q)",
		e.Kind, e.Field, e.Got, e.Want, e.Value)
}

// LengthError reports a record whose total length drifted from RecordLength.
type LengthError struct {
	Kind string
	Want int
	Got  int
}

// Error implements the error interface.
func (e *LengthError) Error() string {
	return fmt.Sprintf("record %q: total length %d, want %d", e.Kind, e.Got, e.Want)
}
