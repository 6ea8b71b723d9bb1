// =============================================================================
// FIRE 1099 Converter - Value Transforms
// =============================================================================
//
// Shared transforms applied to user-supplied field values during shaping.
// Publication 1220 formatting rules repeat across record kinds: most text
// fields must be uppercase, identification numbers must be bare digits, and
// money amounts must be right-justified and zero-filled to a fixed width.
//
// Transforms enforce width for numeric fields; the codec in fields.go only
// ever right-pads with the field's fill character.
//
// =============================================================================

package fields

import (
	"strings"
	"unicode"
)

// Uppercase returns the value with all letters uppercased.
func Uppercase(value string) string {
	return strings.ToUpper(value)
}

// DigitsOnly strips every non-digit character from the value.
func DigitsOnly(value string) string {
	var b strings.Builder
	for _, r := range value {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// RightZero builds a transform that strips non-digits and left-pads the
// result with zeros to the given width. Used for amount and count fields.
func RightZero(width int) Transform {
	return func(value string) string {
		digits := DigitsOnly(value)
		if len(digits) >= width {
			return digits
		}
		return strings.Repeat("0", width-len(digits)) + digits
	}
}
