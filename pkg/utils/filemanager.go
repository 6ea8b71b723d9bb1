// =============================================================================
// FIRE 1099 Converter - File Manager Utility
// =============================================================================
//
// This module provides the file plumbing around the conversion core:
//   - Default output naming (payment year + UTC timestamp)
//   - Atomic output writes (buffer to a temp file, then rename)
//   - Directory management
//
// ATOMIC WRITE STRATEGY:
//   The FIRE output is written to a uniquely named temp file in the target
//   directory and renamed into place only once fully written. A failed
//   conversion or a failed write therefore never leaves a truncated output
//   file behind.
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// DefaultOutputPath builds the output path used when the caller gives none:
// a sibling of the input file named from the payment year and a UTC
// timestamp, e.g. "fire_2023_output_2023-01-31_12_00_00".
func DefaultOutputPath(inputPath, outputDir, paymentYear string, now time.Time) string {
	dir := outputDir
	if dir == "" {
		dir = filepath.Dir(inputPath)
	}
	stamp := now.UTC().Format("2006-01-02_15_04_05")
	return filepath.Join(dir, fmt.Sprintf("fire_%s_output_%s", paymentYear, stamp))
}

// EnsureDir creates the directory (and parents) if it does not exist.
func EnsureDir(dir string) error {
	if dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// WriteFileAtomic writes data to path via a uniquely named temp file in the
// same directory followed by a rename. On any failure the temp file is
// removed and the destination is left untouched.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))

	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to move output into place at %s: %w", path, err)
	}
	return nil
}
