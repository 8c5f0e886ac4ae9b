package xlsx

import (
	"fmt"
	"strings"
)

// LoadError indicates the uploaded bytes are not a parseable workbook.
// It is fatal for the request; there is no partial result.
type LoadError struct {
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to read Excel: %v", e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// MissingSheetsError indicates one or more required sheets are absent.
// The message lists every missing name, not just the first.
type MissingSheetsError struct {
	Missing []string
}

func (e *MissingSheetsError) Error() string {
	return "Missing required sheets: " + strings.Join(e.Missing, ", ")
}

// CheckRequiredSheets verifies that every required sheet is present.
// Returns a *MissingSheetsError naming each absent sheet, or nil.
func CheckRequiredSheets(wb *Workbook, required []string) error {
	if missing := wb.MissingSheets(required); len(missing) > 0 {
		return &MissingSheetsError{Missing: missing}
	}
	return nil
}
