// Package core provides the business logic for workbook validation runs.
// This package has no UI dependencies and can be used by any frontend.
package core

import (
	"time"

	"github.com/washimkgp/JPW-File-Validator-New-V1/internal/rules"
)

// Result is the outcome of one validation run. Records is never nil: a
// clean workbook produces an empty slice, which is success, not an error.
type Result struct {
	// RunID identifies the run for later report downloads.
	RunID string

	// FileName is the uploaded file's name, for display only.
	FileName string

	// Records holds every detected issue in fixed check order.
	Records []rules.ErrorRecord

	// Cached is true when the records came from the content-hash cache
	// rather than a fresh parse.
	Cached bool

	// Duration is how long the load + validate took.
	Duration time.Duration

	// CreatedAt is when the run finished.
	CreatedAt time.Time
}

// IssueCount returns the number of detected issues.
func (r *Result) IssueCount() int {
	return len(r.Records)
}

// Clean reports whether the workbook passed every check.
func (r *Result) Clean() bool {
	return len(r.Records) == 0
}
