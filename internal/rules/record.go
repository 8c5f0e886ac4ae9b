package rules

// ErrorRecord is one detected issue. Records are append-only; ordering is
// check order, then original row order within a check. The same row may
// appear under several checks; nothing deduplicates across checks.
type ErrorRecord struct {
	// Sheet is the name of the sheet the offending row lives in.
	Sheet string `json:"sheet"`

	// RowIndex is the 1-based spreadsheet row number (header is row 1,
	// so data rows start at 2).
	RowIndex int `json:"row_index"`

	// ErrorType labels the failed check, e.g. "Duplicate MobileNumber"
	// or "Invalid reference: Partner".
	ErrorType string `json:"error_type"`

	// Entity names the business object the row represents.
	Entity string `json:"entity"`

	// Message is the operator-facing description of the issue.
	Message string `json:"message"`
}
