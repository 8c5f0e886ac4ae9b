package core

// error_messages.go maps internal errors to operator-facing messages with
// support codes. The operator can quote the code when asking for help.
//
// Codes:
//
//	FILE001 - upload could not be read as an Excel workbook
//	FILE002 - uploaded file too large or malformed form
//	SHEET001 - required sheets missing from the workbook
//	RUN001 - too many validations in flight
//	RUN002 - request cancelled or timed out
//	ERR000 - anything else

import (
	"context"
	"errors"

	"github.com/washimkgp/JPW-File-Validator-New-V1/internal/xlsx"
)

// UserMessage is a user-friendly rendering of an internal error.
type UserMessage struct {
	Code    string
	Message string
	Action  string
}

// MapError converts an internal error to a UserMessage. Load and
// missing-sheet errors carry their own text verbatim: the operator needs
// the detail (which sheets, what the parser said) to fix the file.
func MapError(err error) UserMessage {
	var loadErr *xlsx.LoadError
	if errors.As(err, &loadErr) {
		return UserMessage{
			Code:    "FILE001",
			Message: loadErr.Error(),
			Action:  "Upload a valid .xlsx export and try again",
		}
	}

	var missingErr *xlsx.MissingSheetsError
	if errors.As(err, &missingErr) {
		return UserMessage{
			Code:    "SHEET001",
			Message: missingErr.Error(),
			Action:  "Add the missing sheets to the workbook and re-upload",
		}
	}

	if errors.Is(err, ErrBusy) {
		return UserMessage{
			Code:    "RUN001",
			Message: err.Error(),
			Action:  "Wait a moment and try again",
		}
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return UserMessage{
			Code:    "RUN002",
			Message: "The request was cancelled or timed out",
			Action:  "Try again",
		}
	}

	return UserMessage{
		Code:    "ERR000",
		Message: "An unexpected error occurred",
		Action:  "Try again or contact support with this code",
	}
}
