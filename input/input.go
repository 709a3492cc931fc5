// Package input holds the amount-field rules applied before a conversion is attempted.
package input

import (
	"currency-converter/convert"
	"errors"
	"regexp"
)

// amountPattern digits, at most one decimal point, more digits. Matches the empty string.
var amountPattern = regexp.MustCompile(`^\d*\.?\d*$`)

// Accept reports whether s may be entered into the amount field
func Accept(s string) bool {
	return amountPattern.MatchString(s)
}

// Filter returns proposed if it is acceptable, otherwise it keeps current
func Filter(current, proposed string) string {
	if Accept(proposed) {
		return proposed
	}
	return current
}

// Status what the caller should render for a conversion attempt
type Status int

const (
	// Ready a result is available
	Ready Status = iota
	// Empty nothing entered yet
	Empty
	// Invalid something was entered but it is not an amount
	Invalid
	// Failed the conversion failed for a reason unrelated to the amount
	Failed
)

func (s Status) String() string {
	switch s {
	case Ready:
		return "ready"
	case Empty:
		return "empty"
	case Invalid:
		return "invalid"
	default:
		return "failed"
	}
}

// Classify maps the raw input and the conversion error to a Status.
// Empty is decided from the raw string, not from the error.
func Classify(raw string, err error) Status {
	switch {
	case err == nil:
		return Ready
	case raw == "":
		return Empty
	case errors.Is(err, convert.ErrInvalidAmount):
		return Invalid
	default:
		return Failed
	}
}

// Message the user-facing text for a non-Ready status
func (s Status) Message() string {
	switch s {
	case Empty:
		return "enter an amount"
	case Invalid:
		return "enter a valid amount"
	case Failed:
		return "conversion failed"
	default:
		return ""
	}
}
