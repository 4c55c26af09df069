// Package errors provides custom error types for domain-specific errors.
package errors

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Standard sentinel errors
var (
	ErrMissingColumn    = errors.New("required column missing")
	ErrBadDate          = errors.New("unparsable date")
	ErrEmptySeries      = errors.New("no valid rows after cleaning")
	ErrInvalidRange     = errors.New("invalid price grid range")
	ErrInsufficientData = errors.New("insufficient data for calculation")
)

// SchemaError reports required columns absent from an input after header
// normalization. Not recoverable; the import fails.
type SchemaError struct {
	Source  string
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema error [%s]: missing required columns: %s", e.Source, strings.Join(e.Missing, ", "))
}

func (e *SchemaError) Unwrap() error {
	return ErrMissingColumn
}

// NewSchemaError creates a new SchemaError.
func NewSchemaError(source string, missing []string) *SchemaError {
	return &SchemaError{Source: source, Missing: missing}
}

// DateParseError reports a date cell that matched none of the accepted
// formats. Row-scoped: the caller drops the row and continues.
type DateParseError struct {
	Text    string
	Formats []string
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("date parse error: %q matches none of %s", e.Text, strings.Join(e.Formats, ", "))
}

func (e *DateParseError) Unwrap() error {
	return ErrBadDate
}

// NewDateParseError creates a new DateParseError.
func NewDateParseError(text string, formats []string) *DateParseError {
	return &DateParseError{Text: text, Formats: formats}
}

// EmptySeriesError reports that cleaning left zero valid rows. Fatal for
// the import; the message names the source, not a stack trace.
type EmptySeriesError struct {
	Source   string
	RawRows  int
	LastDrop string
}

func (e *EmptySeriesError) Error() string {
	if e.LastDrop != "" {
		return fmt.Sprintf("empty series [%s]: all %d rows dropped (last reason: %s)", e.Source, e.RawRows, e.LastDrop)
	}
	return fmt.Sprintf("empty series [%s]: no rows to clean", e.Source)
}

func (e *EmptySeriesError) Unwrap() error {
	return ErrEmptySeries
}

// NewEmptySeriesError creates a new EmptySeriesError.
func NewEmptySeriesError(source string, rawRows int, lastDrop string) *EmptySeriesError {
	return &EmptySeriesError{Source: source, RawRows: rawRows, LastDrop: lastDrop}
}

// InvalidRangeError reports a degenerate price grid request. This is a
// contract violation by the caller, never silently recovered.
type InvalidRangeError struct {
	Spot     float64
	LowFrac  float64
	HighFrac float64
	Points   int
	Reason   string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid range: %s (spot=%g low=%g high=%g points=%d)", e.Reason, e.Spot, e.LowFrac, e.HighFrac, e.Points)
}

func (e *InvalidRangeError) Unwrap() error {
	return ErrInvalidRange
}

// InsufficientDataError reports that too few aligned return observations
// remain for a statistical estimate. Recoverable by the caller.
type InsufficientDataError struct {
	Need int
	Have int
	From time.Time
	To   time.Time
}

func (e *InsufficientDataError) Error() string {
	if e.From.IsZero() {
		return fmt.Sprintf("insufficient data: need %d aligned observations, have %d", e.Need, e.Have)
	}
	return fmt.Sprintf("insufficient data: need %d aligned observations, have %d (%s to %s)",
		e.Need, e.Have, e.From.Format("2006-01-02"), e.To.Format("2006-01-02"))
}

func (e *InsufficientDataError) Unwrap() error {
	return ErrInsufficientData
}

// NewInsufficientDataError creates a new InsufficientDataError.
func NewInsufficientDataError(need, have int) *InsufficientDataError {
	return &InsufficientDataError{Need: need, Have: have}
}
