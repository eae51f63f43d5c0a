// Package model defines the budget record types and their derived fields.
package model

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DateLayout is the calendar date format used by every date field.
const DateLayout = "2006-01-02"

var (
	// ErrUnknownField is returned by Set when a record has no field with that name.
	ErrUnknownField = errors.New("unknown field")
	// ErrInvalidValue is returned by Set when a value cannot be stored in the field.
	ErrInvalidValue = errors.New("invalid value")
)

// Record is implemented by pointers to every row type held in a collection.
type Record interface {
	RecordID() int
	AssignID(id int)
	// Validate reports the first required field that fails the add gate.
	Validate() error
	// Set replaces one field by name and recomputes any stored total over it.
	Set(field string, value any) error
	// Derive recomputes stored totals from their inputs.
	Derive()
}

// ValidationError names the field that rejected an add.
type ValidationError struct {
	Record string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %s", e.Record, e.Field, e.Reason)
}

// requireText only rejects the empty string; blank text passes.
func requireText(record, field, v string) error {
	if v == "" {
		return &ValidationError{Record: record, Field: field, Reason: "is required"}
	}
	return nil
}

func requirePositive(record, field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return &ValidationError{Record: record, Field: field, Reason: "must be a positive number"}
	}
	return nil
}

// toFloat coerces the value kinds a form or draft file may hand over.
func toFloat(field string, value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("%s: %w: %q is not a number", field, ErrInvalidValue, v)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%s: %w: unsupported type %T", field, ErrInvalidValue, value)
	}
}

func toText(field string, value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		return "", fmt.Errorf("%s: %w: expected text, got %T", field, ErrInvalidValue, value)
	}
}

func unknownField(record, field string) error {
	return fmt.Errorf("%s: %w %q", record, ErrUnknownField, field)
}
