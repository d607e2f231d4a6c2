package models

import (
	"errors"
	"fmt"
)

// Domain failures the controllers translate into {success:false, message}
// responses. The message strings are what the table views show the user.
var (
	ErrNotFound          = errors.New("Item not found.")
	ErrInsufficientStock = errors.New("Not enough stock available.")
	ErrNoChange          = errors.New("No changes detected.")
	ErrNoMatch           = errors.New("No matching records found.")
	ErrNoLogs            = errors.New("No logs to delete.")
	ErrNegativeQuantity  = errors.New("Quantity cannot be negative.")
)

// DuplicateCodeError reports an add against a code that is still active.
type DuplicateCodeError struct {
	Code string
}

func (e *DuplicateCodeError) Error() string {
	return fmt.Sprintf("Code '%s' already exists.", e.Code)
}

// ValidationError marks a missing or malformed required field.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// UnknownEntityError rejects a table name outside the supported whitelist.
type UnknownEntityError struct {
	Name string
}

func (e *UnknownEntityError) Error() string {
	return fmt.Sprintf("Invalid table: %s", e.Name)
}

// ImportError wraps a file that could not be read as a spreadsheet.
type ImportError struct {
	Path string
	Err  error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("Failed to import %s: %v", e.Path, e.Err)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}
