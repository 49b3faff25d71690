// Package domain defines error types for the product manager.
package domain

import (
	"errors"
	"fmt"
)

// InvalidNameError is returned when a product name is empty after trimming
type InvalidNameError struct {
	Name string
}

// Error implements the error interface for InvalidNameError
func (e *InvalidNameError) Error() string {
	return "invalid name: cannot be empty"
}

// Is allows proper error type checking with errors.Is()
func (e *InvalidNameError) Is(target error) bool {
	_, ok := target.(*InvalidNameError)
	return ok
}

// DuplicateNameError is returned when another product already carries the
// same name under case-insensitive comparison
type DuplicateNameError struct {
	Name string
}

// Error implements the error interface for DuplicateNameError
func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("duplicate name: %q already exists", e.Name)
}

// Is allows proper error type checking with errors.Is()
func (e *DuplicateNameError) Is(target error) bool {
	_, ok := target.(*DuplicateNameError)
	return ok
}

// InvalidPriceError is returned when a price input does not parse as a number
type InvalidPriceError struct {
	Input string
}

// Error implements the error interface for InvalidPriceError
func (e *InvalidPriceError) Error() string {
	return fmt.Sprintf("invalid price: %q is not a number", e.Input)
}

// Is allows proper error type checking with errors.Is()
func (e *InvalidPriceError) Is(target error) bool {
	_, ok := target.(*InvalidPriceError)
	return ok
}

// NonPositivePriceError is returned when a parsed price is zero or negative
type NonPositivePriceError struct {
	Price float64
}

// Error implements the error interface for NonPositivePriceError
func (e *NonPositivePriceError) Error() string {
	return fmt.Sprintf("non-positive price: %v must be greater than 0", e.Price)
}

// Is allows proper error type checking with errors.Is()
func (e *NonPositivePriceError) Is(target error) bool {
	_, ok := target.(*NonPositivePriceError)
	return ok
}

// MissingCategoryError is returned when no category was selected
type MissingCategoryError struct{}

// Error implements the error interface for MissingCategoryError
func (e *MissingCategoryError) Error() string {
	return "missing category: a category must be selected"
}

// Is allows proper error type checking with errors.Is()
func (e *MissingCategoryError) Is(target error) bool {
	_, ok := target.(*MissingCategoryError)
	return ok
}

// NotFoundError is returned when no product with the given id exists
type NotFoundError struct {
	ProductID int64
}

// Error implements the error interface for NotFoundError
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("product not found: id=%d", e.ProductID)
}

// Is allows proper error type checking with errors.Is()
func (e *NotFoundError) Is(target error) bool {
	_, ok := target.(*NotFoundError)
	return ok
}

// SessionBusyError is returned when an add or edit is attempted while an
// edit session is already open
type SessionBusyError struct{}

// Error implements the error interface for SessionBusyError
func (e *SessionBusyError) Error() string {
	return "session busy: another edit is in progress"
}

// Is allows proper error type checking with errors.Is()
func (e *SessionBusyError) Is(target error) bool {
	_, ok := target.(*SessionBusyError)
	return ok
}

// InactiveSessionError is returned when a commit targets an edit session
// that is not the currently open one
type InactiveSessionError struct{}

// Error implements the error interface for InactiveSessionError
func (e *InactiveSessionError) Error() string {
	return "inactive session: no edit in progress"
}

// Is allows proper error type checking with errors.Is()
func (e *InactiveSessionError) Is(target error) bool {
	_, ok := target.(*InactiveSessionError)
	return ok
}

// NeedsConfirmationError is returned by an unconfirmed delete; nothing has
// been removed and the caller must retry with confirmation
type NeedsConfirmationError struct {
	ProductID int64
}

// Error implements the error interface for NeedsConfirmationError
func (e *NeedsConfirmationError) Error() string {
	return fmt.Sprintf("needs confirmation: delete of product id=%d not confirmed", e.ProductID)
}

// Is allows proper error type checking with errors.Is()
func (e *NeedsConfirmationError) Is(target error) bool {
	_, ok := target.(*NeedsConfirmationError)
	return ok
}

// StorageError wraps an I/O or driver failure from the underlying store
type StorageError struct {
	Op  string
	Err error
}

// Error implements the error interface for StorageError
func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure: op=%s: %v", e.Op, e.Err)
}

// Is allows proper error type checking with errors.Is()
func (e *StorageError) Is(target error) bool {
	_, ok := target.(*StorageError)
	return ok
}

// Unwrap exposes the underlying cause for errors.Is/errors.As chains
func (e *StorageError) Unwrap() error {
	return e.Err
}

// Helper functions for creating errors with context

// NewInvalidNameError creates a new InvalidNameError
func NewInvalidNameError(name string) error {
	return &InvalidNameError{Name: name}
}

// NewDuplicateNameError creates a new DuplicateNameError
func NewDuplicateNameError(name string) error {
	return &DuplicateNameError{Name: name}
}

// NewInvalidPriceError creates a new InvalidPriceError
func NewInvalidPriceError(input string) error {
	return &InvalidPriceError{Input: input}
}

// NewNonPositivePriceError creates a new NonPositivePriceError
func NewNonPositivePriceError(price float64) error {
	return &NonPositivePriceError{Price: price}
}

// NewMissingCategoryError creates a new MissingCategoryError
func NewMissingCategoryError() error {
	return &MissingCategoryError{}
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(productID int64) error {
	return &NotFoundError{ProductID: productID}
}

// NewSessionBusyError creates a new SessionBusyError
func NewSessionBusyError() error {
	return &SessionBusyError{}
}

// NewInactiveSessionError creates a new InactiveSessionError
func NewInactiveSessionError() error {
	return &InactiveSessionError{}
}

// NewNeedsConfirmationError creates a new NeedsConfirmationError
func NewNeedsConfirmationError(productID int64) error {
	return &NeedsConfirmationError{ProductID: productID}
}

// NewStorageError creates a new StorageError wrapping cause
func NewStorageError(op string, cause error) error {
	return &StorageError{Op: op, Err: cause}
}

// Type assertion helpers for use with errors.As()

// IsInvalidNameError checks if an error is an InvalidNameError
func IsInvalidNameError(err error) bool {
	var e *InvalidNameError
	return errors.As(err, &e)
}

// IsDuplicateNameError checks if an error is a DuplicateNameError
func IsDuplicateNameError(err error) bool {
	var e *DuplicateNameError
	return errors.As(err, &e)
}

// IsInvalidPriceError checks if an error is an InvalidPriceError
func IsInvalidPriceError(err error) bool {
	var e *InvalidPriceError
	return errors.As(err, &e)
}

// IsNonPositivePriceError checks if an error is a NonPositivePriceError
func IsNonPositivePriceError(err error) bool {
	var e *NonPositivePriceError
	return errors.As(err, &e)
}

// IsMissingCategoryError checks if an error is a MissingCategoryError
func IsMissingCategoryError(err error) bool {
	var e *MissingCategoryError
	return errors.As(err, &e)
}

// IsNotFoundError checks if an error is a NotFoundError
func IsNotFoundError(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

// IsSessionBusyError checks if an error is a SessionBusyError
func IsSessionBusyError(err error) bool {
	var e *SessionBusyError
	return errors.As(err, &e)
}

// IsInactiveSessionError checks if an error is an InactiveSessionError
func IsInactiveSessionError(err error) bool {
	var e *InactiveSessionError
	return errors.As(err, &e)
}

// IsNeedsConfirmationError checks if an error is a NeedsConfirmationError
func IsNeedsConfirmationError(err error) bool {
	var e *NeedsConfirmationError
	return errors.As(err, &e)
}

// IsStorageError checks if an error is a StorageError
func IsStorageError(err error) bool {
	var e *StorageError
	return errors.As(err, &e)
}
