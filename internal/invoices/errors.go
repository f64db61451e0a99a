package invoices

import "errors"

// Status-machine errors. Void is terminal: a void invoice can neither be
// marked paid nor voided again.
var (
	ErrNotFound    = errors.New("invoice not found")
	ErrVoid        = errors.New("invoice is void")
	ErrAlreadyPaid = errors.New("invoice is already paid")
	ErrNotPaid     = errors.New("invoice is not paid")
	ErrPaid        = errors.New("invoice is paid; unmark it first")
)
