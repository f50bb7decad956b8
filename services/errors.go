package services

import "errors"

// ErrMissingFields rejects a submission with an absent or empty required
// string field. The message is part of the API contract.
var ErrMissingFields = errors.New("Missing required fields")

// StoreError wraps a storage failure so handlers can map it to a 500 while
// passing the engine's message through.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string { return e.Err.Error() }

func (e *StoreError) Unwrap() error { return e.Err }

func storeErr(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}
