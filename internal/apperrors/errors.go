package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrNoCurrencyDetected indicates that no currency pattern matched the scanned text.
var ErrNoCurrencyDetected = errors.New("no currency detected")

// ErrUnsupportedCurrency indicates that a detected currency has no entry in the rate table.
var ErrUnsupportedCurrency = errors.New("unsupported currency")

// ErrUnauthorized indicates that the caller did not present valid credentials.
var ErrUnauthorized = errors.New("unauthorized")
