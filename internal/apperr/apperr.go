// internal/apperr/apperr.go

// Package apperr defines the closed set of failure kinds used across
// homewatch. Every sentinel can be checked with errors.Is(); concrete
// sites wrap a sentinel with detail via Wrap/Wrapf or fmt.Errorf("%w").
//
// This package MUST NOT import any other internal package.
package apperr

import "errors"

var (
	// ErrConfig is fatal: required configuration is missing or invalid.
	// It is the only kind that aborts the process; everything below is
	// retryable and is absorbed by the watch loop.
	ErrConfig = errors.New("invalid configuration")

	// ErrNetwork: the HTTP exchange with the status API could not be
	// completed (DNS, connect, timeout).
	ErrNetwork = errors.New("status api request failed")

	// ErrAPIStatus: the status API answered with a non-200 code.
	ErrAPIStatus = errors.New("unexpected status api response code")

	// ErrDecode: the response body is not valid JSON.
	ErrDecode = errors.New("status api response is not valid json")

	// ErrAPIBusiness: a 200 response that carries a "code" or "error"
	// key. The service reports failure out-of-band from HTTP status.
	ErrAPIBusiness = errors.New("status api returned an error payload")

	// ErrSchema: the decoded payload does not have the documented shape.
	ErrSchema = errors.New("unexpected status api response shape")

	// ErrMissingField: a homework entry lacks a required field.
	ErrMissingField = errors.New("homework entry is missing a required field")

	// ErrUnknownStatus: a homework status outside the verdict table.
	ErrUnknownStatus = errors.New("unknown homework status")
)
