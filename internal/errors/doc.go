// Package apperrors defines the exit codes of fibseq and the structured error
// types used by its configuration and output layers.
//
// Error Wrapping Guidelines:
// Errors are wrapped with fmt.Errorf and %w so that callers can inspect the
// chain with errors.Is() and errors.As().
package apperrors
