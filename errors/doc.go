// Package errors provides standardized error handling for the poster
// harness. It includes error classification, standard error variables, and
// helper functions for consistent error wrapping across the batch
// operations and the engine lifecycle.
//
// The pipeline is deterministic over an already-loaded model, so there is
// no transient class and no retry machinery: an error is either fatal (the
// process must not continue to batch operations) or invalid (the caller
// supplied bad input and no partial work was performed).
package errors
