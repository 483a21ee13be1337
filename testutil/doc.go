// Package testutil provides test utilities for the poster harness: a
// scriptable fake engine and sample address data. Nothing here touches the
// real libpostal models, so tests run without cgo or data files.
package testutil
