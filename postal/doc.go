// Package postal implements the vectorized batch harness over the address
// engine: normalization, structured parsing into ten fixed columns, and
// field get/set across batches of optional strings.
//
// All batch operations preserve length and order 1:1, pass null inputs
// through without touching the engine, and evaluate a cooperative
// cancellation checkpoint at a fixed element interval. Engine options are
// constructed once per batch and shared across its elements.
package postal
