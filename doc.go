// Package poster provides a vectorized batch harness over a pre-trained
// postal-address engine (libpostal family): normalization of free-text
// addresses into a canonical expanded form and structured parsing into ten
// labeled components.
//
// # Architecture
//
// The statistical models are an opaque, process-wide singleton reached only
// through the engine.Engine interface. Everything else is the harness:
//
//	┌─────────────────────────────────────┐
//	│          engine.Handle              │  Lifecycle: open the three
//	│       (open, close, inject)         │  subsystems, tear them down
//	└─────────────────────────────────────┘
//	           ↓ injected into
//	┌─────────────────────────────────────┐
//	│        postal.Processor             │  Normalize, Parse,
//	│  (batch loops, null handling,       │  GetField, SetField
//	│   cooperative cancellation)         │
//	└─────────────────────────────────────┘
//	           ↓ consumed by
//	┌─────────────────────────────────────┐
//	│     service (NATS req/reply)        │  Host-environment surfaces
//	│     cmd/poster (CLI)                │
//	└─────────────────────────────────────┘
//
// # Null handling
//
// Inputs and outputs are vectors of postal.String, an optional string whose
// zero value is null. Null inputs pass through every batch operation as
// null with no engine call. Output length always equals input length and
// order is preserved 1:1.
//
// # Concurrency
//
// Batches run strictly sequentially with no parallelism across elements.
// The harness adds no locking; callers serialize access to the engine. A
// cooperative cancellation checkpoint is evaluated every 10,000 elements
// (configurable) so a long batch can be interrupted via context.Context.
//
// # Production engine
//
// Building with the "libpostal" tag wires github.com/openvenues/gopostal
// (cgo) as the engine. Without the tag the module compiles engine-free and
// tests run against the fake engine in testutil.
package poster
