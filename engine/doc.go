// Package engine defines the contract for the opaque address-analysis
// engine and owns its process-wide lifecycle.
//
// The engine is a pre-trained, black-box component with exactly two
// operations: expansion of an address into ranked candidate normalizations
// and parsing of an address into labeled components. The harness never
// inspects how either is computed.
//
// Lifecycle is managed through Handle: Open initializes the engine's three
// subsystems (core data, language classifier, address parser) and fails
// fatally if any of them fails, Close tears all three down
// unconditionally. The handle is injected into every consumer rather than
// looked up ambiently, so tests construct isolated fakes.
//
// The production implementation is backed by github.com/openvenues/gopostal
// and is only compiled with the "libpostal" build tag since it requires
// cgo and an installed libpostal.
package engine
