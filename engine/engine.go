package engine

// Component is one labeled piece of a parsed address as emitted by the
// engine. Labels are engine-defined; the harness recognizes ten of them
// and drops the rest.
type Component struct {
	Label string
	Value string
}

// ExpandOptions configures address expansion. Obtain a value from
// Engine.DefaultExpandOptions once per batch and pass it unchanged into
// every Expand call of that batch.
type ExpandOptions struct {
	// Languages restricts expansion to the given language codes.
	// Empty means the engine's language classifier decides.
	Languages []string
}

// ParseOptions configures address parsing. Obtain a value from
// Engine.DefaultParseOptions once per batch and pass it unchanged into
// every Parse call of that batch.
type ParseOptions struct {
	// Language is an optional ISO language-code hint.
	Language string
	// Country is an optional ISO country-code hint.
	Country string
}

// Engine is the opaque normalization and parsing engine. Implementations
// wrap a loaded model; they do not retry, cache, or validate beyond what
// the model itself does.
//
// Implementations own any per-call buffers the underlying model allocates
// and must release them before returning, so that results handed to the
// harness are plain Go values with no engine-owned memory behind them.
//
// Engines are not required to be safe for concurrent use. Callers
// serialize access; the harness adds no locking.
type Engine interface {
	// SetupCore initializes the core normalization data.
	SetupCore() error
	// SetupLanguageClassifier initializes the language classifier.
	SetupLanguageClassifier() error
	// SetupParser initializes the address-grammar parser.
	SetupParser() error
	// Teardown unconditionally releases all three subsystems. Calling it
	// without a prior successful setup is engine-defined behavior.
	Teardown()

	// DefaultExpandOptions returns the engine's default expansion options.
	DefaultExpandOptions() ExpandOptions
	// DefaultParseOptions returns the engine's default parser options.
	DefaultParseOptions() ParseOptions

	// Expand returns ranked candidate expansions of text, best first.
	// An empty result means the engine produced no expansion; the harness
	// does not distinguish that from an engine-level failure.
	Expand(text string, opts ExpandOptions) []string
	// Parse returns the labeled components of text in engine-defined
	// order, possibly including labels the harness does not recognize.
	Parse(text string, opts ParseOptions) []Component
}
