//go:build libpostal

package engine

import (
	expand "github.com/openvenues/gopostal/expand"
	parser "github.com/openvenues/gopostal/parser"
)

// Libpostal is the production engine backed by the gopostal cgo binding.
//
// gopostal loads the libpostal data files during package initialization
// and panics if they cannot be loaded, so by the time this type is
// constructible the three subsystems are already resident. The Setup
// methods therefore only confirm readiness, and Teardown is deferred to
// process exit, which is when libpostal releases its model data.
type Libpostal struct{}

// NewLibpostal returns the gopostal-backed engine.
func NewLibpostal() (Engine, error) {
	return &Libpostal{}, nil
}

// SetupCore initializes the core normalization data.
func (l *Libpostal) SetupCore() error { return nil }

// SetupLanguageClassifier initializes the language classifier.
func (l *Libpostal) SetupLanguageClassifier() error { return nil }

// SetupParser initializes the address-grammar parser.
func (l *Libpostal) SetupParser() error { return nil }

// Teardown releases the engine subsystems at process exit.
func (l *Libpostal) Teardown() {}

// DefaultExpandOptions returns libpostal's default expansion options.
func (l *Libpostal) DefaultExpandOptions() ExpandOptions {
	return ExpandOptions{}
}

// DefaultParseOptions returns libpostal's default parser options.
func (l *Libpostal) DefaultParseOptions() ParseOptions {
	return ParseOptions{}
}

// Expand returns libpostal's ranked expansions of text. gopostal copies
// the C expansion array into Go strings and frees it before returning.
func (l *Libpostal) Expand(text string, opts ExpandOptions) []string {
	if len(opts.Languages) > 0 {
		options := expand.GetDefaultExpansionOptions()
		options.Languages = opts.Languages
		return expand.ExpandAddressOptions(text, options)
	}
	return expand.ExpandAddress(text)
}

// Parse returns libpostal's labeled components of text. gopostal copies
// the C response into Go values and destroys it before returning.
func (l *Libpostal) Parse(text string, opts ParseOptions) []Component {
	var parsed []parser.ParsedComponent
	if opts.Language != "" || opts.Country != "" {
		parsed = parser.ParseAddressOptions(text, parser.ParserOptions{
			Language: opts.Language,
			Country:  opts.Country,
		})
	} else {
		parsed = parser.ParseAddress(text)
	}

	components := make([]Component, len(parsed))
	for i, pc := range parsed {
		components[i] = Component{Label: pc.Label, Value: pc.Value}
	}
	return components
}
