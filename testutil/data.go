package testutil

import "github.com/fahadshabir/poster/engine"

// SampleAddresses contains realistic free-text addresses for testing.
var SampleAddresses = []string{
	"781 Franklin Ave Crown Heights Brooklyn NYC NY 11216 USA",
	"fourty seven love lane pinner",
	"Quatre-vingt-douze Ave des Champs-Élysées",
	"Flat 3, 123 High Street, Alton, Hampshire, GU34 1AB",
	"30 W 26th St, New York, NY 10010",
}

// FranklinAveComponents is a realistic parse of the Franklin Ave sample in
// the lowercased, tokenized form the production engine emits.
var FranklinAveComponents = []engine.Component{
	{Label: "house_number", Value: "781"},
	{Label: "road", Value: "franklin ave"},
	{Label: "suburb", Value: "crown heights"},
	{Label: "city_district", Value: "nyc"},
	{Label: "city", Value: "brooklyn"},
	{Label: "state", Value: "ny"},
	{Label: "postal_code", Value: "11216"},
	{Label: "country", Value: "usa"},
}

// ScriptedParses maps raw address text to canned component lists. Use with
// FakeEngine.ParseFunc for table-driven parser tests.
var ScriptedParses = map[string][]engine.Component{
	"781 Franklin Ave Crown Heights Brooklyn NYC NY 11216 USA": FranklinAveComponents,
	"Flat 3, 123 High Street, Alton, Hampshire, GU34 1AB": {
		{Label: "unit", Value: "flat 3"},
		{Label: "house_number", Value: "123"},
		{Label: "road", Value: "high street"},
		{Label: "city", Value: "alton"},
		{Label: "state_district", Value: "hampshire"},
		{Label: "postal_code", Value: "gu34 1ab"},
	},
}

// ParseScript returns a ParseFunc that serves ScriptedParses plus any
// extra entries, yielding nil for unknown addresses.
func ParseScript(extra map[string][]engine.Component) func(string) []engine.Component {
	return func(text string) []engine.Component {
		if comps, ok := extra[text]; ok {
			return comps
		}
		return ScriptedParses[text]
	}
}
