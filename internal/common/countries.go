package common

import "strings"

// countryAliases reconciles country names across the three source naming
// schemes (TIC holdings reports, gold reserve reports, bloc membership
// lists). Holdings and gold join on canonical names; a spelling missing
// here silently produces a disjoint series, so additions belong in this
// table rather than inline in aggregation code.
var countryAliases = map[string]string{
	"Korea, South":          "Korea",
	"South Korea":           "Korea",
	"Republic of Korea":     "Korea",
	"China, Mainland":       "China",
	"China, P.R., Mainland": "China",
	"Mainland China":        "China",
	"Russian Federation":    "Russia",
	"United Kingdom of Great Britain and Northern Ireland": "United Kingdom",
	"Great Britain":  "United Kingdom",
	"Taiwan, China":  "Taiwan",
	"Hong Kong SAR":  "Hong Kong",
	"Turkiye":        "Turkey",
	"Czech Republic": "Czechia",
	"Netherlands, The": "Netherlands",
	"United States of America": "United States",
}

// CanonicalCountry strips wrapping quotes and whitespace and resolves
// known aliases to the canonical spelling.
func CanonicalCountry(name string) string {
	name = strings.TrimSpace(name)
	name = strings.Trim(name, `"`)
	name = strings.TrimSpace(name)
	if canonical, ok := countryAliases[name]; ok {
		return canonical
	}
	return name
}

// Blocs defines the fixed country sets used for gap-carried group totals.
// Membership lists use canonical names (post-alias).
var Blocs = map[string][]string{
	"Euro Area": {
		"Austria", "Belgium", "Croatia", "Cyprus", "Estonia", "Finland",
		"France", "Germany", "Greece", "Ireland", "Italy", "Latvia",
		"Lithuania", "Luxembourg", "Malta", "Netherlands", "Portugal",
		"Slovakia", "Slovenia", "Spain",
	},
	"BRICS": {
		"Brazil", "Russia", "India", "China", "South Africa",
	},
}

// BlocMembers returns the canonical membership list for a named bloc,
// or nil when the bloc is unknown.
func BlocMembers(name string) []string {
	members, ok := Blocs[name]
	if !ok {
		return nil
	}
	out := make([]string, len(members))
	for i, m := range members {
		out[i] = CanonicalCountry(m)
	}
	return out
}
