package grantee

import (
	"strings"

	"grantbook/internal/core"
)

type (
	// Keywords configures the international-status heuristic. The
	// heuristic is a best-effort fallback that both over- and
	// under-classifies; the metadata table wins whenever it says true.
	Keywords struct {
		// InternationalOrgs are organization names known to operate
		// internationally regardless of their mailing address.
		InternationalOrgs []string `toml:"international_orgs"`
		// AddressKeywords are non-US countries, provinces and cities
		// looked for in the grantee address.
		AddressKeywords []string `toml:"address_keywords"`
		// PurposeKeywords are regions and countries looked for in
		// grant purposes and special notes.
		PurposeKeywords []string `toml:"purpose_keywords"`
	}
)

// DefaultKeywords returns the built-in heuristic configuration.
func DefaultKeywords() Keywords {
	return Keywords{
		InternationalOrgs: []string{
			"Compassion International",
			"World Vision",
			"Doctors Without Borders",
			"International Justice Mission",
			"Samaritan's Purse",
			"Wycliffe Bible Translators",
			"UNICEF",
			"Hope International",
		},
		AddressKeywords: []string{
			"Canada", "Ontario", "British Columbia", "Mexico",
			"Kenya", "Nairobi", "Uganda", "Ethiopia", "Rwanda",
			"India", "Nepal", "Philippines", "Thailand", "Cambodia",
			"Haiti", "Guatemala", "Honduras", "Nicaragua",
			"United Kingdom", "Israel", "Jerusalem", "Ukraine",
		},
		PurposeKeywords: []string{
			"international", "overseas", "missionar",
			"Africa", "Asia", "Latin America", "Middle East",
			"Central America", "Eastern Europe",
			"Kenya", "Uganda", "India", "Haiti", "Guatemala",
			"Philippines", "Ukraine", "refugee",
		},
	}
}

// IsInternational applies the fallback heuristic: a known
// international organization name, a non-US location in the address,
// or a region keyword in any transaction's purpose or note. All
// matching is case-insensitive substring containment.
func (k Keywords) IsInternational(name, address string, txns []core.Record) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, org := range k.InternationalOrgs {
		if strings.Contains(name, strings.ToLower(org)) {
			return true
		}
	}

	address = strings.ToLower(strings.TrimSpace(address))
	if address != "" && containsAny(address, k.AddressKeywords) {
		return true
	}

	for _, t := range txns {
		purpose := strings.ToLower(t.String(core.FieldPurpose))
		note := strings.ToLower(t.String(core.FieldNote))
		if containsAny(purpose, k.PurposeKeywords) || containsAny(note, k.PurposeKeywords) {
			return true
		}
	}
	return false
}

func containsAny(haystack string, needles []string) bool {
	if haystack == "" {
		return false
	}
	for _, n := range needles {
		if strings.Contains(haystack, strings.ToLower(n)) {
			return true
		}
	}
	return false
}
