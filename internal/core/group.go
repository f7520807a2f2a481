package core

import "strconv"

// UnknownGroup buckets records whose group key cannot be derived.
const UnknownGroup = "Unknown"

// GroupByYear selects grouping by the transaction's derived year
// instead of a raw field.
const GroupByYear = "year"

type (
	// Groups is an ordered partition of a record list. Keys holds the
	// group keys in first-seen order; Members preserves input order
	// within each group.
	Groups struct {
		Keys    []string
		Members map[string][]Record
	}
)

// GroupRecords partitions records by the given key. "year" groups by
// the derived transaction year, anything else by the stringified raw
// field value; records without a derivable key land in "Unknown". An
// empty key returns an empty partition — callers treat that as "no
// grouping requested" and skip this component entirely.
func GroupRecords(records []Record, key string) Groups {
	g := Groups{Members: make(map[string][]Record)}
	if key == "" {
		return g
	}
	for _, r := range records {
		g.add(groupKey(r, key), r)
	}
	return g
}

func (g *Groups) add(key string, r Record) {
	if _, ok := g.Members[key]; !ok {
		g.Keys = append(g.Keys, key)
	}
	g.Members[key] = append(g.Members[key], r)
}

func groupKey(r Record, key string) string {
	if key == GroupByYear {
		y, ok := RecordYear(r)
		if !ok {
			return UnknownGroup
		}
		return strconv.Itoa(y)
	}
	v, ok := r.Get(key)
	if !ok || v == nil {
		return UnknownGroup
	}
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	default:
		return UnknownGroup
	}
}
