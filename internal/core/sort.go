package core

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sort orders for SortRecords.
const (
	Ascending  = "asc"
	Descending = "desc"
)

// collator provides locale-aware string comparison for the default
// sort branch, mirroring a locale compare rather than raw byte order.
var collator = collate.New(language.English)

// CompareStrings is the locale-aware comparison used for string
// fields.
func CompareStrings(a, b string) int {
	return collator.CompareString(a, b)
}

// SortRecords returns a new slice sorted by the named field; the input
// is never mutated. An empty field returns the input unchanged (same
// reference). Dispatch by field name:
//
//   - "Amount": numeric compare of the parsed amount.
//   - fields containing "Date": compare by extracted year, then by the
//     raw date string. The raw-string tie-break is lexicographic, not
//     chronological; query results depend on it staying that way.
//   - anything else: locale-aware compare of the string-coerced values.
func SortRecords(records []Record, field, order string) []Record {
	if field == "" {
		return records
	}

	out := make([]Record, len(records))
	copy(out, records)

	var cmp func(a, b Record) int
	switch {
	case field == FieldAmount:
		cmp = func(a, b Record) int {
			av, bv := Amount(a), Amount(b)
			switch {
			case av < bv:
				return -1
			case av > bv:
				return 1
			}
			return 0
		}
	case strings.Contains(field, "Date"):
		cmp = func(a, b Record) int {
			as, bs := a.String(field), b.String(field)
			ay, _ := ExtractYear(as)
			by, _ := ExtractYear(bs)
			if ay != by {
				return ay - by
			}
			return strings.Compare(as, bs)
		}
	default:
		cmp = func(a, b Record) int {
			return collator.CompareString(sortValue(a, field), sortValue(b, field))
		}
	}

	desc := order == Descending
	sort.SliceStable(out, func(i, j int) bool {
		c := cmp(out[i], out[j])
		if desc {
			return c > 0
		}
		return c < 0
	})
	return out
}

// sortValue stringifies a field for the collator compare: booleans
// become "true"/"false" so computed flags like International sort
// meaningfully; missing fields and nulls sort as empty strings.
func sortValue(r Record, field string) string {
	v, ok := r.Get(field)
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}
