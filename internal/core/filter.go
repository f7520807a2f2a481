package core

import (
	"fmt"
	"strings"
)

// Filter predicates. An absent constraint (zero value) makes the
// predicate vacuously true, so callers can apply every filter
// unconditionally without branching.

// MatchesCharity is case-insensitive, trim-insensitive exact equality
// against the Charity field.
func MatchesCharity(r Record, name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return true
	}
	return strings.EqualFold(TrimString(r, FieldCharity), name)
}

// MatchesYear reports whether any date field carries the year's
// two-digit suffix. This is suffix matching, not full-year comparison:
// it is only as precise as the two-digit suffix is unique within the
// query's intended window.
func MatchesYear(r Record, year int) bool {
	if year == 0 {
		return true
	}
	suffix := fmt.Sprintf("%02d", ((year % 100) + 100) % 100)
	for _, f := range DateFields {
		if m := yearSuffix.FindStringSubmatch(TrimString(r, f)); m != nil && m[1] == suffix {
			return true
		}
	}
	return false
}

// MatchesYearRange checks the transaction's year (maximum extracted
// year across the date fields) against [min, max], with open bounds
// when either is zero. A transaction with no parseable date never
// matches a range.
func MatchesYearRange(r Record, minYear, maxYear int) bool {
	if minYear == 0 && maxYear == 0 {
		return true
	}
	y, ok := RecordYear(r)
	if !ok {
		return false
	}
	if minYear != 0 && y < minYear {
		return false
	}
	if maxYear != 0 && y > maxYear {
		return false
	}
	return true
}

// MatchesMinAmount is an inclusive lower bound on the parsed amount.
func MatchesMinAmount(r Record, min float64) bool {
	if min == 0 {
		return true
	}
	return Amount(r) >= min
}

// MatchesMaxAmount is an inclusive upper bound on the parsed amount.
func MatchesMaxAmount(r Record, max float64) bool {
	if max == 0 {
		return true
	}
	return Amount(r) <= max
}

// MatchesStatus is case-insensitive, trim-insensitive exact equality
// against the Grant Status field.
func MatchesStatus(r Record, status string) bool {
	status = strings.TrimSpace(status)
	if status == "" {
		return true
	}
	return strings.EqualFold(TrimString(r, FieldStatus), status)
}

// Filter returns the records satisfying pred, preserving input order.
func Filter(records []Record, pred func(Record) bool) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}
