// Package core implements the grant-transaction query engine: record
// normalization, filter predicates, fuzzy search, sorting and grouping
// over schema-flexible transaction records.
package core

import (
	"regexp"
	"strconv"
	"strings"
)

// yearSuffix matches a trailing "/NN" two-digit year segment. Four-digit
// years ("1/1/2024") deliberately do not match; such dates have no
// derivable year.
var yearSuffix = regexp.MustCompile(`/(\d{2})$`)

// AsString coerces an arbitrary field value to a string. Missing
// fields, nil and non-string values coerce to "".
func AsString(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return s
}

// TrimString returns the trimmed string value of a record field.
func TrimString(r Record, key string) string {
	return strings.TrimSpace(r.String(key))
}

// ExtractYear derives a four-digit year from a M/D/YY date string.
// Two-digit suffixes 00-30 map to 2000-2030 and 31-99 to 1931-1999.
// The second return is false when the string has no trailing two-digit
// year segment.
func ExtractYear(date string) (int, bool) {
	m := yearSuffix.FindStringSubmatch(strings.TrimSpace(date))
	if m == nil {
		return 0, false
	}
	yy, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	if yy <= 30 {
		return 2000 + yy, true
	}
	return 1900 + yy, true
}

// RecordYear is the transaction's year: the maximum extracted year
// across the date fields, treating the most recent date as the
// transaction's year. False when no date field parses.
func RecordYear(r Record) (int, bool) {
	best := 0
	found := false
	for _, f := range DateFields {
		if y, ok := ExtractYear(r.String(f)); ok && y > best {
			best = y
			found = true
		}
	}
	return best, found
}

// ParseAmount parses a formatted amount string ("5,000.00 ") into a
// float. Malformed amounts are worth zero, never an error; filters and
// totals silently treat them as such.
func ParseAmount(s string) float64 {
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// Amount is the parsed value of the record's Amount field.
func Amount(r Record) float64 {
	return ParseAmount(r.String(FieldAmount))
}
