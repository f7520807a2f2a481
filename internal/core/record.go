package core

import (
	"bytes"
	"encoding/json"
)

// Well-known transaction field names. None of these is guaranteed to be
// present on any given record; the field set varies per source row.
const (
	FieldTransactionID = "Transaction ID"
	FieldCharity       = "Charity"
	FieldEIN           = "EIN"
	FieldAddress       = "Charity Address"
	FieldAmount        = "Amount"
	FieldStatus        = "Grant Status"
	FieldPurpose       = "Grant Purpose"
	FieldNote          = "Special Note"

	FieldSentDate      = "Sent Date"
	FieldRequestedDate = "Requested Payment Date"
	FieldSubmittedDate = "Recommendation Submitted Date"
	FieldClearedDate   = "Cleared Date"

	// Computed fields injected by the query layer, never present on
	// records as loaded.
	FieldCategory      = "Category"
	FieldInternational = "International"
)

// StatusCleared is the only grant status included in most totals.
const StatusCleared = "Payment Cleared"

// DateFields are the fields consulted whenever a transaction's year is
// derived (filtering, sorting, grouping, grantee recency).
var DateFields = []string{
	FieldSentDate,
	FieldRequestedDate,
	FieldSubmittedDate,
	FieldClearedDate,
}

type (
	// Record is a single grant transaction row: an ordered mapping from
	// field name to a string, bool, or nil value. Records are immutable
	// by convention once loaded; transforms clone instead of mutating.
	Record struct {
		keys []string
		vals map[string]any
	}
)

func NewRecord() Record {
	return Record{vals: make(map[string]any)}
}

// Set stores a field value, preserving first-set field order.
func (r *Record) Set(key string, val any) {
	if r.vals == nil {
		r.vals = make(map[string]any)
	}
	if _, ok := r.vals[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.vals[key] = val
}

// Get returns the raw field value and whether the field is present.
func (r Record) Get(key string) (any, bool) {
	v, ok := r.vals[key]
	return v, ok
}

// Has reports whether the field is present on the record.
func (r Record) Has(key string) bool {
	_, ok := r.vals[key]
	return ok
}

// String coerces the field value to a string. Missing fields, nil
// values and non-string values all coerce to "".
func (r Record) String(key string) string {
	return AsString(r.vals[key])
}

// Fields returns the field names in insertion order. The returned
// slice is a copy.
func (r Record) Fields() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

func (r Record) Len() int {
	return len(r.keys)
}

// Clone returns a new record referencing the same field values. Use it
// before annotating a record so the loaded snapshot stays untouched.
func (r Record) Clone() Record {
	out := Record{
		keys: make([]string, len(r.keys)),
		vals: make(map[string]any, len(r.vals)),
	}
	copy(out.keys, r.keys)
	for k, v := range r.vals {
		out.vals[k] = v
	}
	return out
}

// Project returns a new record holding only the requested fields, in
// the requested order. Fields absent from the record are skipped.
func (r Record) Project(fields []string) Record {
	out := NewRecord()
	for _, f := range fields {
		if v, ok := r.vals[f]; ok {
			out.Set(f, v)
		}
	}
	return out
}

// MarshalJSON serializes the record as a JSON object with fields in
// insertion order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(r.vals[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON accepts a flat JSON object. Field order follows Go's
// map iteration and is therefore unspecified; sources that care about
// order build records with Set instead.
func (r *Record) UnmarshalJSON(data []byte) error {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*r = NewRecord()
	for k, v := range m {
		r.Set(k, v)
	}
	return nil
}

// IsCleared reports whether a transaction counts toward cleared-only
// totals. A missing or empty status counts as cleared; only an
// explicit non-cleared status is excluded.
func IsCleared(r Record) bool {
	s := TrimString(r, FieldStatus)
	return s == "" || s == StatusCleared
}
