package grantee

import (
	"sort"
	"strings"

	"grantbook/internal/core"
)

type (
	// Grantee is a distinct organization receiving grants, identified
	// by trimmed charity name + trimmed EIN. Transactions is a shared
	// view of the records it was built from, not a copy.
	Grantee struct {
		Name          string        `json:"name"`
		EIN           string        `json:"ein"`
		Address       string        `json:"address"`
		International bool          `json:"international"`
		IsBeloved     bool          `json:"is_beloved"`
		Transactions  []core.Record `json:"-"`
	}

	// Registry is the deduplicated grantee set derived from a
	// transaction list. It is a pure function of the records it was
	// built from and is rebuilt fresh per query.
	Registry struct {
		order []string
		byKey map[string]*Grantee
		meta  *MetadataTable
	}
)

// identityKey is the dedup key. Unlike MetadataKey it keeps an empty
// EIN empty, so two no-EIN records with the same name share a grantee.
func identityKey(name, ein string) string {
	return strings.TrimSpace(name) + "|" + strings.TrimSpace(ein)
}

// BuildRegistry collects transactions into grantee buckets and
// classifies each bucket. Records with an empty charity name are
// skipped. Address comes from the first transaction seen for a key;
// later addresses are ignored even when they differ.
func BuildRegistry(records []core.Record, meta *MetadataTable, kw Keywords) *Registry {
	reg := &Registry{byKey: make(map[string]*Grantee), meta: meta}

	for _, r := range records {
		name := core.TrimString(r, core.FieldCharity)
		if name == "" {
			continue
		}
		ein := core.TrimString(r, core.FieldEIN)
		key := identityKey(name, ein)
		g, ok := reg.byKey[key]
		if !ok {
			g = &Grantee{
				Name:    name,
				EIN:     ein,
				Address: core.TrimString(r, core.FieldAddress),
			}
			reg.byKey[key] = g
			reg.order = append(reg.order, key)
		}
		g.Transactions = append(g.Transactions, r)
	}

	for _, key := range reg.order {
		g := reg.byKey[key]
		entry, ok := meta.Lookup(g.Name, g.EIN)
		if ok {
			g.IsBeloved = entry.IsBeloved
		}
		if ok && entry.International {
			g.International = true
		} else {
			g.International = kw.IsInternational(g.Name, g.Address, g.Transactions)
		}
	}
	return reg
}

// All returns the grantees in first-transaction-seen order.
func (reg *Registry) All() []*Grantee {
	out := make([]*Grantee, 0, len(reg.order))
	for _, key := range reg.order {
		out = append(out, reg.byKey[key])
	}
	return out
}

// Len returns the number of distinct grantees.
func (reg *Registry) Len() int {
	return len(reg.order)
}

// Lookup returns the grantee for an exact identity key.
func (reg *Registry) Lookup(name, ein string) (*Grantee, bool) {
	g, ok := reg.byKey[identityKey(name, ein)]
	return g, ok
}

// Category returns the metadata category for a grantee identity.
func (reg *Registry) Category(name, ein string) string {
	return reg.meta.Category(name, ein)
}

// Find resolves a grantee by name, loosest-last: exact name+EIN when
// an EIN is supplied, then case-insensitive exact name, then substring
// in either direction in registry order. Returns nil when nothing
// matches.
func (reg *Registry) Find(name, ein string) *Grantee {
	name = strings.TrimSpace(name)
	if ein != "" {
		if g, ok := reg.Lookup(name, ein); ok {
			return g
		}
	}
	for _, key := range reg.order {
		g := reg.byKey[key]
		if strings.EqualFold(g.Name, name) {
			return g
		}
	}
	lower := strings.ToLower(name)
	for _, key := range reg.order {
		g := reg.byKey[key]
		gn := strings.ToLower(g.Name)
		if strings.Contains(gn, lower) || strings.Contains(lower, gn) {
			return g
		}
	}
	return nil
}

// SortMostRecentFirst orders a copy of the transactions newest-first:
// extracted year descending, then the raw Sent Date string descending
// as a tie-break.
func SortMostRecentFirst(txns []core.Record) []core.Record {
	out := make([]core.Record, len(txns))
	copy(out, txns)
	sort.SliceStable(out, func(i, j int) bool {
		yi, _ := core.RecordYear(out[i])
		yj, _ := core.RecordYear(out[j])
		if yi != yj {
			return yi > yj
		}
		return out[i].String(core.FieldSentDate) > out[j].String(core.FieldSentDate)
	})
	return out
}

// MostRecentGrantNote returns the newest transaction's Grant Purpose,
// falling back to its Special Note. The second return is false when
// the list is empty or the winner carries neither field.
func MostRecentGrantNote(txns []core.Record) (string, bool) {
	if len(txns) == 0 {
		return "", false
	}
	newest := SortMostRecentFirst(txns)[0]
	if p := core.TrimString(newest, core.FieldPurpose); p != "" {
		return p, true
	}
	if n := core.TrimString(newest, core.FieldNote); n != "" {
		return n, true
	}
	return "", false
}
