package query

import (
	"strings"

	"grantbook/internal/core"
	"grantbook/internal/grantee"
	"grantbook/internal/log"
)

type (
	// TransactionList is the list_transactions payload: either a flat
	// transaction list or, when grouping was requested, named groups.
	TransactionList struct {
		Count        int           `json:"count"`
		Transactions []core.Record `json:"transactions,omitempty"`
		Groups       []RecordGroup `json:"groups,omitempty"`
	}

	RecordGroup struct {
		Key          string        `json:"key"`
		Count        int           `json:"count"`
		Transactions []core.Record `json:"transactions"`
	}
)

// ListTransactions runs the fixed pipeline: predicate filters, fuzzy
// search, category annotation and filter, sort, field projection,
// optional grouping. The snapshot is never mutated; annotated output
// records are clones.
func (e *Engine) ListTransactions(records []core.Record, p ListTransactionsParams) (*TransactionList, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	out := core.Filter(records, func(r core.Record) bool {
		return core.MatchesCharity(r, p.Charity) &&
			core.MatchesYear(r, p.Year) &&
			core.MatchesYearRange(r, p.MinYear, p.MaxYear) &&
			core.MatchesMinAmount(r, p.MinAmount) &&
			core.MatchesMaxAmount(r, p.MaxAmount) &&
			core.MatchesStatus(r, p.Status)
	})

	out = core.FuzzySearch(out, p.Search)

	// Classification is derived from the full snapshot, not the
	// filtered subset, so a grantee classifies the same under every
	// filter combination.
	reg := grantee.BuildRegistry(records, e.meta, e.keywords)
	out = e.annotate(reg, out, p.Category)

	out = core.SortRecords(out, p.SortBy, p.SortOrder)

	if len(p.Fields) > 0 {
		out = project(out, p.Fields)
	}

	result := &TransactionList{Count: len(out)}
	if p.GroupBy != "" {
		groups := core.GroupRecords(out, p.GroupBy)
		for _, key := range groups.Keys {
			members := groups.Members[key]
			result.Groups = append(result.Groups, RecordGroup{
				Key:          key,
				Count:        len(members),
				Transactions: members,
			})
		}
	} else {
		result.Transactions = out
	}

	e.logger.Debug("listed transactions",
		log.FieldOperation, "list_transactions",
		log.FieldResultCount, result.Count)
	return result, nil
}

// annotate clones each record with computed Category and International
// fields, dropping records that fail the category filter.
func (e *Engine) annotate(reg *grantee.Registry, records []core.Record, category string) []core.Record {
	out := make([]core.Record, 0, len(records))
	for _, r := range records {
		name := core.TrimString(r, core.FieldCharity)
		ein := core.TrimString(r, core.FieldEIN)
		cat := reg.Category(name, ein)
		if category != "" && !strings.EqualFold(cat, category) {
			continue
		}
		international := false
		if g, ok := reg.Lookup(name, ein); ok {
			international = g.International
		}
		c := r.Clone()
		c.Set(core.FieldCategory, cat)
		c.Set(core.FieldInternational, international)
		out = append(out, c)
	}
	return out
}

// project narrows records to the requested fields. The computed
// Category and International fields ride along even when not
// requested.
func project(records []core.Record, fields []string) []core.Record {
	want := make([]string, 0, len(fields)+2)
	want = append(want, fields...)
	for _, computed := range []string{core.FieldCategory, core.FieldInternational} {
		if !containsField(want, computed) {
			want = append(want, computed)
		}
	}
	out := make([]core.Record, len(records))
	for i, r := range records {
		out[i] = r.Project(want)
	}
	return out
}

func containsField(fields []string, name string) bool {
	for _, f := range fields {
		if f == name {
			return true
		}
	}
	return false
}
