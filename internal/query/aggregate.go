package query

import (
	"sort"
	"strconv"
	"strings"

	"grantbook/internal/core"
	"grantbook/internal/grantee"
	"grantbook/internal/log"
)

// AggregateRow is one bucket of the aggregate_transactions payload.
// Name is set only when grouping by grantee.
type AggregateRow struct {
	Key         string  `json:"key"`
	Name        string  `json:"name,omitempty"`
	Count       int     `json:"count"`
	TotalAmount float64 `json:"total_amount"`
}

// Aggregate applies the standard filter set, restricts to cleared
// transactions unless grouping by status, then buckets into
// count/total pairs. Default order is total_amount descending.
func (e *Engine) Aggregate(records []core.Record, p AggregateParams) ([]AggregateRow, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	reg := grantee.BuildRegistry(records, e.meta, e.keywords)

	out := core.Filter(records, func(r core.Record) bool {
		return core.MatchesCharity(r, p.Charity) &&
			core.MatchesYear(r, p.Year) &&
			core.MatchesYearRange(r, p.MinYear, p.MaxYear) &&
			core.MatchesMinAmount(r, p.MinAmount) &&
			core.MatchesMaxAmount(r, p.MaxAmount)
	})
	if p.Category != "" {
		out = core.Filter(out, func(r core.Record) bool {
			cat := reg.Category(core.TrimString(r, core.FieldCharity), core.TrimString(r, core.FieldEIN))
			return strings.EqualFold(cat, p.Category)
		})
	}
	// Grouping by status is the one view that wants to see every
	// status; everything else counts cleared grants only.
	if p.GroupBy != AggByStatus {
		out = core.Filter(out, core.IsCleared)
	}

	var order []string
	buckets := make(map[string]*AggregateRow)
	for _, r := range out {
		key, name := bucketKey(reg, r, p.GroupBy)
		b, ok := buckets[key]
		if !ok {
			b = &AggregateRow{Key: key, Name: name}
			buckets[key] = b
			order = append(order, key)
		}
		b.Count++
		b.TotalAmount += core.Amount(r)
	}

	rows := make([]AggregateRow, 0, len(order))
	for _, key := range order {
		rows = append(rows, *buckets[key])
	}
	sortRows(rows, p.SortBy)

	e.logger.Debug("aggregated transactions",
		log.FieldOperation, "aggregate_transactions",
		log.FieldGroupBy, p.GroupBy,
		log.FieldResultCount, len(rows))
	return rows, nil
}

func bucketKey(reg *grantee.Registry, r core.Record, groupBy string) (key, name string) {
	charity := core.TrimString(r, core.FieldCharity)
	ein := core.TrimString(r, core.FieldEIN)

	switch groupBy {
	case AggByCategory:
		return reg.Category(charity, ein), ""
	case AggByGrantee:
		if charity == "" {
			return core.UnknownGroup, ""
		}
		return charity + "|" + ein, charity
	case AggByYear:
		y, ok := core.RecordYear(r)
		if !ok {
			return core.UnknownGroup, ""
		}
		return strconv.Itoa(y), ""
	case AggByInternational:
		international := false
		if g, ok := reg.Lookup(charity, ein); ok {
			international = g.International
		}
		return strconv.FormatBool(international), ""
	case AggByBeloved:
		beloved := false
		if g, ok := reg.Lookup(charity, ein); ok {
			beloved = g.IsBeloved
		}
		return strconv.FormatBool(beloved), ""
	default: // AggByStatus
		status := core.TrimString(r, core.FieldStatus)
		if status == "" {
			return core.UnknownGroup, ""
		}
		return status, ""
	}
}

func sortRows(rows []AggregateRow, sortBy string) {
	switch sortBy {
	case AggSortCount:
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].Count > rows[j].Count
		})
	case AggSortName:
		sort.SliceStable(rows, func(i, j int) bool {
			return core.CompareStrings(rowName(rows[i]), rowName(rows[j])) < 0
		})
	default: // total_amount
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].TotalAmount > rows[j].TotalAmount
		})
	}
}

func rowName(r AggregateRow) string {
	if r.Name != "" {
		return r.Name
	}
	return r.Key
}
