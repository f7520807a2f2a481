package query

import (
	"sort"

	"grantbook/internal/core"
	"grantbook/internal/grantee"
	"grantbook/internal/log"
)

// GranteeSummary is one row of the list_grantees payload.
type GranteeSummary struct {
	Name           string  `json:"name"`
	EIN            string  `json:"ein,omitempty"`
	Address        string  `json:"address,omitempty"`
	Category       string  `json:"category"`
	International  bool    `json:"international"`
	IsBeloved      bool    `json:"is_beloved"`
	GrantCount     int     `json:"grant_count"`
	TotalAmount    float64 `json:"total_amount"`
	LastGrantYear  int     `json:"last_grant_year,omitempty"`
	MostRecentNote string  `json:"most_recent_note,omitempty"`
}

// ListGrantees resolves the grantee registry, optionally scopes each
// grantee's transactions to a year, drops grantees with nothing in
// scope, and summarizes the rest. Totals are cleared-scoped.
func (e *Engine) ListGrantees(records []core.Record, p ListGranteesParams) ([]GranteeSummary, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	reg := grantee.BuildRegistry(records, e.meta, e.keywords)

	out := make([]GranteeSummary, 0, reg.Len())
	for _, g := range reg.All() {
		scoped := core.Filter(g.Transactions, func(r core.Record) bool {
			return core.MatchesYear(r, p.Year)
		})
		if len(scoped) == 0 {
			continue
		}

		s := GranteeSummary{
			Name:          g.Name,
			EIN:           g.EIN,
			Address:       g.Address,
			Category:      reg.Category(g.Name, g.EIN),
			International: g.International,
			IsBeloved:     g.IsBeloved,
			GrantCount:    len(scoped),
		}
		for _, r := range scoped {
			if !core.IsCleared(r) {
				continue
			}
			s.TotalAmount += core.Amount(r)
		}
		for _, r := range scoped {
			if y, ok := core.RecordYear(r); ok && y > s.LastGrantYear {
				s.LastGrantYear = y
			}
		}
		if note, ok := grantee.MostRecentGrantNote(scoped); ok {
			s.MostRecentNote = note
		}
		out = append(out, s)
	}

	sortSummaries(out, p.SortBy)

	e.logger.Debug("listed grantees",
		log.FieldOperation, "list_grantees",
		log.FieldResultCount, len(out))
	return out, nil
}

func sortSummaries(out []GranteeSummary, sortBy string) {
	switch sortBy {
	case GranteeSortEIN:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].EIN < out[j].EIN
		})
	case GranteeSortRecent:
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].LastGrantYear != out[j].LastGrantYear {
				return out[i].LastGrantYear > out[j].LastGrantYear
			}
			return core.CompareStrings(out[i].Name, out[j].Name) < 0
		})
	case GranteeSortTotal:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].TotalAmount > out[j].TotalAmount
		})
	default: // name
		sort.SliceStable(out, func(i, j int) bool {
			return core.CompareStrings(out[i].Name, out[j].Name) < 0
		})
	}
}
