package query

import (
	"sort"

	"grantbook/internal/core"
	"grantbook/internal/grantee"
	"grantbook/internal/log"
)

type (
	// GranteeDetail is the show_grantee payload: identity and
	// classification, lifetime cleared totals, per-status and per-year
	// breakdowns, and the full history newest-first.
	GranteeDetail struct {
		Name            string        `json:"name"`
		EIN             string        `json:"ein,omitempty"`
		Address         string        `json:"address,omitempty"`
		Category        string        `json:"category"`
		International   bool          `json:"international"`
		IsBeloved       bool          `json:"is_beloved"`
		TotalAmount     float64       `json:"total_amount"`
		GrantCount      int           `json:"grant_count"`
		FirstGrantYear  int           `json:"first_grant_year,omitempty"`
		LastGrantYear   int           `json:"last_grant_year,omitempty"`
		StatusBreakdown []StatusTotal `json:"status_breakdown"`
		YearlyTotals    []YearlyTotal `json:"yearly_totals"`
		Transactions    []core.Record `json:"transactions"`
	}

	// StatusTotal covers every status, including non-cleared ones.
	StatusTotal struct {
		Status      string  `json:"status"`
		Count       int     `json:"count"`
		TotalAmount float64 `json:"total_amount"`
	}

	// YearlyTotal covers cleared transactions only.
	YearlyTotal struct {
		Year        int     `json:"year"`
		Count       int     `json:"count"`
		TotalAmount float64 `json:"total_amount"`
	}
)

// ShowGrantee resolves one grantee (exact, then fuzzy name fallback)
// and computes its detail view.
func (e *Engine) ShowGrantee(records []core.Record, p ShowGranteeParams) (*GranteeDetail, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	reg := grantee.BuildRegistry(records, e.meta, e.keywords)
	g := reg.Find(p.Charity, p.EIN)
	if g == nil {
		return nil, notFoundf("grantee not found: %s", p.Charity)
	}

	detail := &GranteeDetail{
		Name:          g.Name,
		EIN:           g.EIN,
		Address:       g.Address,
		Category:      reg.Category(g.Name, g.EIN),
		International: g.International,
		IsBeloved:     g.IsBeloved,
		GrantCount:    len(g.Transactions),
	}

	yearly := make(map[int]*YearlyTotal)
	for _, r := range g.Transactions {
		if !core.IsCleared(r) {
			continue
		}
		amount := core.Amount(r)
		detail.TotalAmount += amount

		y, ok := core.RecordYear(r)
		if !ok {
			continue
		}
		if detail.FirstGrantYear == 0 || y < detail.FirstGrantYear {
			detail.FirstGrantYear = y
		}
		if y > detail.LastGrantYear {
			detail.LastGrantYear = y
		}
		t, ok := yearly[y]
		if !ok {
			t = &YearlyTotal{Year: y}
			yearly[y] = t
		}
		t.Count++
		t.TotalAmount += amount
	}
	for _, t := range yearly {
		detail.YearlyTotals = append(detail.YearlyTotals, *t)
	}
	sort.Slice(detail.YearlyTotals, func(i, j int) bool {
		return detail.YearlyTotals[i].Year < detail.YearlyTotals[j].Year
	})

	detail.StatusBreakdown = statusBreakdown(g.Transactions)
	detail.Transactions = grantee.SortMostRecentFirst(g.Transactions)

	e.logger.Debug("resolved grantee",
		log.FieldOperation, "show_grantee",
		log.FieldGrantee, g.Name,
		log.FieldResultCount, detail.GrantCount)
	return detail, nil
}

// statusBreakdown tallies every status, first-seen order, with empty
// statuses bucketed as Unknown.
func statusBreakdown(txns []core.Record) []StatusTotal {
	var order []string
	totals := make(map[string]*StatusTotal)
	for _, r := range txns {
		status := core.TrimString(r, core.FieldStatus)
		if status == "" {
			status = core.UnknownGroup
		}
		t, ok := totals[status]
		if !ok {
			t = &StatusTotal{Status: status}
			totals[status] = t
			order = append(order, status)
		}
		t.Count++
		t.TotalAmount += core.Amount(r)
	}
	out := make([]StatusTotal, 0, len(order))
	for _, status := range order {
		out = append(out, *totals[status])
	}
	return out
}
