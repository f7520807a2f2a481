package query

import "grantbook/internal/core"

// Validated year window for any year parameter.
const (
	MinValidYear = 1900
	MaxValidYear = 2100
)

// Sort keys accepted by ListGrantees.
const (
	GranteeSortName   = "name"
	GranteeSortEIN    = "ein"
	GranteeSortRecent = "recent"
	GranteeSortTotal  = "total"
)

// Sort keys accepted by Aggregate.
const (
	AggSortCount = "count"
	AggSortTotal = "total_amount"
	AggSortName  = "name"
)

// Group keys accepted by Aggregate.
const (
	AggByCategory      = "category"
	AggByGrantee       = "grantee"
	AggByYear          = "year"
	AggByInternational = "international"
	AggByBeloved       = "is_beloved"
	AggByStatus        = "status"
)

type (
	// ListTransactionsParams filters, sorts, projects and optionally
	// groups the transaction list. Zero values mean "no constraint".
	ListTransactionsParams struct {
		Charity   string
		Year      int
		MinYear   int
		MaxYear   int
		MinAmount float64
		MaxAmount float64
		Search    string
		Category  string
		Status    string
		SortBy    string
		SortOrder string
		Fields    []string
		GroupBy   string
	}

	// ListGranteesParams scopes and orders the grantee list.
	ListGranteesParams struct {
		Year   int
		SortBy string
	}

	// ShowGranteeParams identifies a single grantee. Charity is
	// required; EIN disambiguates organizations sharing a name.
	ShowGranteeParams struct {
		Charity string
		EIN     string
	}

	// AggregateParams filters then groups into count/total buckets.
	AggregateParams struct {
		GroupBy   string
		Year      int
		MinYear   int
		MaxYear   int
		MinAmount float64
		MaxAmount float64
		Charity   string
		Category  string
		SortBy    string
	}
)

func validateYear(name string, y int) error {
	if y == 0 {
		return nil
	}
	if y < MinValidYear || y > MaxValidYear {
		return validationf("%s must be between %d and %d, got %d", name, MinValidYear, MaxValidYear, y)
	}
	return nil
}

func validateAmount(name string, a float64) error {
	if a < 0 {
		return validationf("%s must not be negative, got %v", name, a)
	}
	return nil
}

func validateYearWindow(minYear, maxYear int) error {
	if minYear != 0 && maxYear != 0 && minYear > maxYear {
		return validationf("min_year %d exceeds max_year %d", minYear, maxYear)
	}
	return nil
}

func validateAmountWindow(minAmount, maxAmount float64) error {
	if minAmount != 0 && maxAmount != 0 && minAmount > maxAmount {
		return validationf("min_amount %v exceeds max_amount %v", minAmount, maxAmount)
	}
	return nil
}

func (p ListTransactionsParams) Validate() error {
	if err := validateYear("year", p.Year); err != nil {
		return err
	}
	if err := validateYear("min_year", p.MinYear); err != nil {
		return err
	}
	if err := validateYear("max_year", p.MaxYear); err != nil {
		return err
	}
	if err := validateYearWindow(p.MinYear, p.MaxYear); err != nil {
		return err
	}
	if err := validateAmount("min_amount", p.MinAmount); err != nil {
		return err
	}
	if err := validateAmount("max_amount", p.MaxAmount); err != nil {
		return err
	}
	if err := validateAmountWindow(p.MinAmount, p.MaxAmount); err != nil {
		return err
	}
	switch p.SortOrder {
	case "", core.Ascending, core.Descending:
	default:
		return validationf("sort_order must be %q or %q, got %q", core.Ascending, core.Descending, p.SortOrder)
	}
	return nil
}

func (p ListGranteesParams) Validate() error {
	if err := validateYear("year", p.Year); err != nil {
		return err
	}
	switch p.SortBy {
	case "", GranteeSortName, GranteeSortEIN, GranteeSortRecent, GranteeSortTotal:
		return nil
	default:
		return validationf("sort_by must be one of name, ein, recent, total; got %q", p.SortBy)
	}
}

func (p ShowGranteeParams) Validate() error {
	if p.Charity == "" {
		return validationf("charity is required")
	}
	return nil
}

func (p AggregateParams) Validate() error {
	if p.GroupBy == "" {
		return validationf("group_by is required")
	}
	switch p.GroupBy {
	case AggByCategory, AggByGrantee, AggByYear, AggByInternational, AggByBeloved, AggByStatus:
	default:
		return notFoundf("unknown group_by %q", p.GroupBy)
	}
	if err := validateYear("year", p.Year); err != nil {
		return err
	}
	if err := validateYear("min_year", p.MinYear); err != nil {
		return err
	}
	if err := validateYear("max_year", p.MaxYear); err != nil {
		return err
	}
	if err := validateYearWindow(p.MinYear, p.MaxYear); err != nil {
		return err
	}
	if err := validateAmount("min_amount", p.MinAmount); err != nil {
		return err
	}
	if err := validateAmount("max_amount", p.MaxAmount); err != nil {
		return err
	}
	if err := validateAmountWindow(p.MinAmount, p.MaxAmount); err != nil {
		return err
	}
	switch p.SortBy {
	case "", AggSortCount, AggSortTotal, AggSortName:
		return nil
	default:
		return validationf("sort_by must be one of count, total_amount, name; got %q", p.SortBy)
	}
}
