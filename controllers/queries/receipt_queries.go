package queries

import (
	"time"

	"github.com/venueops/cashbook/types"
)

type ReceiptFilters struct {
	Bucket    string            `query:"bucket"`
	Mode      types.PaymentMode `query:"mode"`
	Direction types.Direction   `query:"direction"`
	TimeFrom  string            `query:"time_from"`
	TimeTo    string            `query:"time_to"`
	Limit     int               `query:"limit"`
	Page      int               `query:"page"`
	OrderBy   types.OrderBy     `query:"order_by"`
}

// VaildateOrderBy keeps the sort direction out of the ORDER BY clause
// unless it is one of the two known values.
func (f ReceiptFilters) VaildateOrderBy() bool {
	return f.OrderBy == types.OrderByAsc || f.OrderBy == types.OrderByDesc
}

func (f ReceiptFilters) FromDate() (time.Time, bool) {
	return parseDate(f.TimeFrom)
}

func (f ReceiptFilters) ToDate() (time.Time, bool) {
	t, ok := parseDate(f.TimeTo)
	if !ok {
		return t, false
	}

	// inclusive upper bound
	return t.AddDate(0, 0, 1).Add(-time.Nanosecond), true
}

type TotalsFilters struct {
	TimeFrom string `query:"time_from"`
	TimeTo   string `query:"time_to"`
}

func (f TotalsFilters) FromDate() (time.Time, bool) {
	return parseDate(f.TimeFrom)
}

func (f TotalsFilters) ToDate() (time.Time, bool) {
	t, ok := parseDate(f.TimeTo)
	if !ok {
		return t, false
	}

	return t.AddDate(0, 0, 1).Add(-time.Nanosecond), true
}

func parseDate(val string) (time.Time, bool) {
	if len(val) == 0 {
		return time.Time{}, false
	}

	t, err := time.Parse("2006-01-02", val)

	return t, err == nil
}
