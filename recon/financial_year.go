package recon

import "time"

// Window is an inclusive [From, To] date range. A zero window matches
// everything.
type Window struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

func (w Window) Zero() bool {
	return w.From.IsZero() && w.To.IsZero()
}

func (w Window) Contains(t time.Time) bool {
	if w.Zero() {
		return true
	}

	if !w.From.IsZero() && t.Before(w.From) {
		return false
	}

	if !w.To.IsZero() && t.After(w.To) {
		return false
	}

	return true
}

// FinancialYear is the accounting period around ref: 1 April to 31 March.
func FinancialYear(ref time.Time) Window {
	year := ref.Year()
	if ref.Month() < time.April {
		year -= 1
	}

	from := time.Date(year, time.April, 1, 0, 0, 0, 0, ref.Location())
	to := time.Date(year+1, time.April, 1, 0, 0, 0, 0, ref.Location()).Add(-time.Nanosecond)

	return Window{From: from, To: to}
}
