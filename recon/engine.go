package recon

import (
	"sync"
	"time"

	"github.com/venueops/cashbook/models"
)

// The receipt and account streams are not synchronized with each other, so
// a burst of deliveries is merged over one debounce period and recomputed
// once both have settled.
var DebouncePeriod = 250 * time.Millisecond

type Engine struct {
	reconMutex sync.Mutex

	receipts []models.MoneyReceipt
	accounts []models.Account
	window   Window

	last  *Totals
	timer *time.Timer

	Notification *Notification
}

func NewEngine(window Window) *Engine {
	engine := &Engine{
		window:       window,
		Notification: NewNotification(),
	}

	return engine
}

func (e *Engine) ApplyReceipts(receipts []models.MoneyReceipt) {
	e.reconMutex.Lock()
	defer e.reconMutex.Unlock()

	e.receipts = receipts
	e.schedule()
}

func (e *Engine) ApplyAccounts(accounts []models.Account) {
	e.reconMutex.Lock()
	defer e.reconMutex.Unlock()

	e.accounts = accounts
	e.schedule()
}

// schedule arms (or re-arms) the debounce timer. Callers hold reconMutex.
func (e *Engine) schedule() {
	if e.timer != nil {
		e.timer.Stop()
	}

	e.timer = time.AfterFunc(DebouncePeriod, func() {
		e.Recompute()
	})
}

// Recompute runs one reconciliation pass over the current snapshots and
// publishes the result.
func (e *Engine) Recompute() *Totals {
	e.reconMutex.Lock()
	defer e.reconMutex.Unlock()

	totals := Reconcile(e.receipts, e.accounts, e.window)
	e.last = totals

	if e.Notification != nil {
		e.Notification.Publish(totals)
	}

	return totals
}

// Snapshot returns the last published totals, or nil before the first pass.
func (e *Engine) Snapshot() *Totals {
	e.reconMutex.Lock()
	defer e.reconMutex.Unlock()

	return e.last
}
