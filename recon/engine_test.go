package recon

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/venueops/cashbook/models"
	"github.com/venueops/cashbook/types"
)

func newTestEngine(window Window) *Engine {
	engine := NewEngine(window)
	// no publish sinks under test
	engine.Notification = nil

	return engine
}

func TestEngineRecompute(t *testing.T) {
	day := time.Date(2026, time.May, 10, 0, 0, 0, 0, time.UTC)
	engine := newTestEngine(Window{})

	engine.ApplyReceipts([]models.MoneyReceipt{
		cashReceipt(1, types.DirectionCredit, "100", day),
	})
	engine.ApplyAccounts([]models.Account{
		account("Locker1-Locker", types.AccountLocker, false,
			txn(types.DirectionCredit, "25", types.StateApproved),
		),
	})

	totals := engine.Recompute()

	assert.Equal(t, "100", totals.TotalCash.String())
	assert.Equal(t, "75", totals.CashInHand.String())
}

func TestEngineSnapshotBeforeFirstPass(t *testing.T) {
	engine := newTestEngine(Window{})

	assert.Nil(t, engine.Snapshot())
}

func TestEngineDebounceMergesBothStreams(t *testing.T) {
	old := DebouncePeriod
	DebouncePeriod = 10 * time.Millisecond
	defer func() { DebouncePeriod = old }()

	day := time.Date(2026, time.May, 10, 0, 0, 0, 0, time.UTC)
	engine := newTestEngine(Window{})

	// two unsynchronized deliveries inside one debounce period
	engine.ApplyReceipts([]models.MoneyReceipt{
		cashReceipt(1, types.DirectionCredit, "100", day),
	})
	engine.ApplyAccounts([]models.Account{
		account("HouseBank-Bank", types.AccountBank, true,
			txn(types.DirectionCredit, "100", types.StateApproved),
		),
	})

	time.Sleep(50 * time.Millisecond)

	totals := engine.Snapshot()
	if assert.NotNil(t, totals) {
		assert.Equal(t, "100", totals.TotalCash.String())
		assert.True(t, totals.CashInHand.IsZero())
	}
}

func TestEngineRecomputeIsStateless(t *testing.T) {
	day := time.Date(2026, time.May, 10, 0, 0, 0, 0, time.UTC)
	engine := newTestEngine(Window{})

	receipts := []models.MoneyReceipt{
		cashReceipt(1, types.DirectionCredit, "100", day),
	}

	// duplicate delivery of the same snapshot must not double-count
	engine.ApplyReceipts(receipts)
	engine.Recompute()
	engine.ApplyReceipts(receipts)
	totals := engine.Recompute()

	assert.Equal(t, "100", totals.TotalCash.String())
}

func TestEngineWindowRestriction(t *testing.T) {
	inside := time.Date(2026, time.May, 10, 0, 0, 0, 0, time.UTC)
	outside := time.Date(2020, time.May, 10, 0, 0, 0, 0, time.UTC)

	engine := newTestEngine(FinancialYear(inside))

	engine.ApplyReceipts([]models.MoneyReceipt{
		cashReceipt(1, types.DirectionCredit, "100", inside),
		cashReceipt(2, types.DirectionCredit, "900", outside),
	})

	totals := engine.Recompute()

	assert.Equal(t, "100", totals.TotalCash.String())
}
