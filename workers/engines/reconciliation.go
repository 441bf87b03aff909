package engines

import (
	"encoding/json"
	"log"
	"time"

	"github.com/venueops/cashbook/config"
	"github.com/venueops/cashbook/recon"
	"github.com/venueops/cashbook/services/totals_service"
	"github.com/venueops/cashbook/types"
)

type Worker interface {
	Process(payload []byte) error
}

// ReconciliationWorker consumes ledger change events and drives the engine.
// Every event triggers a full snapshot reload of the affected stream; the
// engine itself debounces bursts into a single recompute.
type ReconciliationWorker struct {
	Engine *recon.Engine
}

func NewReconciliationWorker() *ReconciliationWorker {
	worker := &ReconciliationWorker{
		Engine: recon.NewEngine(recon.FinancialYear(time.Now())),
	}

	worker.Reload()

	return worker
}

func (w *ReconciliationWorker) Process(payload []byte) error {
	var ledger_payload types.LedgerPayloadMessage
	err := json.Unmarshal(payload, &ledger_payload)
	if err != nil {
		log.Print(err)
		return err
	}

	switch ledger_payload.Action {
	case types.ActionReceiptCreated:
		// the cash mirror may have touched an account as well
		w.ReloadReceipts()
		w.ReloadAccounts()
	case types.ActionTransactionAppended, types.ActionTransactionApproved:
		w.ReloadAccounts()
	case types.ActionReload:
		w.Reload()
	default:
		config.Logger.Errorf("Unknown action: %s", ledger_payload.Action)
	}

	return nil
}

func (w *ReconciliationWorker) Reload() {
	w.ReloadReceipts()
	w.ReloadAccounts()
}

func (w *ReconciliationWorker) ReloadReceipts() {
	receipts, _, err := totals_service.LoadStreams()
	if err != nil {
		config.Logger.Errorf("Failed to reload receipt stream: %v", err.Error())
		return
	}

	w.Engine.ApplyReceipts(receipts)
}

func (w *ReconciliationWorker) ReloadAccounts() {
	_, accounts, err := totals_service.LoadStreams()
	if err != nil {
		config.Logger.Errorf("Failed to reload account stream: %v", err.Error())
		return
	}

	w.Engine.ApplyAccounts(accounts)
}
