package totals_service

import (
	"time"

	"github.com/venueops/cashbook/config"
	"github.com/venueops/cashbook/models"
	"github.com/venueops/cashbook/recon"
)

// LoadStreams pulls full snapshots of both ledger streams from the store.
func LoadStreams() ([]models.MoneyReceipt, []models.Account, error) {
	var receipts []models.MoneyReceipt
	var accounts []models.Account

	if err := config.DataBase.Order("serial_num asc").Find(&receipts).Error; err != nil {
		return nil, nil, err
	}

	if err := config.DataBase.Preload("Transactions").Order("id asc").Find(&accounts).Error; err != nil {
		return nil, nil, err
	}

	return receipts, accounts, nil
}

// Compute reconciles fresh from the store.
func Compute(window recon.Window) (*recon.Totals, error) {
	receipts, accounts, err := LoadStreams()
	if err != nil {
		return nil, err
	}

	return recon.Reconcile(receipts, accounts, window), nil
}

// Fetch serves the engine's cached snapshot for the default window and
// computes fresh totals for explicit windows or a cold cache.
func Fetch(window recon.Window) (*recon.Totals, error) {
	if window.Zero() {
		var totals recon.Totals

		if err := config.Redis.GetKey(recon.TotalsCacheKey, &totals); err == nil && !totals.ComputedAt.IsZero() {
			return &totals, nil
		}

		window = recon.FinancialYear(time.Now())
	}

	return Compute(window)
}
