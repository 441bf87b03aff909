package recon

import (
	"encoding/json"

	"github.com/go-redis/redis/v8"

	"github.com/venueops/cashbook/config"
	"github.com/venueops/cashbook/mq_client"
)

var TotalsCacheKey = "cashbook:totals"
var TotalsSubject = "cashbook.totals"

type Notification struct {
}

func NewNotification() *Notification {
	return &Notification{}
}

// Publish fans a totals snapshot out to the cache, the event exchange, the
// live subject and the metrics store. Any sink failing leaves the previous
// snapshot in place and the engine keeps running.
func (n *Notification) Publish(totals *Totals) {
	payload_message, err := json.Marshal(totals)
	if err != nil {
		config.Logger.Errorf("Failed to encode totals: %v", err.Error())
		return
	}

	if err := config.Redis.SetKey(TotalsCacheKey, totals, redis.KeepTTL); err != nil {
		config.Logger.Errorf("Failed to cache totals: %v", err.Error())
	}

	if err := mq_client.EnqueueEvent("public", "global", "totals", payload_message); err != nil {
		config.Logger.Errorf("Failed to enqueue totals event: %v", err.Error())
	}

	if err := config.Nats.Publish(TotalsSubject, payload_message); err != nil {
		config.Logger.Errorf("Failed to publish totals: %v", err.Error())
	}

	config.InfluxDB.NewPoint("reconciliation", map[string]string{}, map[string]interface{}{
		"total_cash":   totals.TotalCash.InexactFloat64(),
		"locker_total": totals.LockerTotal.InexactFloat64(),
		"bank_total":   totals.BankTotal.InexactFloat64(),
		"cash_in_hand": totals.CashInHand.InexactFloat64(),
		"accounts":     len(totals.Accounts),
	})
}
