package recon

import (
	"encoding/json"

	"github.com/nats-io/nats.go"
	"github.com/venueops/cashbook/config"
)

// Subscribe invokes callback with every published totals snapshot and
// returns an unsubscribe function. Undecodable payloads are logged and
// skipped; the subscription stays alive.
func Subscribe(callback func(*Totals)) (func() error, error) {
	sub, err := config.Nats.Subscribe(TotalsSubject, func(m *nats.Msg) {
		var totals Totals

		if err := json.Unmarshal(m.Data, &totals); err != nil {
			config.Logger.Errorf("Failed to decode totals payload: %v", err.Error())
			return
		}

		callback(&totals)
	})

	if err != nil {
		return nil, err
	}

	return sub.Unsubscribe, nil
}
