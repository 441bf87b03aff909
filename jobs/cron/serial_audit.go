package cron

import (
	"github.com/jasonlvhit/gocron"

	"github.com/venueops/cashbook/config"
	"github.com/venueops/cashbook/models"
)

type SerialAuditJob struct {
}

func (j *SerialAuditJob) Process() {
	s := gocron.NewScheduler()
	s.Every(1).Hour().Do(auditSerials)
	<-s.Start()
}

// The counter may legitimately run ahead of the ledger (serial issued,
// receipt never written); the ledger running ahead of the counter means
// uniqueness is no longer guaranteed.
func auditSerials() {
	counter, issued, err := models.AuditSerials()
	if err != nil {
		config.Logger.Errorf("Serial audit failed: %v", err.Error())
		return
	}

	if issued > counter {
		config.Logger.Errorf("Serial audit: ledger at %d but counter at %d", issued, counter)
		return
	}

	if counter > issued {
		config.Logger.Warnf("Serial audit: %d issued serials unused", counter-issued)
	}
}
