package cron

import (
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jasonlvhit/gocron"

	"github.com/venueops/cashbook/config"
	"github.com/venueops/cashbook/recon"
	"github.com/venueops/cashbook/services/totals_service"
)

type DailyTotalsJob struct {
}

func (j *DailyTotalsJob) Process() {
	s := gocron.NewScheduler()
	s.Every(1).Day().At("00:05:00").Do(snapshotTotals)
	<-s.Start()
}

// snapshotTotals records one financial-year reconciliation per day so the
// time series survives cache resets.
func snapshotTotals() {
	totals, err := totals_service.Compute(recon.FinancialYear(time.Now()))
	if err != nil {
		config.Logger.Errorf("Daily totals snapshot failed: %v", err.Error())
		return
	}

	day := time.Now().Format("2006-01-02")
	config.Redis.SetKey("cashbook:daily:"+day, totals, redis.KeepTTL)

	config.InfluxDB.NewPoint("daily_totals", map[string]string{
		"day": day,
	}, map[string]interface{}{
		"total_cash":   totals.TotalCash.InexactFloat64(),
		"locker_total": totals.LockerTotal.InexactFloat64(),
		"bank_total":   totals.BankTotal.InexactFloat64(),
		"cash_in_hand": totals.CashInHand.InexactFloat64(),
	})
}
