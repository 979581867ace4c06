package tavern

import (
	"fmt"
	"log"

	"github.com/schollz/progressbar/v3"
)

// ReportSink receives the per-day summary rows once a run finishes.
type ReportSink interface {
	WriteDaySummaries(rows []DaySummaryEvent) error
}

// Run plays the configured number of days end to end with the keeper
// acting as the player, then flushes reports and closes the controller.
func Run(t *Tavern, keeper *Keeper, reports ReportSink) error {
	cfg := t.Config
	log.Printf("Simulation starting: %q, %d days at %s per tick", cfg.TavernName, cfg.Days, cfg.TickRate)

	bar := progressbar.Default(int64(cfg.Days), "days")
	summaries := make([]DaySummaryEvent, 0, cfg.Days)

	for day := 1; day <= cfg.Days; day++ {
		if day == 1 {
			t.BeginMorning()
		} else {
			t.AdvanceToNextDay()
		}
		keeper.Restock(t)

		handle := t.BeginDaySimulation()
		go keeper.ServeDay(t, handle)
		<-handle.Done()

		s := t.Snapshot()
		summaries = append(summaries, t.DaySummary(&s))
		keeper.SpendEvening(t)
		_ = bar.Add(1)
	}

	if reports != nil {
		if err := reports.WriteDaySummaries(summaries); err != nil {
			return fmt.Errorf("writing day reports: %w", err)
		}
	}

	s := t.Snapshot()
	log.Printf("Simulation complete: day %d, %d gold, fame %d", s.Day, s.Gold, s.Fame)
	return t.Close()
}
