package scheduler

import (
	"context"
	"time"

	"auction-spot/utils"

	"github.com/robfig/cron/v3"
)

// Promoter opens scheduled auctions that are due
type Promoter interface {
	PromoteDue(now time.Time) (int, error)
}

// Runner runs periodic jobs on a cron schedule with second resolution
type Runner struct {
	cron    *cron.Cron
	baseCtx context.Context
}

// New creates a Runner whose jobs receive baseCtx
func New(baseCtx context.Context) *Runner {
	if baseCtx == nil {
		baseCtx = context.Background()
	}
	return &Runner{
		cron:    cron.New(cron.WithSeconds()),
		baseCtx: baseCtx,
	}
}

// Add registers a job under a cron spec such as "*/5 * * * * *" or "@every 30s"
func (r *Runner) Add(spec string, job func(context.Context)) (cron.EntryID, error) {
	return r.cron.AddFunc(spec, func() {
		if r.baseCtx.Err() != nil {
			return
		}
		job(r.baseCtx)
	})
}

// Start begins running jobs in the background
func (r *Runner) Start() {
	utils.Info("scheduler: started", map[string]any{"entries": len(r.cron.Entries())})
	r.cron.Start()
}

// Stop halts the schedule and waits for running jobs to finish
func (r *Runner) Stop() {
	<-r.cron.Stop().Done()
	utils.Info("scheduler: stopped", nil)
}

// PromoteJob returns a job that opens due scheduled auctions
func PromoteJob(p Promoter) func(context.Context) {
	return func(context.Context) {
		n, err := p.PromoteDue(time.Now().UTC())
		if err != nil {
			utils.Error("scheduler: failed to promote scheduled auctions", map[string]any{
				"promoted": n,
				"error":    err.Error(),
			})
			return
		}
		if n > 0 {
			utils.Info("scheduler: promoted scheduled auctions", map[string]any{"promoted": n})
		}
	}
}
