package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/lateness-tracker/internal/logger"
)

// Probe is a named dependency checked by the health worker.
type Probe struct {
	Name   string
	Target Pinger
}

// healthWorker pings every probe on a fixed interval and reports SERVING only
// while all of them answer.
type healthWorker struct {
	probes   []Probe
	reporter HealthReporter
	interval time.Duration
	timeout  time.Duration

	logger *logger.Logger
}

// NewHealthWorker builds the periodic dependency probe. Each ping is bounded
// by the interval so a hung database cannot stall the loop.
func NewHealthWorker(interval time.Duration, reporter HealthReporter, logger *logger.Logger, probes ...Probe) Worker {
	return &healthWorker{
		probes:   probes,
		reporter: reporter,
		interval: interval,
		timeout:  interval,
		logger:   logger,
	}
}

func (h *healthWorker) Run(ctx context.Context) {
	h.check(ctx)

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			h.logger.Debug().Msg("health worker stopped")
			return
		case <-ticker.C:
			h.check(ctx)
		}
	}
}

func (h *healthWorker) check(ctx context.Context) {
	serving := true
	for _, probe := range h.probes {
		pingCtx, cancel := context.WithTimeout(ctx, h.timeout)
		err := probe.Target.Ping(pingCtx)
		cancel()

		if err != nil {
			if ctx.Err() != nil {
				return
			}
			h.logger.Err(err).Str("probe", probe.Name).Msg("health probe failed")
			serving = false
		}
	}

	h.reporter.SetServing(serving)
}
