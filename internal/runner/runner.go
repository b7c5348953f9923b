package runner

import (
	"context"
	"taskloop/internal/ports"
	"taskloop/pkg/humandur"
	"time"

	"github.com/rs/zerolog/log"
)

// Runner executes the external task in a strict cycle: log a start marker,
// invoke the task and wait for it, log the sleep announcement, sleep for
// Interval, repeat. Invocations never overlap and the exit code of one
// cycle never changes what the next cycle does.
type Runner struct {
	Invoker  ports.Invoker
	Journal  ports.Journal
	Interval time.Duration
	Label    string
}

func New(inv ports.Invoker, j ports.Journal, interval time.Duration, label string) *Runner {
	return &Runner{Invoker: inv, Journal: j, Interval: interval, Label: label}
}

// Run loops until ctx is cancelled; that is the only way out.
func (r *Runner) Run(ctx context.Context) error {
	for cycle := uint64(1); ; cycle++ {
		log.Ctx(ctx).Info().Msgf("Running %s...", r.Label)

		run, err := r.Invoker.Invoke(ctx)
		run.Cycle = cycle
		if r.Journal != nil {
			r.Journal.Record(run)
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil {
			// The task never started. The source behavior is to carry on
			// regardless, so log it and keep cycling.
			log.Ctx(ctx).Error().Err(err).Msgf("%s did not start", r.Label)
		} else if run.ExitCode != 0 {
			log.Ctx(ctx).Warn().Int("exit_code", run.ExitCode).Msgf("%s exited with non-zero status", r.Label)
		}

		log.Ctx(ctx).Info().Msgf("Sleeping for %s...", humandur.Format(r.Interval))

		timer := time.NewTimer(r.Interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}
