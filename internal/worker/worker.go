package worker

import (
	"context"
	"fmt"

	"lodgehub/infras/kafka"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type Runner interface {
	Start(ctx context.Context) error
}

// Workers runs the background processes of the booking domain until ctx ends.
type Workers struct {
	runners []Runner
	kafka   kafka.Client
}

func New(relay *OutboxRelay, cleaner *IDProofCleaner, kafka kafka.Client) *Workers {
	return &Workers{runners: []Runner{relay, cleaner}, kafka: kafka}
}

func (w *Workers) Run(ctx context.Context) error {
	group, ctx := errgroup.WithContext(ctx)

	for _, runner := range w.runners {
		group.Go(func() error {
			return runner.Start(ctx)
		})
	}

	err := group.Wait()

	if cerr := w.kafka.Close(); cerr != nil {
		log.Warn().Err(cerr).Msg("failed to close kafka client")
	}

	if err != nil {
		return fmt.Errorf("worker stopped: %w", err)
	}

	log.Info().Msg("all workers stopped")

	return nil
}
