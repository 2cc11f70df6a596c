package worker

import (
	"context"
	"fmt"
	"time"

	"lodgehub/config"
	"lodgehub/infras/kafka"
	"lodgehub/infras/otel"
	outboxModel "lodgehub/internal/domains/outbox/model"
	outboxService "lodgehub/internal/domains/outbox/service"
	"lodgehub/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	defaultPollInterval = 5 * time.Second
	defaultBatchSize    = 50
)

// OutboxRelay publishes committed outbox events to Kafka. Delivery is at least
// once: an event is marked published only after the broker acknowledged it.
type OutboxRelay struct {
	outbox   outboxService.Outbox
	kafka    kafka.Client
	otel     otel.Otel
	interval time.Duration
	batch    int
}

func NewOutboxRelay(outbox outboxService.Outbox, kafka kafka.Client, cfg *config.Config, otel otel.Otel) *OutboxRelay {
	interval := time.Duration(cfg.Booking.OutboxPollSeconds) * time.Second
	if interval <= 0 {
		interval = defaultPollInterval
	}

	batch := cfg.Booking.OutboxBatchSize
	if batch <= 0 {
		batch = defaultBatchSize
	}

	return &OutboxRelay{
		outbox:   outbox,
		kafka:    kafka,
		otel:     otel,
		interval: interval,
		batch:    batch,
	}
}

func (r *OutboxRelay) Start(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	log.Info().Dur("interval", r.interval).Msg("outbox relay started")

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("outbox relay stopped")

			return nil
		case <-ticker.C:
			if _, err := r.RelayOnce(ctx); err != nil {
				log.Error().Err(err).Msg("outbox relay pass failed")
			}
		}
	}
}

// RelayOnce publishes one batch and returns how many events were marked published.
// Events of a topic are sent in creation order; a failed topic is retried on the next pass.
func (r *OutboxRelay) RelayOnce(ctx context.Context) (published int, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelWorkerScopeName, constant.OtelWorkerScopeName+".OutboxRelay")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	events, err := r.outbox.Pending(ctx, r.batch)
	if err != nil {
		return 0, fmt.Errorf("failed to load pending events: %w", err)
	}

	if len(events) == 0 {
		return 0, nil
	}

	topics, grouped := groupByTopic(events)

	var failed error

	for _, topic := range topics {
		batch := grouped[topic]

		messages := make([]kafka.Message, len(batch))
		ids := make([]string, len(batch))

		for i, event := range batch {
			messages[i] = kafka.Message{Key: event.Key, Value: event.Payload}
			ids[i] = event.ID
		}

		if err := r.kafka.SendMessages(ctx, topic, messages...); err != nil {
			log.Error().Err(err).Str("topic", topic).Int("events", len(batch)).Msg("failed to relay events")

			failed = err

			continue
		}

		if err := r.outbox.MarkPublished(ctx, ids); err != nil {
			return published, fmt.Errorf("failed to mark events published: %w", err)
		}

		published += len(batch)
	}

	if failed != nil {
		return published, fmt.Errorf("failed to relay events: %w", failed)
	}

	return published, nil
}

func groupByTopic(events []outboxModel.Event) ([]string, map[string][]outboxModel.Event) {
	topics := []string{}
	grouped := map[string][]outboxModel.Event{}

	for _, event := range events {
		if _, ok := grouped[event.Topic]; !ok {
			topics = append(topics, event.Topic)
		}

		grouped[event.Topic] = append(grouped[event.Topic], event)
	}

	return topics, grouped
}
