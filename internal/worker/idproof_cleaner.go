package worker

import (
	"context"
	"fmt"

	"lodgehub/config"
	"lodgehub/infras/kafka"
	"lodgehub/infras/otel"
	bookingService "lodgehub/internal/domains/booking/service"
	outboxModel "lodgehub/internal/domains/outbox/model"
	"lodgehub/shared/constant"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

// IDProofCleaner deletes the identity documents of billed bookings. Failures
// are logged and not retried; the booking row no longer references the files.
type IDProofCleaner struct {
	booking bookingService.Booking
	kafka   kafka.Client
	otel    otel.Otel
	topic   string
}

func NewIDProofCleaner(booking bookingService.Booking, kafka kafka.Client, cfg *config.Config, otel otel.Otel) *IDProofCleaner {
	return &IDProofCleaner{
		booking: booking,
		kafka:   kafka,
		otel:    otel,
		topic:   cfg.Kafka.Topics.BookingBilled,
	}
}

func (c *IDProofCleaner) Start(ctx context.Context) error {
	log.Info().Str("topic", c.topic).Msg("id proof cleaner started")

	if err := c.kafka.Consume(ctx, "", c.topic, func(ctx context.Context, message kafkaGo.Message) error {
		return c.Handle(context.WithoutCancel(ctx), message)
	}); err != nil {
		return fmt.Errorf("consuming %s: %w", c.topic, err)
	}

	return nil
}

func (c *IDProofCleaner) Handle(ctx context.Context, message kafkaGo.Message) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelWorkerScopeName, constant.OtelWorkerScopeName+".IDProofCleaner")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	event, err := kafka.Decode[outboxModel.BookingBilled](message)
	if err != nil {
		return fmt.Errorf("failed to decode booking billed event: %w", err)
	}

	scope.SetAttribute("booking.id", event.BookingID)
	if len(event.IDProofs) == 0 {
		return nil
	}

	if err = c.booking.DeleteIDProofs(ctx, event.LodgeID, event.IDProofs); err != nil {
		return fmt.Errorf("failed to delete id proofs of booking %d: %w", event.BookingID, err)
	}

	log.Info().Int64("lodge_id", event.LodgeID).Int64("booking_id", event.BookingID).Int("files", len(event.IDProofs)).Msg("id proofs deleted")

	return nil
}
