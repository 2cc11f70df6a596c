package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"lodgehub/config"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl"
	"github.com/segmentio/kafka-go/sasl/plain"
)

var ErrEmptyTopic = errors.New("kafka topic is required")

// Message is an outgoing record. Value is JSON encoded unless it already is raw JSON.
type Message struct {
	Key   string
	Value any
}

func (m Message) encode() (kafkaGo.Message, error) {
	var (
		value []byte
		err   error
	)

	switch v := m.Value.(type) {
	case []byte:
		value = v
	case json.RawMessage:
		value = v
	default:
		value, err = json.Marshal(v)
		if err != nil {
			return kafkaGo.Message{}, fmt.Errorf("encoding value of key %q: %w", m.Key, err)
		}
	}

	return kafkaGo.Message{Key: []byte(m.Key), Value: value}, nil
}

// Decode unmarshals the JSON value of a consumed record into T.
func Decode[T any](msg kafkaGo.Message) (T, error) {
	var out T

	if err := json.Unmarshal(msg.Value, &out); err != nil {
		return out, fmt.Errorf("decoding record %q: %w", string(msg.Key), err)
	}

	return out, nil
}

// Handler processes one record. The offset is committed once it returns.
type Handler func(ctx context.Context, message kafkaGo.Message) error

type Client interface {
	SendMessages(ctx context.Context, topic string, messages ...Message) error
	Consume(ctx context.Context, consumerGroup, topic string, handler Handler) error
	Close() error
}

type client struct {
	brokers []string
	group   string
	dialer  *kafkaGo.Dialer
	writer  *kafkaGo.Writer
}

func mechanism(cfg *config.Config) sasl.Mechanism {
	if cfg.Kafka.SASL.Username == "" {
		return nil
	}

	return plain.Mechanism{
		Username: cfg.Kafka.SASL.Username,
		Password: cfg.Kafka.SASL.Password,
	}
}

func New(cfg *config.Config) Client {
	auth := mechanism(cfg)

	writer := &kafkaGo.Writer{
		Addr:                   kafkaGo.TCP(cfg.Kafka.Brokers...),
		Balancer:               &kafkaGo.Hash{},
		RequiredAcks:           kafkaGo.RequireAll,
		AllowAutoTopicCreation: true,
		BatchTimeout:           50 * time.Millisecond,
		Transport:              &kafkaGo.Transport{SASL: auth},
	}

	log.Info().Strs("brokers", cfg.Kafka.Brokers).Bool("sasl", auth != nil).Msg("kafka client ready")

	return &client{
		brokers: cfg.Kafka.Brokers,
		group:   cfg.Kafka.ConsumerGroup,
		dialer:  &kafkaGo.Dialer{Timeout: 10 * time.Second, DualStack: true, SASLMechanism: auth},
		writer:  writer,
	}
}

// SendMessages writes the batch to topic. Keys hash onto partitions, so records
// of one key keep their order.
func (c *client) SendMessages(ctx context.Context, topic string, messages ...Message) error {
	if topic == "" {
		return ErrEmptyTopic
	}

	if len(messages) == 0 {
		return nil
	}

	records := make([]kafkaGo.Message, len(messages))

	for i, message := range messages {
		record, err := message.encode()
		if err != nil {
			return err
		}

		record.Topic = topic
		records[i] = record
	}

	if err := c.writer.WriteMessages(ctx, records...); err != nil {
		return fmt.Errorf("writing %d records to %s: %w", len(records), topic, err)
	}

	log.Debug().Str("topic", topic).Int("records", len(records)).Msg("records written")

	return nil
}

// Consume handles records one by one until ctx ends. A failing handler is
// logged and its offset still committed so one bad record cannot stall the
// partition.
func (c *client) Consume(ctx context.Context, consumerGroup, topic string, handler Handler) error {
	if topic == "" {
		return ErrEmptyTopic
	}

	groupID := c.group
	if consumerGroup != "" {
		groupID = consumerGroup
	}

	reader := kafkaGo.NewReader(kafkaGo.ReaderConfig{
		Brokers:     c.brokers,
		Topic:       topic,
		GroupID:     groupID,
		Dialer:      c.dialer,
		StartOffset: kafkaGo.FirstOffset,
	})

	defer func() {
		if err := reader.Close(); err != nil {
			log.Warn().Err(err).Str("topic", topic).Msg("failed to close kafka reader")
		}
	}()

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}

			log.Error().Err(err).Str("topic", topic).Msg("failed to fetch record")

			continue
		}

		if err := handler(ctx, msg); err != nil {
			log.Error().Err(err).Str("topic", topic).Str("key", string(msg.Key)).Int64("offset", msg.Offset).Msg("record handler failed")
		}

		if err := reader.CommitMessages(ctx, msg); err != nil && ctx.Err() == nil {
			log.Error().Err(err).Str("topic", topic).Int64("offset", msg.Offset).Msg("failed to commit record")
		}
	}
}

func (c *client) Close() error {
	if err := c.writer.Close(); err != nil {
		return fmt.Errorf("closing kafka writer: %w", err)
	}

	return nil
}
