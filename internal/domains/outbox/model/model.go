package model

import (
	"fmt"
	"time"

	"lodgehub/shared/model"
)

const (
	TableName  = "outbox_events"
	EntityName = "outbox_event"

	FieldID          = "id"
	FieldTopic       = "topic"
	FieldCreatedAt   = "created_at"
	FieldPublishedAt = "published_at"
)

// Event is written in the same transaction as the state change it announces
// and relayed to Kafka afterwards.
type Event struct {
	ID          string        `db:"id"`
	Topic       string        `db:"topic"`
	Key         string        `db:"key"`
	Payload     model.RawJSON `db:"payload"`
	CreatedAt   time.Time     `db:"created_at"`
	PublishedAt *time.Time    `db:"published_at"`
}

// BookingBilled asks the cleanup worker to delete the ID proofs of a settled booking.
type BookingBilled struct {
	LodgeID   int64    `json:"lodge_id"`
	BookingID int64    `json:"booking_id"`
	IDProofs  []string `json:"id_proofs"`
}

// Key partitions events of one booking onto the same Kafka partition.
func (b BookingBilled) Key() string {
	return fmt.Sprintf("%d:%d", b.LodgeID, b.BookingID)
}
