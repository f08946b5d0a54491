// Package audit publishes field-level change events so external
// consumers (compliance tooling, CMDB sync) can follow the inventory's
// audit trail without polling it.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"server-inventory-dashboard/internal/inventory-service/model"

	"github.com/segmentio/kafka-go"
)

type Publisher interface {
	PublishChanges(ctx context.Context, entries []model.History) error
}

type changeEvent struct {
	ID        string    `json:"id"`
	ServerID  string    `json:"server_id"`
	Field     string    `json:"field"`
	OldValue  string    `json:"old_value"`
	NewValue  string    `json:"new_value"`
	Timestamp time.Time `json:"timestamp"`
	User      string    `json:"user"`
}

type kafkaPublisher struct {
	writer *kafka.Writer
}

// PublishChanges writes one message per history entry, keyed by server
// id so changes to the same server stay ordered within a partition.
func (p *kafkaPublisher) PublishChanges(ctx context.Context, entries []model.History) error {
	if len(entries) == 0 {
		return nil
	}
	messages := make([]kafka.Message, 0, len(entries))
	for _, entry := range entries {
		value, err := json.Marshal(changeEvent{
			ID:        entry.ID,
			ServerID:  entry.ServerID,
			Field:     entry.Field,
			OldValue:  entry.OldValue,
			NewValue:  entry.NewValue,
			Timestamp: entry.Timestamp,
			User:      entry.User,
		})
		if err != nil {
			return fmt.Errorf("KafkaPublisher.PublishChanges: %w", err)
		}
		messages = append(messages, kafka.Message{
			Key:   []byte(entry.ServerID),
			Value: value,
		})
	}
	if err := p.writer.WriteMessages(ctx, messages...); err != nil {
		return fmt.Errorf("KafkaPublisher.PublishChanges: %w", err)
	}
	return nil
}

func NewKafkaPublisher(writer *kafka.Writer) Publisher {
	return &kafkaPublisher{
		writer: writer,
	}
}

type nopPublisher struct{}

func (nopPublisher) PublishChanges(context.Context, []model.History) error {
	return nil
}

// NewNopPublisher is used when no broker is configured.
func NewNopPublisher() Publisher {
	return nopPublisher{}
}
