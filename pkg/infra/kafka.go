package infra

import "github.com/segmentio/kafka-go"

// NewKafkaWriter hashes messages by key so all audit events for one
// server land in the same partition, preserving their order.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}
}
