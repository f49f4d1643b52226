package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"mbg-project/internal/metric"
	"mbg-project/internal/models"

	"github.com/IBM/sarama"
)

// ActivityProducer publishes dashboard activity events (new payment, new
// product, ...) so the activity feed can be assembled by the consumer side.
type ActivityProducer struct {
	producer sarama.SyncProducer
	topic    string
}

func NewActivityProducer(broker []string, topic string) (*ActivityProducer, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll

	producer, err := sarama.NewSyncProducer(broker, config)
	if err != nil {
		return nil, fmt.Errorf("creating kafka producer: %w", err)
	}
	return &ActivityProducer{
		producer: producer,
		topic:    topic,
	}, nil
}

func (pr *ActivityProducer) Publish(_ context.Context, event models.ActivityEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encoding activity event: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic: pr.topic,
		Value: sarama.ByteEncoder(data),
	}

	if _, _, err := pr.producer.SendMessage(message); err != nil {
		metric.KafkaMessagesTotal.WithLabelValues("produce", "error").Inc()
		return fmt.Errorf("sending activity event: %w", err)
	}
	metric.KafkaMessagesTotal.WithLabelValues("produce", "success").Inc()
	return nil
}

func (pr *ActivityProducer) Close() error {
	return pr.producer.Close()
}
