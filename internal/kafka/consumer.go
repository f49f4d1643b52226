package kafka

import (
	"context"
	"fmt"
	"log"

	"mbg-project/internal/metric"

	"github.com/IBM/sarama"
)

type MessageProcessor func(context.Context, []byte) error

// ActivityConsumer reads activity events back off the topic and hands them to
// a processor (the activity feed service).
type ActivityConsumer struct {
	consumer  sarama.Consumer
	topic     string
	processor MessageProcessor
}

func NewActivityConsumer(broker []string, topic string, processor MessageProcessor) (*ActivityConsumer, error) {
	conf := sarama.NewConfig()
	conf.Consumer.Offsets.Initial = sarama.OffsetNewest

	consumer, err := sarama.NewConsumer(broker, conf)
	if err != nil {
		return nil, fmt.Errorf("creating kafka consumer: %w", err)
	}
	return &ActivityConsumer{consumer: consumer, topic: topic, processor: processor}, nil
}

func (ac *ActivityConsumer) Start(ctx context.Context) error {
	partitionConsumer, err := ac.consumer.ConsumePartition(ac.topic, 0, sarama.OffsetNewest)
	if err != nil {
		return fmt.Errorf("consuming partition: %w", err)
	}
	defer func() {
		if err := partitionConsumer.Close(); err != nil {
			log.Printf("closing partition consumer: %v", err)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			log.Println("kafka consumer stopping...")
			return ctx.Err()
		case message := <-partitionConsumer.Messages():
			if err := ac.processor(ctx, message.Value); err != nil {
				log.Printf("error processing activity message: %v", err)
				metric.KafkaMessagesTotal.WithLabelValues("consume", "error").Inc()
			} else {
				metric.KafkaMessagesTotal.WithLabelValues("consume", "success").Inc()
			}
		}
	}
}

func (ac *ActivityConsumer) Close() error {
	return ac.consumer.Close()
}
