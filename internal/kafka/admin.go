package kafka

import (
	"fmt"
	"log"

	"github.com/IBM/sarama"
)

func EnsureTopicExists(broker []string, topic string) error {
	config := sarama.NewConfig()
	config.Version = sarama.V2_1_0_0

	admin, err := sarama.NewClusterAdmin(broker, config)
	if err != nil {
		return fmt.Errorf("creating kafka admin client: %w", err)
	}
	defer func() {
		if err := admin.Close(); err != nil {
			log.Printf("failed to close kafka admin: %v", err)
		}
	}()

	topics, err := admin.ListTopics()
	if err != nil {
		return fmt.Errorf("listing kafka topics: %w", err)
	}
	if _, exists := topics[topic]; exists {
		log.Printf("kafka: topic %q already exists", topic)
		return nil
	}

	topicDetails := &sarama.TopicDetail{
		NumPartitions:     1,
		ReplicationFactor: 1,
		ConfigEntries: map[string]*string{
			"retention.ms": strPtr("604800000"),
		},
	}

	if err = admin.CreateTopic(topic, topicDetails, false); err != nil {
		return fmt.Errorf("creating kafka topic: %w", err)
	}

	log.Printf("kafka: topic %q created", topic)
	return nil
}

func strPtr(s string) *string {
	return &s
}
