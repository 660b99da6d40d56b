package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"ChartGrader/internal/model"

	"github.com/IBM/sarama"
)

// Publisher announces graded charts.
type Publisher interface {
	PublishAnalysis(ctx context.Context, rec *model.AnalysisRecord) error
	Close() error
}

// KafkaPublisher writes analysis events to a Kafka topic, keyed by symbol.
type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewKafkaPublisher connects a synchronous producer to the brokers.
func NewKafkaPublisher(brokers []string, topic string) (*KafkaPublisher, error) {
	config := sarama.NewConfig()
	config.Version = sarama.V2_8_0_0
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 3
	config.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}
	log.Printf("[INFO] kafka publisher ready: topic=%s brokers=%v", topic, brokers)
	return NewKafkaPublisherWithProducer(producer, topic), nil
}

// NewKafkaPublisherWithProducer wraps an existing producer.
func NewKafkaPublisherWithProducer(producer sarama.SyncProducer, topic string) *KafkaPublisher {
	return &KafkaPublisher{producer: producer, topic: topic}
}

func (p *KafkaPublisher) PublishAnalysis(ctx context.Context, rec *model.AnalysisRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	payload, err := json.Marshal(NewAnalysisEvent(rec))
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(EventAnalysisGraded)},
		},
	}
	if rec.Symbol != "" {
		msg.Key = sarama.StringEncoder(rec.Symbol)
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("publish analysis %s: %w", rec.ID, err)
	}
	log.Printf("[INFO] published analysis %s (grade %s) to %s[%d]@%d",
		rec.ID, rec.Result.Grade, p.topic, partition, offset)
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}

// NoopPublisher is used when no brokers are configured.
type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher { return &NoopPublisher{} }

func (NoopPublisher) PublishAnalysis(_ context.Context, _ *model.AnalysisRecord) error { return nil }
func (NoopPublisher) Close() error                                                     { return nil }
