package repository

import (
	"context"
	"time"

	"InsiderPull/internal/domain/models"
	pkgkafka "InsiderPull/pkg/kafka"
)

// Publisher is the part of the Kafka producer the sink needs.
type Publisher interface {
	Publish(ctx context.Context, topic string, key []byte, value interface{}) error
	PublishBatch(ctx context.Context, topic string, messages []pkgkafka.Message) error
}

// KafkaSnapshotPublisher emits every retained record keyed by stock code,
// then the report keyed by run ID.
type KafkaSnapshotPublisher struct {
	producer     Publisher
	reportTopic  string
	recordsTopic string
}

func NewKafkaSnapshotPublisher(p Publisher, reportTopic, recordsTopic string) *KafkaSnapshotPublisher {
	return &KafkaSnapshotPublisher{producer: p, reportTopic: reportTopic, recordsTopic: recordsTopic}
}

func (k *KafkaSnapshotPublisher) Name() string { return "kafka" }

// RecordEvent is the message body on the records topic.
type RecordEvent struct {
	RunID       string `json:"run_id"`
	CollectedAt string `json:"collected_at"`
	models.Record
}

func (k *KafkaSnapshotPublisher) Save(ctx context.Context, snap *models.Snapshot) error {
	collectedAt := snap.CollectedAt.Format(time.RFC3339)
	msgs := make([]pkgkafka.Message, 0, len(snap.Records))
	for _, r := range snap.Records {
		msgs = append(msgs, pkgkafka.Message{
			Key:   []byte(r.StockCode),
			Value: RecordEvent{RunID: snap.RunID, CollectedAt: collectedAt, Record: r},
		})
	}
	if err := k.producer.PublishBatch(ctx, k.recordsTopic, msgs); err != nil {
		return err
	}
	if snap.Report == nil {
		return nil
	}
	b, err := EncodeReport(snap.Report)
	if err != nil {
		return err
	}
	return k.producer.Publish(ctx, k.reportTopic, []byte(snap.RunID), b)
}
