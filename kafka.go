package rawtext

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/IBM/sarama"
)

// KafkaSink appends each rendered report as one message to a Kafka topic.
type KafkaSink struct {
	// Topic specifies the topic reports are written to.
	Topic string

	// Brokers is a list of Kafka broker addresses.
	Brokers []string

	// The maximum permitted size of a message (defaults to 1000000). Should
	// be set equal to or smaller than the broker's `message.max.bytes`.
	MaxMessageBytes int

	// The following options control how often messages are batched up and
	// sent to the broker. By default messages are sent as fast as possible,
	// and all messages received while the current batch is in flight are
	// placed into the subsequent batch.
	Flush struct {
		// The best-effort number of bytes needed to trigger a flush.
		Bytes int
		// The best-effort number of messages needed to trigger a flush.
		Messages int
		// The best-effort frequency of flushes.
		Frequency time.Duration
		// The maximum number of messages the producer will send in a single
		// broker request. Defaults to 0 for unlimited.
		MaxMessages int
	}

	Retry struct {
		// The total number of times to retry sending a message (default 3).
		Max int
		// How long to wait for the cluster to settle between retries
		// (default 100ms).
		Backoff time.Duration
	}

	producerOnce sync.Once

	producer sarama.SyncProducer

	lock sync.Mutex
}

var _ Sink = (*KafkaSink)(nil)

func (ks *KafkaSink) WriteReport(_ context.Context, text string) error {
	const op = "rawtext.(KafkaSink).WriteReport"

	var err error
	ks.producerOnce.Do(func() {
		err = ks.initProducer()
	})
	if err != nil {
		return fmt.Errorf("%s: failed to create producer: %w", op, err)
	}

	msg := &sarama.ProducerMessage{
		Topic: ks.Topic,
		Value: sarama.StringEncoder(text),
	}

	if _, _, err := ks.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("%s: failed to send message: %w", op, err)
	}
	return nil
}

// Close shuts down the underlying producer.
func (ks *KafkaSink) Close() error {
	ks.lock.Lock()
	defer ks.lock.Unlock()

	if ks.producer == nil {
		return nil
	}
	err := ks.producer.Close()
	ks.producer = nil
	return err
}

// Reopen recreates the underlying producer.
func (ks *KafkaSink) Reopen() error {
	const op = "rawtext.(KafkaSink).Reopen"

	ks.lock.Lock()
	defer ks.lock.Unlock()

	if ks.producer != nil {
		_ = ks.producer.Close()
	}

	var err error
	ks.producerOnce = sync.Once{}
	ks.producerOnce.Do(func() {
		err = ks.initProducer()
	})
	if err != nil {
		return fmt.Errorf("%s: failed to recreate producer: %w", op, err)
	}
	return nil
}

func (ks *KafkaSink) parseConfig() *sarama.Config {
	config := sarama.NewConfig()

	if ks.MaxMessageBytes > 0 {
		config.Producer.MaxMessageBytes = ks.MaxMessageBytes
	}

	if ks.Flush.Bytes > 0 {
		config.Producer.Flush.Bytes = ks.Flush.Bytes
	}

	if ks.Flush.Messages > 0 {
		config.Producer.Flush.Messages = ks.Flush.Messages
	}

	if ks.Flush.Frequency > 0 {
		config.Producer.Flush.Frequency = ks.Flush.Frequency
	}

	if ks.Flush.MaxMessages > 0 {
		config.Producer.Flush.MaxMessages = ks.Flush.MaxMessages
	}

	if ks.Retry.Max > 0 {
		config.Producer.Retry.Max = ks.Retry.Max
	}

	if ks.Retry.Backoff > 0 {
		config.Producer.Retry.Backoff = ks.Retry.Backoff
	}

	config.Producer.Return.Successes = true
	config.Producer.Return.Errors = true

	return config
}

func (ks *KafkaSink) initProducer() error {
	var err error

	c := ks.parseConfig()
	ks.producer, err = sarama.NewSyncProducer(ks.Brokers, c)

	return err
}
