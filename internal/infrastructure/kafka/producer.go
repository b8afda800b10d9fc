package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/francepatrick/s3-image-uploader/internal/entity"
	"github.com/segmentio/kafka-go"
)

const eventTypeUploaded = "image.uploaded"

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type EventProducer struct {
	w     messageWriter
	topic string
}

// NewEventProducer accepts a *kafka.Writer, typically producer.Producer.Writer.
func NewEventProducer(w messageWriter, topic string) *EventProducer {
	return &EventProducer{w: w, topic: topic}
}

func (ep *EventProducer) SendUploaded(ctx context.Context, event *entity.UploadedEvent) error {
	b, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("EventProducer - SendUploaded - json.Marshal: %w", err)
	}

	msg := kafka.Message{
		Topic: ep.topic,
		Key:   []byte(event.Filename),
		Value: b,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(event.ID.String())},
			{Key: "event_type", Value: []byte(eventTypeUploaded)},
		},
	}

	err = ep.w.WriteMessages(ctx, msg)
	if err != nil {
		return fmt.Errorf("EventProducer - SendUploaded - ep.w.WriteMessages: %w", err)
	}

	return nil
}

func (ep *EventProducer) Close() error {
	err := ep.w.Close()
	if err != nil {
		return fmt.Errorf("EventProducer - Close: %w", err)
	}

	return nil
}
