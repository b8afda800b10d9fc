package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/francepatrick/s3-image-uploader/internal/entity"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)

	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true

	return nil
}

func TestSendUploaded(t *testing.T) {
	w := &fakeWriter{}
	ep := NewEventProducer(w, "images.uploaded")

	event := &entity.UploadedEvent{
		ID:        uuid.New(),
		Filename:  "abc.jpeg",
		Original:  "https://bucket/original-abc.jpeg",
		Resized:   "https://bucket/resized-abc.jpeg",
		Thumbnail: "https://bucket/thumbnail-abc.jpeg",
		CreatedAt: time.Now().UTC(),
	}

	require.NoError(t, ep.SendUploaded(context.Background(), event))
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, "images.uploaded", msg.Topic)
	assert.Equal(t, "abc.jpeg", string(msg.Key))
	assert.Equal(t, []kafka.Header{
		{Key: "event_id", Value: []byte(event.ID.String())},
		{Key: "event_type", Value: []byte("image.uploaded")},
	}, msg.Headers)

	var got entity.UploadedEvent
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	assert.Equal(t, event.Resized, got.Resized)
	assert.Equal(t, event.ID, got.ID)
}

func TestSendUploadedWriteError(t *testing.T) {
	w := &fakeWriter{err: errors.New("broker down")}
	ep := NewEventProducer(w, "t")

	err := ep.SendUploaded(context.Background(), &entity.UploadedEvent{ID: uuid.New()})
	assert.ErrorContains(t, err, "broker down")

	require.NoError(t, ep.Close())
	assert.True(t, w.closed)
}
