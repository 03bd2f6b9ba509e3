package event

import (
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// NewPubSub creates the in-process event bus shared by publishers and consumers
// living in the same binary.
func NewPubSub() *gochannel.GoChannel {
	return gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		watermill.NewStdLogger(false, false),
	)
}

// PublishJSON marshals v and publishes it on topic with a fresh message id.
func PublishJSON(pub message.Publisher, topic string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("event.PublishJSON: marshal: %w", err)
	}

	msg := message.NewMessage(uuid.NewString(), payload)
	if err := pub.Publish(topic, msg); err != nil {
		return fmt.Errorf("event.PublishJSON: publish %s: %w", topic, err)
	}
	return nil
}
