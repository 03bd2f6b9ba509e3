package event

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"

	"layover-os/internal/amenity"
	"layover-os/pkg/log"
)

// Consumer applies amenity status events to the index.
type Consumer struct {
	l   log.Logger
	uc  amenity.UseCase
	sub message.Subscriber
}

func New(l log.Logger, uc amenity.UseCase, sub message.Subscriber) *Consumer {
	return &Consumer{l: l, uc: uc, sub: sub}
}

// Consume subscribes to the status topic and processes messages until ctx is done.
// It returns once the subscription is established.
func (c *Consumer) Consume(ctx context.Context) error {
	messages, err := c.sub.Subscribe(ctx, amenity.TopicStatusUpdated)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			c.handle(ctx, msg)
		}
	}()

	return nil
}

func (c *Consumer) handle(ctx context.Context, msg *message.Message) {
	var in amenity.StatusUpdate
	if err := json.Unmarshal(msg.Payload, &in); err != nil {
		c.l.Errorf(ctx, "internal.amenity.delivery.event.handle: invalid payload %s: %v", msg.UUID, err)
		msg.Ack()
		return
	}

	if err := c.uc.UpdateStatus(ctx, in); err != nil {
		switch err {
		case amenity.ErrMissingID, amenity.ErrInvalidWait:
			c.l.Warnf(ctx, "internal.amenity.delivery.event.handle: dropping %s: %v", msg.UUID, err)
			msg.Ack()
		default:
			c.l.Errorf(ctx, "internal.amenity.delivery.event.handle: %s: %v", msg.UUID, err)
			msg.Nack()
		}
		return
	}

	msg.Ack()
}
