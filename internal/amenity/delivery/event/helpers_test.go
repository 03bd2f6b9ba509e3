package event

import (
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

func newRawMessage(payload string) *message.Message {
	return message.NewMessage(uuid.NewString(), []byte(payload))
}
