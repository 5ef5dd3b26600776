package pubsub

import "context"

// MessageHandler processes the raw payload of one received message. Returning
// an error leaves the message unacknowledged for redelivery.
type MessageHandler func(ctx context.Context, data []byte) error

type PubSubClient interface {
	SendMessage(ctx context.Context, topic string, data any) error
	ProcessMessage(data []byte, returnValue any) error
	Receive(ctx context.Context, subscription string, handler MessageHandler) error
	Close() error
}
