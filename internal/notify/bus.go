package notify

import "context"

// Message is the structure passed between components on the notification bus.
type Message struct {
	// Topic identifies the channel the message belongs to (e.g., "notify.success").
	Topic string
	// SellerID identifies the seller session the notice belongs to.
	SellerID string
	// Payload contains the JSON-encoded notice.
	Payload []byte
	// Metadata can contain arbitrary key-value pairs for context.
	Metadata map[string]string
}

// Handler defines the function signature for processing a received message.
type Handler func(ctx context.Context, msg Message) error

// Publisher defines the contract for sending messages to the bus.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// Subscriber defines the contract for receiving messages from the bus.
type Subscriber interface {
	// Subscribe starts listening to the given topic, processing messages
	// with the handler. The subscription runs until the context is canceled.
	Subscribe(ctx context.Context, topic string, handler Handler) error
	Close() error
}
