package domain

import "context"

// OrderMessage is the latest message on an order thread, one slot per side
// (buyer / seller). New messages overwrite the slot.
type OrderMessage struct {
	Text      string `json:"text" validate:"required"`
	CreatedAt string `json:"createdAt" validate:"required"`
}

// OrderMessageRepository persists the per-order message slots.
type OrderMessageRepository interface {
	SaveBuyerMessage(ctx context.Context, orderID string, msg OrderMessage) error
	SaveSellerMessage(ctx context.Context, orderID string, msg OrderMessage) error
}
