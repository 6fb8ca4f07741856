package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/artisanbay/sellerhub/internal/domain"
)

// Topic returns the bus topic for a notice level, e.g. "notify.success".
func Topic(level domain.NoticeLevel) string {
	return "notify." + string(level)
}

// BusNotifier publishes notices onto the in-process bus, where the UI layer
// (the toast surface) consumes them.
type BusNotifier struct {
	pub      Publisher
	sellerID string
}

// NewBusNotifier creates a notifier scoped to one seller session.
func NewBusNotifier(pub Publisher, sellerID string) *BusNotifier {
	return &BusNotifier{pub: pub, sellerID: sellerID}
}

// Notify implements domain.Notifier.
func (n *BusNotifier) Notify(ctx context.Context, notice domain.Notice) error {
	payload, err := json.Marshal(notice)
	if err != nil {
		return fmt.Errorf("failed to encode notice: %w", err)
	}
	return n.pub.Publish(ctx, Message{
		Topic:    Topic(notice.Level),
		SellerID: n.sellerID,
		Payload:  payload,
	})
}
