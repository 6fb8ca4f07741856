package database

import (
	"context"
	"fmt"

	"github.com/artisanbay/sellerhub/internal/domain"
	"github.com/surrealdb/surrealdb.go"
)

// SurrealOrderStore persists per-order message slots in SurrealDB.
type SurrealOrderStore struct {
	db     *surrealdb.DB
	ns     string
	dbName string
}

// NewSurrealOrderStore creates a new SurrealOrderStore.
func NewSurrealOrderStore(db *surrealdb.DB, ns, dbName string) *SurrealOrderStore {
	return &SurrealOrderStore{db: db, ns: ns, dbName: dbName}
}

// SaveBuyerMessage overwrites the buyer's latest-message slot on an order.
func (s *SurrealOrderStore) SaveBuyerMessage(ctx context.Context, orderID string, msg domain.OrderMessage) error {
	return s.saveMessage(ctx, orderID, "buyerLatestMessage", msg)
}

// SaveSellerMessage overwrites the seller's latest-message slot on an order.
func (s *SurrealOrderStore) SaveSellerMessage(ctx context.Context, orderID string, msg domain.OrderMessage) error {
	return s.saveMessage(ctx, orderID, "sellerLatestMessage", msg)
}

func (s *SurrealOrderStore) saveMessage(ctx context.Context, orderID, slot string, msg domain.OrderMessage) error {
	if err := s.db.Use(ctx, s.ns, s.dbName); err != nil {
		return fmt.Errorf("failed to set database scope: %w", err)
	}

	query := fmt.Sprintf("UPDATE order MERGE { %s: $message } WHERE orderId = $orderId", slot)
	params := map[string]any{
		"orderId": orderID,
		"message": msg,
	}

	if err := Execute(ctx, s.db, query, params); err != nil {
		return fmt.Errorf("failed to save %s: %w", slot, err)
	}
	return nil
}
