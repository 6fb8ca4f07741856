package database

import (
	"context"
	"fmt"
	"time"

	"github.com/artisanbay/sellerhub/internal/domain"
	"github.com/surrealdb/surrealdb.go"
)

// SurrealSellerStore encapsulates database operations for seller profiles
// using SurrealDB.
type SurrealSellerStore struct {
	db     *surrealdb.DB
	ns     string
	dbName string
	now    func() time.Time
}

// NewSurrealSellerStore creates a new SurrealSellerStore.
func NewSurrealSellerStore(db *surrealdb.DB, ns, dbName string) *SurrealSellerStore {
	return &SurrealSellerStore{db: db, ns: ns, dbName: dbName, now: time.Now}
}

// FindByUID queries for a single seller profile by the seller's auth uid.
// Returns (nil, nil) when no profile exists.
func (s *SurrealSellerStore) FindByUID(ctx context.Context, uid string) (*domain.SellerProfile, error) {
	// Ensure the correct namespace and database are selected for this operation.
	if err := s.db.Use(ctx, s.ns, s.dbName); err != nil {
		return nil, fmt.Errorf("failed to set database scope: %w", err)
	}

	query := "SELECT * FROM seller WHERE uid = $uid"
	params := map[string]any{"uid": uid}

	profile, err := QueryOne[domain.SellerProfile](ctx, s.db, query, params)
	if err != nil {
		return nil, fmt.Errorf("database query failed: %w", err)
	}

	return profile, nil
}

// MergePatch applies a partial update to the persisted profile document.
// The flat patch is converted to the nested document shape so only the
// submitted fields are touched. The updated document is not returned.
func (s *SurrealSellerStore) MergePatch(ctx context.Context, uid string, patch domain.ProfilePatch) error {
	if err := s.db.Use(ctx, s.ns, s.dbName); err != nil {
		return fmt.Errorf("failed to set database scope: %w", err)
	}

	doc := patch.Nested()
	doc["updatedAt"] = s.now().UTC()

	query := "UPDATE seller MERGE $data WHERE uid = $uid"
	params := map[string]any{"uid": uid, "data": doc}

	if err := Execute(ctx, s.db, query, params); err != nil {
		return fmt.Errorf("merge update failed: %w", err)
	}
	return nil
}

// sellerAggregates is the projection returned by the stats query.
type sellerAggregates struct {
	TotalOrders     int     `json:"totalOrders"`
	PendingOrders   int     `json:"pendingOrders"`
	CompletedOrders int     `json:"completedOrders"`
	TotalRevenue    float64 `json:"totalRevenue"`
	TotalProducts   int     `json:"totalProducts"`
	AverageRating   float64 `json:"averageRating"`
	TotalReviews    int     `json:"totalReviews"`
}

// AggregateStats computes the dashboard counters for a seller from the
// denormalized sellerStats block. Growth percentages are fixed placeholders;
// there is no historical series to compute them from.
func (s *SurrealSellerStore) AggregateStats(ctx context.Context, uid string) (*domain.DashboardStats, error) {
	if err := s.db.Use(ctx, s.ns, s.dbName); err != nil {
		return nil, fmt.Errorf("failed to set database scope: %w", err)
	}

	query := `SELECT
		sellerStats.totalOrders AS totalOrders,
		sellerStats.pendingOrders AS pendingOrders,
		sellerStats.completedOrders AS completedOrders,
		sellerStats.totalRevenue AS totalRevenue,
		sellerStats.totalProducts AS totalProducts,
		sellerStats.averageRating AS averageRating,
		sellerStats.totalReviews AS totalReviews
	FROM seller WHERE uid = $uid`
	params := map[string]any{"uid": uid}

	agg, err := QueryOne[sellerAggregates](ctx, s.db, query, params)
	if err != nil {
		return nil, fmt.Errorf("database query failed: %w", err)
	}
	if agg == nil {
		return nil, domain.ErrNotFound
	}

	return &domain.DashboardStats{
		TotalOrders:     agg.TotalOrders,
		PendingOrders:   agg.PendingOrders,
		CompletedOrders: agg.CompletedOrders,
		TotalRevenue:    agg.TotalRevenue,
		TotalProducts:   agg.TotalProducts,
		AverageRating:   agg.AverageRating,
		TotalReviews:    agg.TotalReviews,
		RevenueGrowth:   defaultRevenueGrowth,
		OrdersGrowth:    defaultOrdersGrowth,
		LastUpdated:     s.now().UTC(),
	}, nil
}

// Growth placeholders kept for interface parity with the dashboard UI.
const (
	defaultRevenueGrowth = 12.5
	defaultOrdersGrowth  = 8.2
)
