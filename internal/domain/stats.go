package domain

import "time"

// DashboardStats is a denormalized snapshot of the seller's aggregate
// counters. It is derived, never authoritative: every successful fetch
// replaces it wholesale, and on fetch failure a stale copy or a zeroed
// placeholder is substituted.
type DashboardStats struct {
	TotalOrders     int       `json:"totalOrders"`
	PendingOrders   int       `json:"pendingOrders"`
	CompletedOrders int       `json:"completedOrders"`
	TotalRevenue    float64   `json:"totalRevenue"`
	TotalProducts   int       `json:"totalProducts"`
	AverageRating   float64   `json:"averageRating"`
	TotalReviews    int       `json:"totalReviews"`
	RevenueGrowth   float64   `json:"revenueGrowth"`
	OrdersGrowth    float64   `json:"ordersGrowth"`
	LastUpdated     time.Time `json:"lastUpdated"`

	// Cached marks a stale-but-usable copy returned after a failed refresh.
	Cached bool `json:"cached"`
	// IsMockData marks the zeroed placeholder installed when no usable
	// cache exists after a failed refresh.
	IsMockData bool `json:"isMockData"`
}

// ZeroDashboardStats returns the degraded placeholder shown when a refresh
// fails and no usable cached copy exists.
func ZeroDashboardStats(now time.Time) *DashboardStats {
	return &DashboardStats{
		LastUpdated: now,
		IsMockData:  true,
	}
}
