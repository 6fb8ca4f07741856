// Package milestones derives the gamified milestone/bonus display from the
// order counter. The values are presentational only: they are never
// persisted and never reconciled against a payout ledger.
package milestones

// OrdersPerMilestone is the number of completed orders per milestone level.
const OrdersPerMilestone = 150

// BonusPerLevel is the bonus amount (in rupees) awarded per completed level.
const BonusPerLevel = 500

// Progress describes a seller's position in the milestone program.
type Progress struct {
	Level           int `json:"level"`
	OrdersIntoLevel int `json:"ordersIntoLevel"`
	OrdersToNext    int `json:"ordersToNext"`
	Bonus           int `json:"bonus"`
}

// Compute derives milestone progress from the total order count. Negative
// inputs are treated as zero.
func Compute(totalOrders int) Progress {
	if totalOrders < 0 {
		totalOrders = 0
	}
	level := totalOrders / OrdersPerMilestone
	into := totalOrders % OrdersPerMilestone
	return Progress{
		Level:           level,
		OrdersIntoLevel: into,
		OrdersToNext:    OrdersPerMilestone - into,
		Bonus:           level * BonusPerLevel,
	}
}
