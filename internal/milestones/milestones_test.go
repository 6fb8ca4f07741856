package milestones

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name        string
		totalOrders int
		want        Progress
	}{
		{
			name:        "zero orders",
			totalOrders: 0,
			want:        Progress{Level: 0, OrdersIntoLevel: 0, OrdersToNext: 150, Bonus: 0},
		},
		{
			name:        "mid first level",
			totalOrders: 75,
			want:        Progress{Level: 0, OrdersIntoLevel: 75, OrdersToNext: 75, Bonus: 0},
		},
		{
			name:        "exactly one level",
			totalOrders: 150,
			want:        Progress{Level: 1, OrdersIntoLevel: 0, OrdersToNext: 150, Bonus: 500},
		},
		{
			name:        "three levels in",
			totalOrders: 450,
			want:        Progress{Level: 3, OrdersIntoLevel: 0, OrdersToNext: 150, Bonus: 1500},
		},
		{
			name:        "partway through the fourth level",
			totalOrders: 460,
			want:        Progress{Level: 3, OrdersIntoLevel: 10, OrdersToNext: 140, Bonus: 1500},
		},
		{
			name:        "negative counter is treated as zero",
			totalOrders: -5,
			want:        Progress{Level: 0, OrdersIntoLevel: 0, OrdersToNext: 150, Bonus: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compute(tt.totalOrders))
		})
	}
}
