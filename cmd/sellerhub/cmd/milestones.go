package cmd

import (
	"fmt"
	"strconv"

	"github.com/artisanbay/sellerhub/internal/milestones"
	"github.com/spf13/cobra"
)

var milestonesCmd = &cobra.Command{
	Use:   "milestones <totalOrders>",
	Short: "Show milestone progress for an order count",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		total, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("totalOrders must be an integer: %w", err)
		}

		p := milestones.Compute(total)
		fmt.Printf("Level:           %d\n", p.Level)
		fmt.Printf("Orders in level: %d\n", p.OrdersIntoLevel)
		fmt.Printf("Orders to next:  %d\n", p.OrdersToNext)
		fmt.Printf("Bonus earned:    ₹%d\n", p.Bonus)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(milestonesCmd)
}
