package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/artisanbay/sellerhub/internal/config"
	"github.com/artisanbay/sellerhub/internal/domain"
	"github.com/artisanbay/sellerhub/internal/gateway"
	"github.com/artisanbay/sellerhub/internal/logging"
	"github.com/artisanbay/sellerhub/internal/notify"
	"github.com/artisanbay/sellerhub/internal/statscache"
	"github.com/artisanbay/sellerhub/internal/store"
	"github.com/spf13/cobra"
)

// envTokenSource reads the bearer credential from SELLER_TOKEN on every
// call, so a rotated token is picked up without restarting.
type envTokenSource struct{}

func (envTokenSource) Token(ctx context.Context) (string, error) {
	token := os.Getenv("SELLER_TOKEN")
	if token == "" {
		return "", fmt.Errorf("SELLER_TOKEN is not set")
	}
	return token, nil
}

// printNotifier writes notices to stderr the way the UI would toast them.
type printNotifier struct{}

func (printNotifier) Notify(ctx context.Context, n domain.Notice) error {
	fmt.Fprintf(os.Stderr, "[%s] %s\n", n.Level, n.Text)
	return nil
}

var profileCmd = &cobra.Command{
	Use:   "profile <uid>",
	Short: "Fetch a seller profile and dashboard stats through the API",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logging.New()
		cfg := config.New()
		uid := args[0]

		gw := gateway.New(cfg.APIBaseURL, envTokenSource{})
		cache := statscache.New(statscache.WithTTL(cfg.StatsTTL))

		bridge := notify.NewWatermillBridge()
		defer bridge.Close()
		notifier := notify.NewBusNotifier(bridge, uid)
		for _, level := range []domain.NoticeLevel{domain.NoticeSuccess, domain.NoticeWarning, domain.NoticeError} {
			if err := bridge.Subscribe(cmd.Context(), notify.Topic(level), func(ctx context.Context, msg notify.Message) error {
				var n domain.Notice
				if err := json.Unmarshal(msg.Payload, &n); err != nil {
					return err
				}
				return printNotifier{}.Notify(ctx, n)
			}); err != nil {
				return fmt.Errorf("failed to subscribe to notices: %w", err)
			}
		}

		s := store.New(gw, cache, notifier)
		if err := s.LoadProfile(cmd.Context(), uid); err != nil {
			return err
		}
		stats := s.RefreshStats(cmd.Context(), uid)

		out := map[string]any{
			"profile": s.Profile(),
			"stats":   stats,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
}
