package bootstrap

import (
	"context"
	"log/slog"

	"quinta-booking/internal/infra/intelligence"
	"quinta-booking/internal/pkg/config"
	"quinta-booking/internal/usecase"

	"go.uber.org/fx"
)

var AssistantModule = fx.Module("assistant",
	fx.Provide(
		NewChatClient,
	),
)

// NewChatClient returns a nil client when no API key is configured; the
// assistant then serves canned answers instead of failing requests.
func NewChatClient(lc fx.Lifecycle, cfg config.Config) (usecase.ChatClient, error) {
	if cfg.Assistant.APIKey == "" {
		slog.Info("assistant API key not configured, using canned answers")
		return nil, nil
	}

	client, cleanup, err := intelligence.NewGeminiClient(context.Background(), cfg.Assistant.APIKey, cfg.Assistant.Model)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return client, nil
}
