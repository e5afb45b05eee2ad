package discordApi

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/hoanglm/portfolio_watch_bot/config"
	"github.com/hoanglm/portfolio_watch_bot/internal/converter/discordConverter"
	"github.com/hoanglm/portfolio_watch_bot/internal/externalApi"
	"github.com/hoanglm/portfolio_watch_bot/internal/model"
	"github.com/hoanglm/portfolio_watch_bot/utils"
)

type DiscordApi struct {
	client     *resty.Client
	webhookUrl string
}

func New(cfg *config.Config) *DiscordApi {
	client := resty.New().
		SetDebug(cfg.API.Debug).
		SetTimeout(cfg.API.Timeout)
	return &DiscordApi{client: client, webhookUrl: cfg.Discord.WebhookUrl}
}

// SendPortfolioAlert posts one summary embed to the webhook. Delivery is best
// effort: the caller logs failures and never retries.
func (a *DiscordApi) SendPortfolioAlert(ctx context.Context, summary model.PortfolioSummary, ts time.Time) error {
	rqID := utils.GetRequestIDFromCtx(ctx)

	slog.Debug("start DiscordApi.SendPortfolioAlert request", slog.String("rqID", rqID))

	payload := discordConverter.PortfolioAlertPayload(summary, ts)

	resp, err := a.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(a.webhookUrl)

	if err != nil {
		slog.Error("error while dialing Discord webhook", slog.String("err", err.Error()), slog.String("rqID", rqID))
		return err
	}

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		slog.Error("Discord webhook returned bad status", slog.Int("status", resp.StatusCode()), slog.String("rqID", rqID))
		return fmt.Errorf("%w: %d", externalApi.ErrBadStatus, resp.StatusCode())
	}

	slog.Debug("DiscordApi.SendPortfolioAlert request complete", slog.String("rqID", rqID))

	return nil
}
