package discordConverter

import (
	"fmt"
	"time"

	"github.com/hoanglm/portfolio_watch_bot/internal/model"
	"github.com/hoanglm/portfolio_watch_bot/internal/model/discordModel"
	"github.com/hoanglm/portfolio_watch_bot/utils"
)

const footerTimeLayout = "15:04 02/01/2006"

// PortfolioAlertPayload builds the webhook embed for one portfolio summary.
// Color follows the aggregate day P&L: green for non-negative, red otherwise.
// The footer timestamp is rendered in the trading timezone of ts.
func PortfolioAlertPayload(summary model.PortfolioSummary, ts time.Time) discordModel.WebhookPayload {
	color := discordModel.ColorGreen
	if summary.Total.DailyPnl.IsNegative() {
		color = discordModel.ColorRed
	}

	embed := discordModel.Embed{
		Title:       "🚀 Portfolio Daily",
		Description: fmt.Sprintf("Day: %s", utils.FormatPnl(summary.Equity.DailyPnl, summary.Equity.DailyPnlPercent)),
		Color:       color,
		Fields: []discordModel.EmbedField{
			{
				Name:   "🏢 Stocks (Chứng khoán)",
				Value:  classFieldValue(summary.Equity),
				Inline: true,
			},
			{
				Name:   "💰 Funds (Chứng chỉ quỹ)",
				Value:  classFieldValue(summary.Fund),
				Inline: true,
			},
			{
				Name:   "",
				Value:  "-----------------------------------",
				Inline: false,
			},
			{
				Name:   "🏆 Grand Total",
				Value:  classFieldValue(summary.Total),
				Inline: false,
			},
		},
		Footer: discordModel.EmbedFooter{
			Text: fmt.Sprintf("Updated at %s", ts.Format(footerTimeLayout)),
		},
	}

	return discordModel.WebhookPayload{Embeds: []discordModel.Embed{embed}}
}

func classFieldValue(s model.ClassSummary) string {
	return fmt.Sprintf("Total: %s\nDay: %s",
		utils.FormatPnl(s.Pnl, s.PnlPercent),
		utils.FormatPnl(s.DailyPnl, s.DailyPnlPercent),
	)
}
