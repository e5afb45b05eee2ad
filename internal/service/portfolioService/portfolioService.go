package portfolioService

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/hoanglm/portfolio_watch_bot/config"
	"github.com/hoanglm/portfolio_watch_bot/internal/marketdata"
	"github.com/hoanglm/portfolio_watch_bot/internal/model"
	"github.com/hoanglm/portfolio_watch_bot/utils"
	"github.com/shopspring/decimal"
)

type MarketData interface {
	FetchValuations(ctx context.Context, equitySymbols []string) (equity, fund marketdata.SourceResult)
}

type AlertApi interface {
	SendPortfolioAlert(ctx context.Context, summary model.PortfolioSummary, ts time.Time) error
}

type PortfolioService struct {
	cfg           *config.Config
	portfolio     model.Portfolio
	equitySymbols []string
	marketData    MarketData
	alertApi      AlertApi
	loc           *time.Location
}

func New(cfg *config.Config, portfolio model.Portfolio, marketData MarketData, alertApi AlertApi, loc *time.Location) *PortfolioService {
	return &PortfolioService{
		cfg:           cfg,
		portfolio:     portfolio,
		equitySymbols: portfolio.EquitySymbols(),
		marketData:    marketData,
		alertApi:      alertApi,
		loc:           loc,
	}
}

// RunCycle executes one full polling cycle: fetch both sources, aggregate,
// print the console summary, then dispatch the alert unless the current
// time-of-day falls in a blackout window. Fetch and dispatch failures are
// absorbed here; the next cycle's scheduling is never affected.
func (s *PortfolioService) RunCycle(ctx context.Context, now time.Time) {
	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "PortfolioService.RunCycle"

	slog.Debug("RunCycle start", slog.String("rqID", rqID), slog.String("op", op))
	defer func() {
		slog.Debug("RunCycle finished", slog.String("rqID", rqID), slog.String("op", op))
	}()

	summary := s.snapshot(ctx)

	fmt.Println(RenderSummary(summary, now))

	tod := model.TimeOfDayFromTime(now)
	if model.InBlackout(tod, s.cfg.Schedule.BlackoutWindows) {
		slog.Info("notification suppressed during blackout window",
			slog.String("rqID", rqID), slog.String("op", op), slog.String("timeOfDay", tod.String()))
		return
	}

	s.dispatch(ctx, summary, now)
}

// RunRecap dispatches the end-of-day summary, bypassing blackout windows:
// they model mid-session quiet periods and the recap fires after close.
func (s *PortfolioService) RunRecap(ctx context.Context) error {
	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "PortfolioService.RunRecap"

	slog.Debug("RunRecap start", slog.String("rqID", rqID), slog.String("op", op))

	now := time.Now().In(s.loc)
	summary := s.snapshot(ctx)

	fmt.Println(RenderSummary(summary, now))

	s.dispatch(ctx, summary, now)
	return nil
}

func (s *PortfolioService) snapshot(ctx context.Context) model.PortfolioSummary {
	equity, fund := s.marketData.FetchValuations(ctx, s.equitySymbols)
	return Aggregate(s.portfolio, equity.Valuations, fund.Valuations)
}

func (s *PortfolioService) dispatch(ctx context.Context, summary model.PortfolioSummary, now time.Time) {
	rqID := utils.GetRequestIDFromCtx(ctx)

	if err := s.alertApi.SendPortfolioAlert(ctx, summary, now); err != nil {
		slog.Error("alert dispatch failed", slog.String("rqID", rqID), slog.String("err", err.Error()))
		return
	}

	slog.Info("alert dispatched", slog.String("rqID", rqID))
}

// Aggregate folds the portfolio over this tick's valuations into the
// three-tier summary. A holding with no valuation record contributes nothing
// to any bucket. Total is accumulated alongside the class buckets, never by
// summing the summaries afterwards. Pure: no I/O, no time dependency.
func Aggregate(portfolio model.Portfolio, equity, fund map[string]model.Valuation) model.PortfolioSummary {
	summary := model.PortfolioSummary{}

	for symbol, holding := range portfolio {
		var valuation model.Valuation
		var ok bool

		switch holding.Class {
		case model.AssetClassEquity:
			valuation, ok = equity[symbol]
		case model.AssetClassFund:
			valuation, ok = fund[symbol]
		}

		if !ok {
			continue
		}

		cost := holding.Quantity.Mul(holding.AvgPrice)
		value := holding.Quantity.Mul(valuation.Price)
		pnl := value.Sub(cost)
		dailyPnl := valuation.Price.Sub(valuation.RefPrice).Mul(holding.Quantity)

		bucket := &summary.Equity
		if holding.Class == model.AssetClassFund {
			bucket = &summary.Fund
		}

		accumulate(bucket, cost, value, pnl, dailyPnl)
		accumulate(&summary.Total, cost, value, pnl, dailyPnl)
	}

	finalizePercents(&summary.Equity)
	finalizePercents(&summary.Fund)
	finalizePercents(&summary.Total)

	return summary
}

func accumulate(bucket *model.ClassSummary, cost, value, pnl, dailyPnl decimal.Decimal) {
	bucket.Cost = bucket.Cost.Add(cost)
	bucket.Value = bucket.Value.Add(value)
	bucket.Pnl = bucket.Pnl.Add(pnl)
	bucket.DailyPnl = bucket.DailyPnl.Add(dailyPnl)
}

var hundred = decimal.NewFromInt(100)

func finalizePercents(bucket *model.ClassSummary) {
	if bucket.Cost.IsPositive() {
		bucket.PnlPercent = bucket.Pnl.Div(bucket.Cost).Mul(hundred)
	}

	// The daily base is yesterday's market value: today's value minus
	// today's change. The day percentage is relative to that base, not to
	// today's value.
	dailyBase := bucket.Value.Sub(bucket.DailyPnl)
	if dailyBase.IsPositive() {
		bucket.DailyPnlPercent = bucket.DailyPnl.Div(dailyBase).Mul(hundred)
	}
}

// RenderSummary builds the human-readable console report for one cycle.
func RenderSummary(summary model.PortfolioSummary, now time.Time) string {
	var sb strings.Builder

	line := strings.Repeat("=", 50)
	sb.WriteString("\n" + line + "\n")
	sb.WriteString(fmt.Sprintf("📈 PORTFOLIO UPDATE (%s)\n", now.Format("15:04 02/01/2006")))
	sb.WriteString(line + "\n")
	sb.WriteString(fmt.Sprintf("Total Value: %s VND\n", utils.FormatMoney(summary.Total.Value)))
	sb.WriteString(strings.Repeat("-", 50) + "\n")

	writeBucket := func(name string, b model.ClassSummary) {
		sb.WriteString(name + ":\n")
		sb.WriteString(fmt.Sprintf("   Day:   %s (%.2f%%)\n", utils.FormatMoney(b.DailyPnl), b.DailyPnlPercent.InexactFloat64()))
		sb.WriteString(fmt.Sprintf("   Total: %s (%.2f%%)\n", utils.FormatMoney(b.Pnl), b.PnlPercent.InexactFloat64()))
	}

	writeBucket("STOCKS", summary.Equity)
	writeBucket("FUNDS", summary.Fund)
	sb.WriteString(strings.Repeat("-", 50) + "\n")
	writeBucket("GRAND TOTAL", summary.Total)
	sb.WriteString(line)

	return sb.String()
}
