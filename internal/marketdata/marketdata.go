package marketdata

import (
	"context"
	"log/slog"
	"sync"

	"github.com/hoanglm/portfolio_watch_bot/internal/model"
	"github.com/hoanglm/portfolio_watch_bot/utils"
)

type EquityApi interface {
	GetPriceBoard(ctx context.Context, symbols []string) (map[string]model.Valuation, error)
}

type FundApi interface {
	GetFundListing(ctx context.Context) (map[string]model.Valuation, error)
}

type SourceStatus string

const (
	SourceStatusOK          SourceStatus = "ok"
	SourceStatusEmpty       SourceStatus = "empty"
	SourceStatusUnavailable SourceStatus = "unavailable"
)

// SourceResult is one source's outcome for a tick. Unavailable means the
// source failed and its holdings are excluded from this tick; Empty means the
// source answered but listed nothing. Valuations is never nil.
type SourceResult struct {
	Valuations map[string]model.Valuation
	Status     SourceStatus
}

// Provider normalizes the two independent data sources into uniform
// per-symbol valuations. A source failure degrades to an empty result for
// that source only; no error ever escapes this boundary.
type Provider struct {
	equityApi EquityApi
	fundApi   FundApi
}

func New(equityApi EquityApi, fundApi FundApi) *Provider {
	return &Provider{equityApi: equityApi, fundApi: fundApi}
}

// FetchValuations fetches both sources concurrently. Both results are
// available when it returns; a failure in one does not block or invalidate
// the other.
func (p *Provider) FetchValuations(ctx context.Context, equitySymbols []string) (equity, fund SourceResult) {
	rqID := utils.GetRequestIDFromCtx(ctx)

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		if len(equitySymbols) == 0 {
			equity = SourceResult{Valuations: map[string]model.Valuation{}, Status: SourceStatusEmpty}
			return
		}
		equity = p.resolve(rqID, "equity", func() (map[string]model.Valuation, error) {
			return p.equityApi.GetPriceBoard(ctx, equitySymbols)
		})
	}()

	go func() {
		defer wg.Done()
		fund = p.resolve(rqID, "fund", func() (map[string]model.Valuation, error) {
			return p.fundApi.GetFundListing(ctx)
		})
	}()

	wg.Wait()
	return equity, fund
}

func (p *Provider) resolve(rqID, source string, fetch func() (map[string]model.Valuation, error)) SourceResult {
	valuations, err := fetch()
	if err != nil {
		slog.Error("valuation source unavailable, excluding from this tick",
			slog.String("rqID", rqID), slog.String("source", source), slog.String("err", err.Error()))
		return SourceResult{Valuations: map[string]model.Valuation{}, Status: SourceStatusUnavailable}
	}

	if len(valuations) == 0 {
		slog.Warn("valuation source returned no data",
			slog.String("rqID", rqID), slog.String("source", source))
		return SourceResult{Valuations: map[string]model.Valuation{}, Status: SourceStatusEmpty}
	}

	return SourceResult{Valuations: valuations, Status: SourceStatusOK}
}
