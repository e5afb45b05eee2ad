package fmarketApi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/go-resty/resty/v2"
	"github.com/hoanglm/portfolio_watch_bot/config"
	"github.com/hoanglm/portfolio_watch_bot/internal/externalApi"
	"github.com/hoanglm/portfolio_watch_bot/internal/model"
	"github.com/hoanglm/portfolio_watch_bot/internal/model/fmarketModel"
	"github.com/hoanglm/portfolio_watch_bot/utils"
)

type FmarketApi struct {
	client *resty.Client
}

func New(cfg *config.Config) *FmarketApi {
	client := resty.New().
		SetDebug(cfg.API.Debug).
		SetTimeout(cfg.API.Timeout).
		SetBaseURL(cfg.API.FmarketApi.Url)
	return &FmarketApi{client: client}
}

// GetFundListing fetches the full fund listing. The provider reports each
// fund's NAV and its change since the previous session, so the reference
// price is derived as NAV - change.
func (a *FmarketApi) GetFundListing(ctx context.Context) (map[string]model.Valuation, error) {
	rqID := utils.GetRequestIDFromCtx(ctx)
	url := "/products/filter"
	body := map[string]any{
		"types":    []string{"TRADING_FUND"},
		"page":     1,
		"pageSize": 1000,
	}

	slog.Debug("start FmarketApi.GetFundListing request", slog.String("rqID", rqID))

	resp, err := a.client.R().
		SetHeader("Accept", "application/json").
		SetBody(body).
		Post(url)

	if err != nil {
		slog.Error("error while dialing FmarketApi", slog.String("err", err.Error()), slog.String("rqID", rqID))
		return nil, err
	}

	if resp.StatusCode() != 200 {
		slog.Error("FmarketApi returned bad status", slog.Int("status", resp.StatusCode()), slog.String("rqID", rqID))
		return nil, fmt.Errorf("%w: %d", externalApi.ErrBadStatus, resp.StatusCode())
	}

	rawListing := fmarketModel.RawFundListing{}
	err = json.Unmarshal(resp.Body(), &rawListing)
	if err != nil {
		slog.Error("can't unmarshall response into fmarketModel.RawFundListing", slog.String("err", err.Error()), slog.String("rqID", rqID))
		return nil, err
	}

	res := a.parseRawFundListing(rawListing)

	slog.Debug("FmarketApi.GetFundListing request complete", slog.String("rqID", rqID), slog.Int("funds", len(res)))

	return res, nil
}

func (a *FmarketApi) parseRawFundListing(raw fmarketModel.RawFundListing) map[string]model.Valuation {
	res := make(map[string]model.Valuation, len(raw.Data.Rows))

	for _, row := range raw.Data.Rows {
		if row.ShortName == "" {
			continue
		}

		res[row.ShortName] = model.Valuation{
			Price:    row.Nav,
			RefPrice: row.Nav.Sub(row.NavChangePrevious),
		}
	}

	return res
}
