package vciApi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/hoanglm/portfolio_watch_bot/config"
	"github.com/hoanglm/portfolio_watch_bot/internal/externalApi"
	"github.com/hoanglm/portfolio_watch_bot/internal/model"
	"github.com/hoanglm/portfolio_watch_bot/internal/model/vciModel"
	"github.com/hoanglm/portfolio_watch_bot/utils"
)

type VciApi struct {
	client *resty.Client
}

func New(cfg *config.Config) *VciApi {
	client := resty.New().
		SetDebug(cfg.API.Debug).
		SetTimeout(cfg.API.Timeout).
		SetBaseURL(cfg.API.VciApi.Url)
	return &VciApi{client: client}
}

// GetPriceBoard fetches the price board for the given symbols and returns one
// valuation per symbol present on the board. The current price falls back
// match price -> open price -> reference price: near market open a symbol may
// not have traded yet and its match price is zero, which must not be reported
// as a zero valuation.
func (a *VciApi) GetPriceBoard(ctx context.Context, symbols []string) (map[string]model.Valuation, error) {
	rqID := utils.GetRequestIDFromCtx(ctx)
	url := "/price-board"
	params := map[string]string{
		"symbols": strings.Join(symbols, ","),
	}

	slog.Debug("start VciApi.GetPriceBoard request", slog.String("rqID", rqID))

	resp, err := a.client.R().
		SetHeader("Accept", "application/json").
		SetQueryParams(params).
		Get(url)

	if err != nil {
		slog.Error("error while dialing VciApi", slog.String("err", err.Error()), slog.String("rqID", rqID))
		return nil, err
	}

	if resp.StatusCode() != 200 {
		slog.Error("VciApi returned bad status", slog.Int("status", resp.StatusCode()), slog.String("rqID", rqID))
		return nil, fmt.Errorf("%w: %d", externalApi.ErrBadStatus, resp.StatusCode())
	}

	rawPriceBoard := vciModel.RawPriceBoard{}
	err = json.Unmarshal(resp.Body(), &rawPriceBoard)
	if err != nil {
		slog.Error("can't unmarshall response into vciModel.RawPriceBoard", slog.String("err", err.Error()), slog.String("rqID", rqID))
		return nil, err
	}

	res := a.parseRawPriceBoard(rawPriceBoard)

	slog.Debug("VciApi.GetPriceBoard request complete", slog.String("rqID", rqID), slog.Int("symbols", len(res)))

	return res, nil
}

func (a *VciApi) parseRawPriceBoard(raw vciModel.RawPriceBoard) map[string]model.Valuation {
	res := make(map[string]model.Valuation, len(raw.Data))

	for _, row := range raw.Data {
		if row.Listing.Symbol == "" {
			continue
		}

		price := row.Match.MatchPrice
		if price.IsZero() {
			price = row.Match.OpenPrice
		}
		if price.IsZero() {
			price = row.Listing.RefPrice
		}

		res[row.Listing.Symbol] = model.Valuation{
			Price:    price,
			RefPrice: row.Listing.RefPrice,
		}
	}

	return res
}
