package vciApi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hoanglm/portfolio_watch_bot/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApi(t *testing.T, handler http.HandlerFunc) *VciApi {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.API.Timeout = 2 * time.Second
	cfg.API.VciApi.Url = server.URL

	return New(cfg)
}

func TestGetPriceBoard(t *testing.T) {
	api := newTestApi(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/price-board", r.URL.Path)
		assert.Equal(t, "MBB,HPG", r.URL.Query().Get("symbols"))
		w.Write([]byte(`{"data": [
			{"listing": {"symbol": "MBB", "refPrice": 25.9}, "match": {"matchPrice": 26.1, "openPrice": 25.95}},
			{"listing": {"symbol": "HPG", "refPrice": 24.8}, "match": {"matchPrice": 24.5, "openPrice": 24.9}}
		]}`))
	})

	res, err := api.GetPriceBoard(context.Background(), []string{"MBB", "HPG"})
	require.NoError(t, err)
	require.Len(t, res, 2)

	assert.Equal(t, "26.1", res["MBB"].Price.String())
	assert.Equal(t, "25.9", res["MBB"].RefPrice.String())
	assert.Equal(t, "24.5", res["HPG"].Price.String())
}

func TestGetPriceBoardFallbackChain(t *testing.T) {
	api := newTestApi(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"data": [
			{"listing": {"symbol": "OPN", "refPrice": 10.0}, "match": {"matchPrice": 0, "openPrice": 10.2}},
			{"listing": {"symbol": "REF", "refPrice": 9.5}, "match": {"matchPrice": 0, "openPrice": 0}}
		]}`))
	})

	res, err := api.GetPriceBoard(context.Background(), []string{"OPN", "REF"})
	require.NoError(t, err)

	// no match yet: open price, then reference price
	assert.Equal(t, "10.2", res["OPN"].Price.String())
	assert.Equal(t, "9.5", res["REF"].Price.String())
	assert.Equal(t, "9.5", res["REF"].RefPrice.String())
}

func TestGetPriceBoardBadStatus(t *testing.T) {
	api := newTestApi(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := api.GetPriceBoard(context.Background(), []string{"MBB"})
	assert.Error(t, err)
}

func TestGetPriceBoardMalformedBody(t *testing.T) {
	api := newTestApi(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`<html>maintenance</html>`))
	})

	_, err := api.GetPriceBoard(context.Background(), []string{"MBB"})
	assert.Error(t, err)
}

func TestGetPriceBoardSkipsRowsWithoutSymbol(t *testing.T) {
	api := newTestApi(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"data": [
			{"listing": {"symbol": "", "refPrice": 1}, "match": {"matchPrice": 1, "openPrice": 1}},
			{"listing": {"symbol": "MBB", "refPrice": 25.9}, "match": {"matchPrice": 26.1, "openPrice": 0}}
		]}`))
	})

	res, err := api.GetPriceBoard(context.Background(), []string{"MBB"})
	require.NoError(t, err)
	assert.Len(t, res, 1)
}
