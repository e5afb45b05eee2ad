package marketdata

import (
	"context"
	"errors"
	"testing"

	"github.com/hoanglm/portfolio_watch_bot/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEquityApi struct {
	valuations map[string]model.Valuation
	err        error
}

func (s stubEquityApi) GetPriceBoard(_ context.Context, _ []string) (map[string]model.Valuation, error) {
	return s.valuations, s.err
}

type stubFundApi struct {
	valuations map[string]model.Valuation
	err        error
}

func (s stubFundApi) GetFundListing(_ context.Context) (map[string]model.Valuation, error) {
	return s.valuations, s.err
}

func TestFetchValuationsBothOK(t *testing.T) {
	equityVals := map[string]model.Valuation{"MBB": {Price: decimal.NewFromInt(26)}}
	fundVals := map[string]model.Valuation{"VMEEF": {Price: decimal.NewFromInt(15)}}

	p := New(stubEquityApi{valuations: equityVals}, stubFundApi{valuations: fundVals})

	equity, fund := p.FetchValuations(context.Background(), []string{"MBB"})

	assert.Equal(t, SourceStatusOK, equity.Status)
	assert.Equal(t, equityVals, equity.Valuations)
	assert.Equal(t, SourceStatusOK, fund.Status)
	assert.Equal(t, fundVals, fund.Valuations)
}

func TestFetchValuationsFailedSourceDegradesIndependently(t *testing.T) {
	fundVals := map[string]model.Valuation{"VMEEF": {Price: decimal.NewFromInt(15)}}

	p := New(
		stubEquityApi{err: errors.New("connection refused")},
		stubFundApi{valuations: fundVals},
	)

	equity, fund := p.FetchValuations(context.Background(), []string{"MBB"})

	assert.Equal(t, SourceStatusUnavailable, equity.Status)
	require.NotNil(t, equity.Valuations)
	assert.Empty(t, equity.Valuations)

	assert.Equal(t, SourceStatusOK, fund.Status)
	assert.Equal(t, fundVals, fund.Valuations)
}

func TestFetchValuationsBothFail(t *testing.T) {
	p := New(
		stubEquityApi{err: errors.New("timeout")},
		stubFundApi{err: errors.New("timeout")},
	)

	equity, fund := p.FetchValuations(context.Background(), []string{"MBB"})

	assert.Equal(t, SourceStatusUnavailable, equity.Status)
	assert.Equal(t, SourceStatusUnavailable, fund.Status)
	assert.NotNil(t, equity.Valuations)
	assert.NotNil(t, fund.Valuations)
}

func TestFetchValuationsEmptyIsNotUnavailable(t *testing.T) {
	p := New(
		stubEquityApi{valuations: map[string]model.Valuation{}},
		stubFundApi{valuations: map[string]model.Valuation{}},
	)

	equity, fund := p.FetchValuations(context.Background(), []string{"MBB"})

	assert.Equal(t, SourceStatusEmpty, equity.Status)
	assert.Equal(t, SourceStatusEmpty, fund.Status)
}

func TestFetchValuationsSkipsEquityCallWithoutSymbols(t *testing.T) {
	p := New(
		stubEquityApi{err: errors.New("should not be called")},
		stubFundApi{valuations: map[string]model.Valuation{"VMEEF": {}}},
	)

	equity, fund := p.FetchValuations(context.Background(), nil)

	assert.Equal(t, SourceStatusEmpty, equity.Status)
	assert.Equal(t, SourceStatusOK, fund.Status)
}
