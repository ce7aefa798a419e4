package bitget

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// API paths for the mix (USDT futures) product line.
const (
	pathBills     = "/api/v2/mix/account/bill"
	pathFills     = "/api/v2/mix/order/fills"
	pathPositions = "/api/v2/mix/position/all-position"
	pathAccounts  = "/api/v2/mix/account/accounts"
	pathTicker    = "/api/v2/mix/market/ticker"
)

// BillsOptions configures a GetBills request.
type BillsOptions struct {
	ProductType  string
	MarginCoin   string
	BusinessType string
	StartTime    time.Time
	EndTime      time.Time
	Limit        int
	Cursor       string
}

// GetBills fetches one page of booked account transactions.
func (c *Client) GetBills(ctx context.Context, opts BillsOptions) ([]Record, error) {
	query := url.Values{}
	if opts.ProductType != "" {
		query.Set("productType", opts.ProductType)
	}
	if opts.MarginCoin != "" {
		query.Set("marginCoin", opts.MarginCoin)
	}
	if opts.BusinessType != "" {
		query.Set("businessType", opts.BusinessType)
	}
	setWindow(query, opts.StartTime, opts.EndTime)
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Cursor != "" {
		query.Set("cursor", opts.Cursor)
	}

	records, err := c.getList(ctx, pathBills, query)
	if err != nil {
		return nil, fmt.Errorf("get bills: %w", err)
	}
	return records, nil
}

// FillsOptions configures a GetFills request.
type FillsOptions struct {
	Symbol      string
	ProductType string
	StartTime   time.Time
	EndTime     time.Time
	Limit       int
	Cursor      string
}

// GetFills fetches one page of trade execution records. The endpoint caps
// the lookback span per call; callers split longer windows into sub-ranges.
func (c *Client) GetFills(ctx context.Context, opts FillsOptions) ([]Record, error) {
	query := url.Values{}
	if opts.Symbol != "" {
		query.Set("symbol", opts.Symbol)
	}
	if opts.ProductType != "" {
		query.Set("productType", opts.ProductType)
	}
	setWindow(query, opts.StartTime, opts.EndTime)
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Cursor != "" {
		query.Set("cursor", opts.Cursor)
	}

	records, err := c.getList(ctx, pathFills, query)
	if err != nil {
		return nil, fmt.Errorf("get fills: %w", err)
	}
	return records, nil
}

// GetPositions fetches all open positions for the product line.
func (c *Client) GetPositions(ctx context.Context, productType, marginCoin string) ([]Record, error) {
	query := url.Values{}
	query.Set("productType", productType)
	if marginCoin != "" {
		query.Set("marginCoin", marginCoin)
	}

	records, err := c.getList(ctx, pathPositions, query)
	if err != nil {
		return nil, fmt.Errorf("get positions: %w", err)
	}
	return records, nil
}

// GetAccount fetches the futures account summary.
func (c *Client) GetAccount(ctx context.Context, productType, marginCoin string) (Record, error) {
	query := url.Values{}
	query.Set("productType", productType)
	if marginCoin != "" {
		query.Set("marginCoin", marginCoin)
	}

	record, err := c.getRecord(ctx, pathAccounts, query)
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}
	return record, nil
}

// GetTicker fetches the current ticker for a symbol.
func (c *Client) GetTicker(ctx context.Context, symbol, productType string) (Record, error) {
	query := url.Values{}
	query.Set("symbol", symbol)
	query.Set("productType", productType)

	record, err := c.getRecord(ctx, pathTicker, query)
	if err != nil {
		return nil, fmt.Errorf("get ticker: %w", err)
	}
	return record, nil
}

func setWindow(query url.Values, start, end time.Time) {
	if !start.IsZero() {
		query.Set("startTime", strconv.FormatInt(start.UnixMilli(), 10))
	}
	if !end.IsZero() {
		query.Set("endTime", strconv.FormatInt(end.UnixMilli(), 10))
	}
}
