package storage

import (
	"context"
	"fmt"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/thrishank/jup-ag-sdk/internal/models"
)

type ClickHouseOptions struct {
	Addr     string
	Database string
	Username string
	Password string
}

type ClickHouseStore struct {
	conn driver.Conn
}

func NewClickHouseStore(opts ClickHouseOptions) (*ClickHouseStore, error) {
	conn, err := clickhouse.Open(&clickhouse.Options{
		Addr: []string{opts.Addr},
		Auth: clickhouse.Auth{
			Database: opts.Database,
			Username: opts.Username,
			Password: opts.Password,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to ClickHouse: %w", err)
	}

	if err := conn.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to ping ClickHouse: %w", err)
	}

	return &ClickHouseStore{
		conn: conn,
	}, nil
}

func (c *ClickHouseStore) InsertQuote(ctx context.Context, quote *models.QuoteRecord) error {
	query := `
		INSERT INTO quotes (
			timestamp, input_mint, output_mint, in_amount, out_amount,
			swap_mode, slippage_bps, price_impact_pct, route_hops, route_labels
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	err := c.conn.Exec(ctx, query,
		quote.Timestamp,
		quote.InputMint,
		quote.OutputMint,
		quote.InAmount,
		quote.OutAmount,
		quote.SwapMode,
		quote.SlippageBps,
		quote.PriceImpactPct,
		quote.RouteHops,
		quote.RouteLabels,
	)

	if err != nil {
		return fmt.Errorf("failed to insert quote: %w", err)
	}

	return nil
}

func (c *ClickHouseStore) Ping(ctx context.Context) error {
	return c.conn.Ping(ctx)
}

func (c *ClickHouseStore) Close() error {
	return c.conn.Close()
}
