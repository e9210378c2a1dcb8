package storage

import (
	"context"
	"io"

	"github.com/thrishank/jup-ag-sdk/internal/models"
)

// PriceCache defines the interface for caching token prices
type PriceCache interface {
	// GetPrice retrieves a cached price for a mint; ok is false on a miss
	GetPrice(ctx context.Context, mint string) (models.PriceUpdate, bool, error)

	// SetPrice stores a price update
	SetPrice(ctx context.Context, update models.PriceUpdate) error

	// Close closes the cache connection
	io.Closer
}

// QuoteStore defines the interface for the persistent quote audit log
type QuoteStore interface {
	// InsertQuote appends a quote record to the log
	InsertQuote(ctx context.Context, quote *models.QuoteRecord) error

	// Ping checks if the store is reachable
	Ping(ctx context.Context) error

	// Close closes the store connection
	io.Closer
}
