package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Jupiter API settings
	JupiterBaseURL string
	HTTPTimeout    time.Duration

	// API facade settings
	APIAddr string
	APIKey  string
	DevMode bool

	// Redis settings (price cache)
	RedisAddr     string
	PriceCacheTTL time.Duration

	// ClickHouse settings (quote audit log)
	ClickHouseAddr     string
	ClickHouseDatabase string
	ClickHouseUsername string
	ClickHousePassword string
	QuoteLogEnabled    bool

	// Signer settings (example binaries)
	RPCUrl       string
	WalletKey    string
	MaxRetries   int
	RetryBackoff time.Duration
}

func Load() *Config {
	return &Config{
		// Jupiter
		JupiterBaseURL: getEnv("JUPITER_BASE_URL", "https://lite-api.jup.ag"),
		HTTPTimeout:    getDurationEnv("HTTP_TIMEOUT", 30*time.Second),

		// API facade
		APIAddr: getEnv("API_ADDR", ":8090"),
		APIKey:  getEnv("API_KEY", ""),
		DevMode: getBoolEnv("DEV_MODE", false),

		// Redis
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		PriceCacheTTL: getDurationEnv("PRICE_CACHE_TTL", 10*time.Second),

		// ClickHouse
		ClickHouseAddr:     getEnv("CLICKHOUSE_ADDR", "localhost:9000"),
		ClickHouseDatabase: getEnv("CLICKHOUSE_DATABASE", "jupiter"),
		ClickHouseUsername: getEnv("CLICKHOUSE_USERNAME", "default"),
		ClickHousePassword: getEnv("CLICKHOUSE_PASSWORD", ""),
		QuoteLogEnabled:    getBoolEnv("QUOTE_LOG_ENABLED", false),

		// Signer
		RPCUrl:       getEnv("SOLANA_RPC_URL", "https://api.mainnet-beta.solana.com"),
		WalletKey:    getEnv("WALLET_PRIVATE_KEY", ""),
		MaxRetries:   getIntEnv("MAX_RETRIES", 3),
		RetryBackoff: getDurationEnv("RETRY_BACKOFF", 1*time.Second),
	}
}

// Validate checks settings the API facade cannot run without.
func (c *Config) Validate() error {
	if c.JupiterBaseURL == "" {
		return fmt.Errorf("JUPITER_BASE_URL must not be empty")
	}
	if c.APIAddr == "" {
		return fmt.Errorf("API_ADDR must not be empty")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getIntEnv(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getBoolEnv(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}

func getDurationEnv(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
