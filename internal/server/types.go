package server

// ErrorResponse represents a standardized error response format
type ErrorResponse struct {
	Error   string `json:"error"`             // Human-readable error message
	Code    int    `json:"code"`              // HTTP status code
	Details any    `json:"details,omitempty"` // Additional error details (dev mode only)
}

// HealthResponse represents the health check response
type HealthResponse struct {
	OK bool `json:"ok"` // Service health status
}

// PriceResponse represents a token price lookup result
type PriceResponse struct {
	Mint    string `json:"mint"`    // Token mint address
	Price   string `json:"price"`   // Decimal price string as returned upstream
	VsToken string `json:"vsToken"` // Quote denomination mint
	Cached  bool   `json:"cached"`  // Whether the price came from the cache
}
