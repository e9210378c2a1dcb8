package rpc

// RPCError represents a JSON-RPC error response
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return e.Message
}

// SendTransactionResponse is the response from sendTransaction
type SendTransactionResponse struct {
	Result string    `json:"result"`
	Error  *RPCError `json:"error"`
}

// BlockhashValue holds the blockhash payload of getLatestBlockhash
type BlockhashValue struct {
	Blockhash            string `json:"blockhash"`
	LastValidBlockHeight uint64 `json:"lastValidBlockHeight"`
}

// BlockhashResult wraps the RPC context envelope around the blockhash
type BlockhashResult struct {
	Value BlockhashValue `json:"value"`
}

// BlockhashResponse is the response from getLatestBlockhash
type BlockhashResponse struct {
	Result *BlockhashResult `json:"result"`
	Error  *RPCError        `json:"error"`
}

// SignatureStatus describes confirmation progress for a signature
type SignatureStatus struct {
	Slot               uint64      `json:"slot"`
	Confirmations      *uint64     `json:"confirmations"`
	Err                interface{} `json:"err"`
	ConfirmationStatus string      `json:"confirmationStatus"`
}

// SignatureStatusResult wraps the RPC context envelope around statuses
type SignatureStatusResult struct {
	Value []*SignatureStatus `json:"value"`
}

// SignatureStatusResponse is the response from getSignatureStatuses
type SignatureStatusResponse struct {
	Result *SignatureStatusResult `json:"result"`
	Error  *RPCError              `json:"error"`
}
