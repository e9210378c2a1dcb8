package wallet

import (
	"encoding/json"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrivateKey_Base58(t *testing.T) {
	generated := solana.NewWallet()

	priv, err := parsePrivateKey(generated.PrivateKey.String())
	require.NoError(t, err)
	assert.Equal(t, generated.PublicKey(), priv.PublicKey())

	// Surrounding whitespace is tolerated
	priv, err = parsePrivateKey("  " + generated.PrivateKey.String() + "\n")
	require.NoError(t, err)
	assert.Equal(t, generated.PublicKey(), priv.PublicKey())
}

func TestParsePrivateKey_JSONArray(t *testing.T) {
	generated := solana.NewWallet()

	ints := make([]int, len(generated.PrivateKey))
	for i, b := range generated.PrivateKey {
		ints[i] = int(b)
	}
	data, err := json.Marshal(ints)
	require.NoError(t, err)

	priv, err := parsePrivateKey(string(data))
	require.NoError(t, err)
	assert.Equal(t, generated.PublicKey(), priv.PublicKey())
}

func TestParsePrivateKey_Invalid(t *testing.T) {
	_, err := parsePrivateKey("not-a-key")
	assert.Error(t, err)

	// Wrong length
	_, err = parsePrivateKey("[1,2,3]")
	assert.Error(t, err)

	// Out-of-range byte
	_, err = parsePrivateKey("[300]")
	assert.Error(t, err)

	// Malformed JSON
	_, err = parsePrivateKey("[1,2,")
	assert.Error(t, err)
}

func TestNewWallet_Validation(t *testing.T) {
	_, err := NewWallet(WalletConfig{PrivateKey: solana.NewWallet().PrivateKey.String()})
	assert.ErrorContains(t, err, "RPCURL is required")

	_, err = NewWallet(WalletConfig{RPCURL: "http://localhost:8899"})
	assert.ErrorContains(t, err, "PrivateKey is required")

	w, err := NewWallet(WalletConfig{
		RPCURL:     "http://localhost:8899",
		PrivateKey: solana.NewWallet().PrivateKey.String(),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, w.Address())
}
