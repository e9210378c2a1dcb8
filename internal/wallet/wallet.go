package wallet

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// SignTx signs a transaction with the wallet's private key
func (w *Wallet) SignTx(tx *solana.Transaction) error {
	_, err := tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		if key.Equals(w.pub) {
			return &w.priv
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to sign transaction: %w", err)
	}
	return nil
}

// SignBase64Transaction decodes a base64-serialized transaction as returned
// by the aggregator, signs it, and re-encodes it for submission.
func (w *Wallet) SignBase64Transaction(txBase64 string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(txBase64)
	if err != nil {
		return "", fmt.Errorf("invalid base64 transaction: %w", err)
	}

	tx, err := solana.TransactionFromBytes(raw)
	if err != nil {
		return "", fmt.Errorf("failed to deserialize transaction: %w", err)
	}

	if err := w.SignTx(tx); err != nil {
		return "", err
	}

	signed, err := tx.MarshalBinary()
	if err != nil {
		return "", fmt.Errorf("failed to serialize signed transaction: %w", err)
	}

	return base64.StdEncoding.EncodeToString(signed), nil
}

// SignAndSubmit signs a base64 transaction and submits it over RPC,
// returning the transaction signature.
func (w *Wallet) SignAndSubmit(ctx context.Context, txBase64 string) (string, error) {
	signed, err := w.SignBase64Transaction(txBase64)
	if err != nil {
		return "", err
	}

	sig, err := w.rpc.SendTransaction(ctx, signed)
	if err != nil {
		return "", fmt.Errorf("sendTransaction failed: %w", err)
	}

	return sig, nil
}

// WaitForConfirmation blocks until the signature confirms or ctx expires
func (w *Wallet) WaitForConfirmation(ctx context.Context, signature string) error {
	return w.rpc.WaitForConfirmation(ctx, signature)
}
