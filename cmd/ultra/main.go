package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/thrishank/jup-ag-sdk/internal/config"
	"github.com/thrishank/jup-ag-sdk/internal/constants"
	"github.com/thrishank/jup-ag-sdk/internal/wallet"
	"github.com/thrishank/jup-ag-sdk/jup"
)

func loadEnv() {
	_, filename, _, _ := runtime.Caller(0)
	projectRoot := filepath.Join(filepath.Dir(filename), "../..")
	_ = godotenv.Load(filepath.Join(projectRoot, ".env"))
}

// Ultra flow: fetch an order for the wallet, sign the returned transaction
// locally, and hand it back for server-side execution. Settlement happens
// upstream, so there is no RPC submission step here.
func main() {
	loadEnv()

	inputMint := flag.String("in", constants.MintSOL, "input token mint")
	outputMint := flag.String("out", constants.MintUSDC, "output token mint")
	amount := flag.Uint64("amount", 0, "amount in base units (e.g. lamports)")
	balances := flag.Bool("balances", false, "print wallet token balances and exit")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	cfg := config.Load()
	client := jup.NewClient(cfg.JupiterBaseURL).WithTimeout(cfg.HTTPTimeout)

	w, err := wallet.NewWallet(wallet.WalletConfig{
		RPCURL:     cfg.RPCUrl,
		PrivateKey: cfg.WalletKey,
	})
	if err != nil {
		fmt.Println("failed to init wallet:", err)
		os.Exit(1)
	}

	if *balances {
		printBalances(ctx, client, w.Address())
		return
	}

	if *amount == 0 {
		fmt.Println("missing -amount (must be > 0)")
		os.Exit(2)
	}

	order, err := client.GetUltraOrder(ctx,
		jup.NewUltraOrderRequest(*inputMint, *outputMint, *amount).WithTaker(w.Address()))
	if err != nil {
		fmt.Println("order failed:", err)
		os.Exit(1)
	}
	fmt.Printf("order: %s -> %s via %s (request %s)\n",
		order.InAmount, order.OutAmount, order.SwapType, order.RequestID)

	if order.Transaction == nil {
		fmt.Println("no transaction returned; taker may lack funds for this order")
		os.Exit(1)
	}

	signed, err := w.SignBase64Transaction(*order.Transaction)
	if err != nil {
		fmt.Println("signing failed:", err)
		os.Exit(1)
	}

	result, err := client.UltraExecuteOrder(ctx, &jup.UltraExecuteOrderRequest{
		SignedTransaction: signed,
		RequestID:         order.RequestID,
	})
	if err != nil {
		fmt.Println("execute failed:", err)
		os.Exit(1)
	}

	if result.Status != "Success" {
		fmt.Printf("execution failed: status=%s code=%d\n", result.Status, result.Code)
		os.Exit(1)
	}
	if result.Signature != nil {
		fmt.Println("executed:", *result.Signature)
	}
}

func printBalances(ctx context.Context, client *jup.Client, address string) {
	balances, err := client.GetTokenBalances(ctx, address)
	if err != nil {
		fmt.Println("balances failed:", err)
		os.Exit(1)
	}
	for mint, bal := range balances {
		sym := mint
		if s, ok := constants.TokenSymbols[mint]; ok {
			sym = s
		}
		fmt.Printf("%-8s %g (frozen=%v)\n", sym, bal.UIAmount, bal.IsFrozen)
	}
}
