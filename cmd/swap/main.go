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

// Quote-then-swap flow: fetch a quote, build the swap transaction for the
// configured wallet, sign it, and submit it over RPC.
func main() {
	loadEnv()

	inputMint := flag.String("in", constants.MintSOL, "input token mint")
	outputMint := flag.String("out", constants.MintUSDC, "output token mint")
	amount := flag.Uint64("amount", 0, "amount in base units (e.g. lamports)")
	slippageBps := flag.Uint("slippage-bps", 50, "slippage in bps (e.g. 50 = 0.5%)")
	dryRun := flag.Bool("dry-run", false, "fetch quote and transaction but do not sign or send")
	flag.Parse()

	if *amount == 0 {
		fmt.Println("missing -amount (must be > 0)")
		os.Exit(2)
	}

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
		RPCURL:       cfg.RPCUrl,
		PrivateKey:   cfg.WalletKey,
		MaxRetries:   cfg.MaxRetries,
		RetryBackoff: cfg.RetryBackoff,
	})
	if err != nil {
		fmt.Println("failed to init wallet:", err)
		os.Exit(1)
	}

	quoteReq := jup.NewQuoteRequest(*inputMint, *outputMint, *amount).
		WithSlippageBps(uint16(*slippageBps)).
		WithRestrictIntermediateTokens(true)

	quote, err := client.GetQuote(ctx, quoteReq)
	if err != nil {
		fmt.Println("quote failed:", err)
		os.Exit(1)
	}
	fmt.Printf("quote: %s %s -> %s %s (impact %s%%, %d hops)\n",
		quote.InAmount, symbolFor(quote.InputMint),
		quote.OutAmount, symbolFor(quote.OutputMint),
		quote.PriceImpactPct, len(quote.RoutePlan))

	swapReq := jup.NewSwapRequest(w.Address(), *quote).
		WithDynamicComputeUnitLimit(true).
		WithPrioritizationFeeLamports(jup.PrioritizationFeeLamports{
			PriorityLevelWithMaxLamports: &jup.PriorityLevelWithMaxLamports{
				PriorityLevel: jup.PriorityLevelHigh,
				MaxLamports:   5_000_000,
			},
		})

	swap, err := client.GetSwapTransaction(ctx, swapReq)
	if err != nil {
		fmt.Println("swap build failed:", err)
		os.Exit(1)
	}

	if *dryRun {
		fmt.Printf("dry run: transaction built, valid until block height %d\n", swap.LastValidBlockHeight)
		return
	}

	sig, err := w.SignAndSubmit(ctx, swap.SwapTransaction)
	if err != nil {
		fmt.Println("submit failed:", err)
		os.Exit(1)
	}
	fmt.Println("submitted:", sig)

	if err := w.WaitForConfirmation(ctx, sig); err != nil {
		fmt.Println("confirmation failed:", err)
		os.Exit(1)
	}
	fmt.Println("confirmed:", sig)
}

func symbolFor(mint string) string {
	if sym, ok := constants.TokenSymbols[mint]; ok {
		return sym
	}
	return mint
}
