package constants

// Well-known token mint addresses
const (
	MintSOL  = "So11111111111111111111111111111111111111112"
	MintUSDC = "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"
	MintUSDT = "Es9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCe8BenwNYB"
	MintJUP  = "JUPyiwrYJFskUPiHa7hkeR8VUtAeFoSYbKedZNsDvCN"
	MintBONK = "DezXAZ8z7PnrnRJjz3wXBoRgixCa6xjnB7YaB1pPB263"
)

// Token mint addresses to symbols
var TokenSymbols = map[string]string{
	MintSOL:  "SOL",
	MintUSDC: "USDC",
	MintUSDT: "USDT",
	MintJUP:  "JUP",
	MintBONK: "BONK",
	"mSoLzYCxHdYgdzU16g5QSh3i5K3z3KZK7ytfqcJm7So":  "mSOL",
	"7vfCXTUXx5WJV5JADk17DUJ4ksgau7utNKj4b963voxs": "ETH",
	"4k3Dyjzvzp8eMZWUXbBCjEvwSkkk59S5iCNLY3QrkX6R": "RAY",
}

// LamportsPerSOL is the number of lamports in one SOL
const LamportsPerSOL = 1_000_000_000
