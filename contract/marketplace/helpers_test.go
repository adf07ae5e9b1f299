package marketplace_test

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"

	"github.com/Shubbu03/Q3-25-Builder-Shubbu03/contract/marketplace"
	"github.com/Shubbu03/Q3-25-Builder-Shubbu03/sdk"
)

var programID = solana.MustPublicKeyFromBase58("Hd98jmFudemVPbdArdHmCSTWayaqhhsgwAUd3abNC8DB")

const startingLamports = 10 * solana.LAMPORTS_PER_SOL

// bench is a funded in-memory host with the three wallets every scenario
// needs.
type bench struct {
	host  *sdk.Host
	mkt   *marketplace.Program
	admin solana.PublicKey
	maker solana.PublicKey
	buyer solana.PublicKey
}

func newBench(t *testing.T) *bench {
	t.Helper()
	host := sdk.NewMemoryHost()
	b := &bench{
		host:  host,
		mkt:   marketplace.New(programID, host.Runtime),
		admin: solana.NewWallet().PublicKey(),
		maker: solana.NewWallet().PublicKey(),
		buyer: solana.NewWallet().PublicKey(),
	}
	for _, w := range []solana.PublicKey{b.admin, b.maker, b.buyer} {
		host.System.Airdrop(w, startingLamports)
	}
	return b
}

func (b *bench) env(caller solana.PublicKey) sdk.Env {
	return sdk.NewEnv(caller, 1, 1_700_000_000)
}

// mintNFT creates a zero-decimal mint, puts its single unit in owner's
// account and registers the provenance record.
func (b *bench) mintNFT(t *testing.T, owner, collection solana.PublicKey, verified bool) solana.PublicKey {
	t.Helper()
	mint := solana.NewWallet().PublicKey()
	require.NoError(t, b.host.Tokens.CreateMint(b.env(b.admin), mint, b.admin, 0))
	_, err := b.host.Tokens.EnsureAccount(b.env(owner), owner, mint, owner)
	require.NoError(t, err)
	require.NoError(t, b.host.Tokens.MintTo(b.env(b.admin), mint, owner, 1, nil))
	if !collection.IsZero() {
		b.host.Metadata.SetCollection(mint, collection, verified)
	}
	return mint
}

// openMarket is the common initialize + mint + list preamble.
func (b *bench) openMarket(t *testing.T, feeBps uint16, price uint64) (market, mint, collection solana.PublicKey) {
	t.Helper()
	market, err := b.mkt.Initialize(b.env(b.admin), "art", feeBps)
	require.NoError(t, err)
	collection = solana.NewWallet().PublicKey()
	mint = b.mintNFT(t, b.maker, collection, true)
	_, err = b.mkt.List(b.env(b.maker), market, mint, collection, price)
	require.NoError(t, err)
	return market, mint, collection
}
