package escrow_test

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shubbu03/Q3-25-Builder-Shubbu03/contract"
	"github.com/Shubbu03/Q3-25-Builder-Shubbu03/contract/escrow"
	"github.com/Shubbu03/Q3-25-Builder-Shubbu03/sdk"
)

var programID = solana.NewWallet().PublicKey()

type bench struct {
	host  *sdk.Host
	esc   *escrow.Program
	maker solana.PublicKey
	taker solana.PublicKey
	mintA solana.PublicKey
	mintB solana.PublicKey
}

func newBench(t *testing.T) *bench {
	t.Helper()
	host := sdk.NewMemoryHost()
	b := &bench{
		host:  host,
		esc:   escrow.New(programID, host.Runtime),
		maker: solana.NewWallet().PublicKey(),
		taker: solana.NewWallet().PublicKey(),
		mintA: solana.NewWallet().PublicKey(),
		mintB: solana.NewWallet().PublicKey(),
	}
	minter := solana.NewWallet().PublicKey()
	host.System.Airdrop(minter, 10*solana.LAMPORTS_PER_SOL)
	host.System.Airdrop(b.maker, 10*solana.LAMPORTS_PER_SOL)
	host.System.Airdrop(b.taker, 10*solana.LAMPORTS_PER_SOL)

	me := sdk.NewEnv(minter, 1, 1)
	require.NoError(t, host.Tokens.CreateMint(me, b.mintA, minter, 6))
	require.NoError(t, host.Tokens.CreateMint(me, b.mintB, minter, 6))
	_, err := host.Tokens.EnsureAccount(env(b.maker), b.maker, b.mintA, b.maker)
	require.NoError(t, err)
	_, err = host.Tokens.EnsureAccount(env(b.taker), b.taker, b.mintB, b.taker)
	require.NoError(t, err)
	require.NoError(t, host.Tokens.MintTo(me, b.mintA, b.maker, 1_000, nil))
	require.NoError(t, host.Tokens.MintTo(me, b.mintB, b.taker, 1_000, nil))
	return b
}

func env(caller solana.PublicKey) sdk.Env { return sdk.NewEnv(caller, 1, 1) }

func TestMakeEscrowsDeposit(t *testing.T) {
	b := newBench(t)

	addr, err := b.esc.Make(env(b.maker), 42, b.mintA, b.mintB, 400, 250)
	require.NoError(t, err)

	assert.Equal(t, uint64(600), b.host.Tokens.Balance(b.maker, b.mintA))
	assert.Equal(t, uint64(400), b.host.Tokens.Balance(addr, b.mintA))
}

func TestMakeRejectsZeroLegs(t *testing.T) {
	b := newBench(t)

	_, err := b.esc.Make(env(b.maker), 1, b.mintA, b.mintB, 0, 250)
	assert.ErrorIs(t, err, escrow.ErrInvalidAmount)
	_, err = b.esc.Make(env(b.maker), 1, b.mintA, b.mintB, 400, 0)
	assert.ErrorIs(t, err, escrow.ErrInvalidAmount)
}

func TestMakeWithoutDeposit(t *testing.T) {
	b := newBench(t)

	_, err := b.esc.Make(env(b.maker), 1, b.mintA, b.mintB, 1_001, 250)
	assert.ErrorIs(t, err, sdk.ErrInsufficientFunds)
}

func TestTakeSwapsBothLegs(t *testing.T) {
	b := newBench(t)
	addr, err := b.esc.Make(env(b.maker), 7, b.mintA, b.mintB, 400, 250)
	require.NoError(t, err)

	require.NoError(t, b.esc.Take(env(b.taker), b.maker, 7))

	// Both legs settled, vault and record gone.
	assert.Equal(t, uint64(400), b.host.Tokens.Balance(b.taker, b.mintA))
	assert.Equal(t, uint64(250), b.host.Tokens.Balance(b.maker, b.mintB))
	assert.Equal(t, uint64(750), b.host.Tokens.Balance(b.taker, b.mintB))
	_, err = b.host.Tokens.Account(addr, b.mintA)
	assert.ErrorIs(t, err, sdk.ErrAccountNotFound)

	// The offer is spent.
	err = b.esc.Take(env(b.taker), b.maker, 7)
	assert.ErrorIs(t, err, contract.ErrRecordNotFound)
}

func TestTakeWithoutFunds(t *testing.T) {
	b := newBench(t)
	_, err := b.esc.Make(env(b.maker), 7, b.mintA, b.mintB, 400, 2_000)
	require.NoError(t, err)

	err = b.esc.Take(env(b.taker), b.maker, 7)
	assert.ErrorIs(t, err, sdk.ErrInsufficientFunds)
}

func TestRefundReturnsDeposit(t *testing.T) {
	b := newBench(t)
	_, err := b.esc.Make(env(b.maker), 7, b.mintA, b.mintB, 400, 250)
	require.NoError(t, err)

	require.NoError(t, b.esc.Refund(env(b.maker), 7))
	assert.Equal(t, uint64(1_000), b.host.Tokens.Balance(b.maker, b.mintA))

	// Refund is terminal too.
	err = b.esc.Take(env(b.taker), b.maker, 7)
	assert.ErrorIs(t, err, contract.ErrRecordNotFound)
}

func TestRefundOnlyReachesOwnOffer(t *testing.T) {
	b := newBench(t)
	_, err := b.esc.Make(env(b.maker), 7, b.mintA, b.mintB, 400, 250)
	require.NoError(t, err)

	// The taker's derivation for the same seed is a different address.
	err = b.esc.Refund(env(b.taker), 7)
	assert.ErrorIs(t, err, contract.ErrRecordNotFound)
}
