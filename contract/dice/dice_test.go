package dice_test

import (
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/binary"
	"encoding/json"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shubbu03/Q3-25-Builder-Shubbu03/contract"
	"github.com/Shubbu03/Q3-25-Builder-Shubbu03/contract/dice"
	"github.com/Shubbu03/Q3-25-Builder-Shubbu03/sdk"
)

var programID = solana.NewWallet().PublicKey()

type bench struct {
	host     *sdk.Host
	game     *dice.Program
	houseKey solana.PrivateKey
	house    solana.PublicKey
	player   solana.PublicKey
}

func newBench(t *testing.T) *bench {
	t.Helper()
	host := sdk.NewMemoryHost()
	wallet := solana.NewWallet()
	b := &bench{
		host:     host,
		houseKey: wallet.PrivateKey,
		house:    wallet.PublicKey(),
		player:   solana.NewWallet().PublicKey(),
	}
	b.game = dice.New(programID, b.house, host.Runtime)
	host.System.Airdrop(b.house, 100*solana.LAMPORTS_PER_SOL)
	host.System.Airdrop(b.player, 10*solana.LAMPORTS_PER_SOL)
	require.NoError(t, b.game.Initialize(env(b.house, 1), 50*solana.LAMPORTS_PER_SOL))
	return b
}

func env(caller solana.PublicKey, slot uint64) sdk.Env {
	return sdk.NewEnv(caller, slot, 1)
}

// sign reproduces the resolution signature the house would produce off-chain.
func (b *bench) sign(bet *dice.Bet) []byte {
	msg := make([]byte, 0, 48)
	msg = append(msg, contract.U64LE(bet.Seed)...)
	msg = append(msg, bet.Player.Bytes()...)
	msg = append(msg, bet.Roll)
	msg = append(msg, contract.U64LE(bet.Amount)...)
	return ed25519.Sign(ed25519.PrivateKey(b.houseKey), msg)
}

// expectedRoll mirrors the signature-to-roll fold.
func expectedRoll(sig []byte) uint8 {
	h := sha256.Sum256(sig)
	lower := binary.LittleEndian.Uint64(h[0:8])
	upper := binary.LittleEndian.Uint64(h[8:16])
	return uint8((lower+upper)%100 + 1)
}

func TestPlaceBet(t *testing.T) {
	b := newBench(t)

	vault, _, err := b.game.VaultAddress()
	require.NoError(t, err)
	vaultBefore := b.host.System.Balance(vault)

	addr, err := b.game.PlaceBet(env(b.player, 10), 7, 50, 1_000_000)
	require.NoError(t, err)

	rec, err := b.game.GetBet(addr)
	require.NoError(t, err)
	assert.Equal(t, b.player, rec.Player)
	assert.Equal(t, uint8(50), rec.Roll)
	assert.Equal(t, uint64(10), rec.Slot)
	assert.Equal(t, vaultBefore+1_000_000, b.host.System.Balance(vault))
}

func TestPlaceBetBounds(t *testing.T) {
	b := newBench(t)

	_, err := b.game.PlaceBet(env(b.player, 1), 1, 1, 1_000)
	assert.ErrorIs(t, err, dice.ErrInvalidRoll)
	_, err = b.game.PlaceBet(env(b.player, 1), 1, 97, 1_000)
	assert.ErrorIs(t, err, dice.ErrInvalidRoll)
	_, err = b.game.PlaceBet(env(b.player, 1), 1, 50, 0)
	assert.ErrorIs(t, err, dice.ErrInvalidAmount)

	_, err = b.game.PlaceBet(env(b.player, 1), 1, 2, 1_000)
	assert.NoError(t, err)
	_, err = b.game.PlaceBet(env(b.player, 1), 2, 96, 1_000)
	assert.NoError(t, err)
}

func TestPlaceBetDuplicateSeed(t *testing.T) {
	b := newBench(t)

	_, err := b.game.PlaceBet(env(b.player, 1), 7, 50, 1_000)
	require.NoError(t, err)
	_, err = b.game.PlaceBet(env(b.player, 1), 7, 60, 2_000)
	assert.ErrorIs(t, err, contract.ErrRecordExists)
}

func TestResolveBet(t *testing.T) {
	b := newBench(t)
	const amount = 1_000_000

	addr, err := b.game.PlaceBet(env(b.player, 1), 7, 50, amount)
	require.NoError(t, err)
	rec, err := b.game.GetBet(addr)
	require.NoError(t, err)

	sig := b.sign(rec)
	roll := expectedRoll(sig)
	playerBefore := b.host.System.Balance(b.player)

	require.NoError(t, b.game.ResolveBet(env(b.house, 2), 7, sig))

	if roll < rec.Roll {
		// 1.5% edge off the fair 50-target payout.
		payout := uint64(amount) * 9850 / uint64(rec.Roll-1) / 100
		assert.Equal(t, playerBefore+payout+rentOf(rec), b.host.System.Balance(b.player))
	} else {
		assert.Equal(t, playerBefore+rentOf(rec), b.host.System.Balance(b.player))
	}

	// Bet is settled either way.
	_, err = b.game.GetBet(addr)
	assert.ErrorIs(t, err, contract.ErrRecordNotFound)
	err = b.game.ResolveBet(env(b.house, 2), 7, sig)
	assert.ErrorIs(t, err, contract.ErrRecordNotFound)
}

func TestResolveBetBadSignature(t *testing.T) {
	b := newBench(t)

	addr, err := b.game.PlaceBet(env(b.player, 1), 7, 50, 1_000)
	require.NoError(t, err)
	rec, err := b.game.GetBet(addr)
	require.NoError(t, err)

	// Signed by the wrong key.
	impostor := solana.NewWallet()
	sig := ed25519.Sign(ed25519.PrivateKey(impostor.PrivateKey), b.sign(rec)[:32])
	err = b.game.ResolveBet(env(b.house, 2), 7, sig)
	assert.ErrorIs(t, err, dice.ErrInvalidSignature)

	// Bet stays open.
	_, err = b.game.GetBet(addr)
	assert.NoError(t, err)
}

func TestRefundBet(t *testing.T) {
	b := newBench(t)
	const amount = 1_000_000

	addr, err := b.game.PlaceBet(env(b.player, 10), 7, 50, amount)
	require.NoError(t, err)
	rec, err := b.game.GetBet(addr)
	require.NoError(t, err)

	// Too early.
	err = b.game.RefundBet(env(b.player, 1000), 7)
	assert.ErrorIs(t, err, dice.ErrTimeoutNotReached)

	// Only the bettor can pull it back.
	err = b.game.RefundBet(env(b.house, 2000), 7)
	assert.ErrorIs(t, err, sdk.ErrUnauthorized)

	playerBefore := b.host.System.Balance(b.player)
	require.NoError(t, b.game.RefundBet(env(b.player, 1010), 7))
	assert.Equal(t, playerBefore+amount+rentOf(rec), b.host.System.Balance(b.player))

	_, err = b.game.GetBet(addr)
	assert.ErrorIs(t, err, contract.ErrRecordNotFound)
}

// rentOf computes the deposit a bet record carried.
func rentOf(rec *dice.Bet) uint64 {
	raw, _ := json.Marshal(rec)
	return contract.RentExempt(len(raw))
}
