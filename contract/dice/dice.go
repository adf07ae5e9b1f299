package dice

import (
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/Shubbu03/Q3-25-Builder-Shubbu03/contract"
	"github.com/Shubbu03/Q3-25-Builder-Shubbu03/sdk"
)

var (
	// ErrInvalidRoll rejects targets outside the playable band.
	ErrInvalidRoll = errors.New("roll must be between 2 and 96")
	// ErrInvalidAmount rejects empty wagers.
	ErrInvalidAmount = errors.New("bet amount cannot be zero")
	// ErrInvalidSignature rejects a resolution whose house signature does not
	// verify over the bet.
	ErrInvalidSignature = errors.New("house signature does not match bet")
	// ErrTimeoutNotReached rejects a refund before the house had its window
	// to resolve.
	ErrTimeoutNotReached = errors.New("refund timeout not reached")
)

const (
	minRoll = 2
	maxRoll = 96
	// houseEdgeBps shaves 1.5% off the fair payout.
	houseEdgeBps = 150
	// refundCooldownSlots is how long the house gets to resolve before the
	// player can pull the wager back.
	refundCooldownSlots = 1000
)

var (
	seedVault = []byte("vault")
	seedBet   = []byte("bet")
)

// kBet stores serialized Bet records.
const kBet byte = 0x01

// Bet is one open wager against the house vault.
type Bet struct {
	Player solana.PublicKey `json:"player"`
	Seed   uint64           `json:"seed"`
	Slot   uint64           `json:"slot"`
	Roll   uint8            `json:"roll"`
	Amount uint64           `json:"amount"`
	Bump   uint8            `json:"bump"`
}

// Program is the dice game: players bet against a house-funded vault and the
// house resolves with a signature that doubles as the randomness source.
type Program struct {
	ID    solana.PublicKey
	House solana.PublicKey

	rt *sdk.Runtime
}

func New(id, house solana.PublicKey, rt *sdk.Runtime) *Program {
	return &Program{ID: id, House: house, rt: rt}
}

// VaultAddress derives the house bankroll vault.
func (p *Program) VaultAddress() (solana.PublicKey, uint8, error) {
	return contract.Derive(p.ID, seedVault, p.House.Bytes())
}

// BetAddress derives the record for one (vault, seed) wager.
func (p *Program) BetAddress(vault solana.PublicKey, seed uint64) (solana.PublicKey, uint8, error) {
	return contract.Derive(p.ID, seedBet, vault.Bytes(), contract.U64LE(seed))
}

// GetBet reads an open wager, ErrRecordNotFound once settled or refunded.
func (p *Program) GetBet(addr solana.PublicKey) (*Bet, error) {
	var rec Bet
	ctx := contract.NewContext(p.rt, sdk.Env{})
	if err := ctx.Load(betKey(addr), &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func betKey(addr solana.PublicKey) string {
	var buf [33]byte
	buf[0] = kBet
	copy(buf[1:], addr.Bytes())
	return string(buf[:])
}

// betMessage is what the house signs to resolve a bet.
func betMessage(rec *Bet) []byte {
	msg := make([]byte, 0, 48)
	msg = append(msg, contract.U64LE(rec.Seed)...)
	msg = append(msg, rec.Player.Bytes()...)
	msg = append(msg, rec.Roll)
	return append(msg, contract.U64LE(rec.Amount)...)
}

// rollFromSig folds the signature hash into a 1-100 roll.
func rollFromSig(sig []byte) uint8 {
	h := sha256.Sum256(sig)
	lower := binary.LittleEndian.Uint64(h[0:8])
	upper := binary.LittleEndian.Uint64(h[8:16])
	return uint8((lower+upper)%100 + 1)
}

// Initialize funds the house vault with its bankroll.
func (p *Program) Initialize(env sdk.Env, amount uint64) error {
	return p.rt.Atomic(func() error {
		vault, _, err := p.VaultAddress()
		if err != nil {
			return err
		}
		if err := p.rt.System.Transfer(env, p.House, vault, amount, nil); err != nil {
			return err
		}
		sdk.Log(fmt.Sprintf("di|v:%s|am:%d", vault, amount))
		return nil
	})
}

// PlaceBet records the wager and moves it into the vault.
func (p *Program) PlaceBet(env sdk.Env, seed uint64, roll uint8, amount uint64) (solana.PublicKey, error) {
	var bet solana.PublicKey
	err := p.rt.Atomic(func() error {
		ctx := contract.NewContext(p.rt, env)
		player := ctx.Sender()

		if roll < minRoll || roll > maxRoll {
			return fmt.Errorf("bet on %d: %w", roll, ErrInvalidRoll)
		}
		if amount == 0 {
			return fmt.Errorf("bet by %s: %w", player, ErrInvalidAmount)
		}

		vault, _, err := p.VaultAddress()
		if err != nil {
			return err
		}
		addr, bump, err := p.BetAddress(vault, seed)
		if err != nil {
			return err
		}
		rec := Bet{Player: player, Seed: seed, Slot: env.Slot, Roll: roll, Amount: amount, Bump: bump}
		if err := ctx.Allocate(betKey(addr), addr, player, &rec); err != nil {
			return err
		}
		if err := p.rt.System.Transfer(env, player, vault, amount, nil); err != nil {
			return err
		}

		bet = addr
		sdk.Log(fmt.Sprintf("db|b:%s|by:%s|r:%d|am:%d", addr, player, roll, amount))
		return nil
	})
	if err != nil {
		return solana.PublicKey{}, err
	}
	return bet, nil
}

// ResolveBet settles a wager. sig must be the house's ed25519 signature over
// the bet message; it is both the authorization and the randomness. A win
// pays amount scaled by the fair odds for the target minus the house edge,
// out of the vault under its derivation.
func (p *Program) ResolveBet(env sdk.Env, seed uint64, sig []byte) error {
	return p.rt.Atomic(func() error {
		ctx := contract.NewContext(p.rt, env)

		vault, vaultBump, err := p.VaultAddress()
		if err != nil {
			return err
		}
		addr, _, err := p.BetAddress(vault, seed)
		if err != nil {
			return err
		}
		var rec Bet
		if err := ctx.Load(betKey(addr), &rec); err != nil {
			return fmt.Errorf("bet %s: %w", addr, err)
		}

		if !ed25519.Verify(ed25519.PublicKey(p.House.Bytes()), betMessage(&rec), sig) {
			return fmt.Errorf("resolve bet %s: %w", addr, ErrInvalidSignature)
		}

		if roll := rollFromSig(sig); roll < rec.Roll {
			payout, err := contract.CheckedMul(rec.Amount, 10_000-houseEdgeBps)
			if err != nil {
				return err
			}
			payout, err = contract.CheckedDiv(payout, uint64(rec.Roll)-1)
			if err != nil {
				return err
			}
			payout, err = contract.CheckedDiv(payout, 100)
			if err != nil {
				return err
			}
			proof := contract.Proof(p.ID, vaultBump, seedVault, p.House.Bytes())
			if err := p.rt.System.Transfer(env, vault, rec.Player, payout, proof); err != nil {
				return err
			}
			sdk.Log(fmt.Sprintf("dw|b:%s|roll:%d|pay:%d", addr, roll, payout))
		} else {
			sdk.Log(fmt.Sprintf("dl|b:%s|roll:%d", addr, roll))
		}

		return ctx.Close(betKey(addr), addr, rec.Player)
	})
}

// RefundBet lets the player reclaim a wager the house never resolved.
func (p *Program) RefundBet(env sdk.Env, seed uint64) error {
	return p.rt.Atomic(func() error {
		ctx := contract.NewContext(p.rt, env)
		player := ctx.Sender()

		vault, vaultBump, err := p.VaultAddress()
		if err != nil {
			return err
		}
		addr, _, err := p.BetAddress(vault, seed)
		if err != nil {
			return err
		}
		var rec Bet
		if err := ctx.Load(betKey(addr), &rec); err != nil {
			return fmt.Errorf("bet %s: %w", addr, err)
		}
		if !rec.Player.Equals(player) {
			return fmt.Errorf("refund bet %s: %w", addr, sdk.ErrUnauthorized)
		}
		if env.Slot < rec.Slot+refundCooldownSlots {
			return fmt.Errorf("refund bet %s at slot %d: %w", addr, env.Slot, ErrTimeoutNotReached)
		}

		proof := contract.Proof(p.ID, vaultBump, seedVault, p.House.Bytes())
		if err := p.rt.System.Transfer(env, vault, player, rec.Amount, proof); err != nil {
			return err
		}
		if err := ctx.Close(betKey(addr), addr, player); err != nil {
			return err
		}
		sdk.Log(fmt.Sprintf("dr|b:%s|am:%d", addr, rec.Amount))
		return nil
	})
}
