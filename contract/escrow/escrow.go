package escrow

import (
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/Shubbu03/Q3-25-Builder-Shubbu03/contract"
	"github.com/Shubbu03/Q3-25-Builder-Shubbu03/sdk"
)

// ErrInvalidAmount rejects zero-sized offers on either leg.
var ErrInvalidAmount = errors.New("deposit and receive amounts must be nonzero")

var seedEscrow = []byte("escrow")

// kEscrow stores serialized Escrow records.
const kEscrow byte = 0x01

// Escrow is a maker's open offer: token A parked in the vault, waiting for
// any taker to show up with Receive units of token B. Take and Refund are
// the two terminal transitions; exactly one fires.
type Escrow struct {
	Seed    uint64           `json:"seed"`
	Maker   solana.PublicKey `json:"maker"`
	MintA   solana.PublicKey `json:"mint_a"`
	MintB   solana.PublicKey `json:"mint_b"`
	Receive uint64           `json:"receive"`
	Bump    uint8            `json:"bump"`
}

type Program struct {
	ID solana.PublicKey

	rt *sdk.Runtime
}

func New(id solana.PublicKey, rt *sdk.Runtime) *Program {
	return &Program{ID: id, rt: rt}
}

// EscrowAddress derives the offer record for (maker, seed). The seed lets a
// maker keep several offers open at once.
func (p *Program) EscrowAddress(maker solana.PublicKey, seed uint64) (solana.PublicKey, uint8, error) {
	return contract.Derive(p.ID, seedEscrow, maker.Bytes(), contract.U64LE(seed))
}

func escrowKey(addr solana.PublicKey) string {
	var buf [33]byte
	buf[0] = kEscrow
	copy(buf[1:], addr.Bytes())
	return string(buf[:])
}

func (p *Program) proof(maker solana.PublicKey, seed uint64, bump uint8) *sdk.DerivedAuthority {
	return contract.Proof(p.ID, bump, seedEscrow, maker.Bytes(), contract.U64LE(seed))
}

// Make opens an offer and escrows the deposit leg.
func (p *Program) Make(env sdk.Env, seed uint64, mintA, mintB solana.PublicKey, deposit, receive uint64) (solana.PublicKey, error) {
	var escrow solana.PublicKey
	err := p.rt.Atomic(func() error {
		ctx := contract.NewContext(p.rt, env)
		maker := ctx.Sender()

		if deposit == 0 || receive == 0 {
			return fmt.Errorf("make offer %d: %w", seed, ErrInvalidAmount)
		}
		if p.rt.Tokens.Balance(maker, mintA) < deposit {
			return fmt.Errorf("make offer %d: %w", seed, sdk.ErrInsufficientFunds)
		}

		addr, bump, err := p.EscrowAddress(maker, seed)
		if err != nil {
			return err
		}
		rec := Escrow{Seed: seed, Maker: maker, MintA: mintA, MintB: mintB, Receive: receive, Bump: bump}
		if err := ctx.Allocate(escrowKey(addr), addr, maker, &rec); err != nil {
			return err
		}
		if _, err := p.rt.Tokens.EnsureAccount(env, addr, mintA, maker); err != nil {
			return err
		}
		if err := p.rt.Tokens.Transfer(env, mintA, maker, addr, deposit, nil); err != nil {
			return err
		}

		escrow = addr
		sdk.Log(fmt.Sprintf("em|e:%s|by:%s|dep:%d|rec:%d", addr, maker, deposit, receive))
		return nil
	})
	if err != nil {
		return solana.PublicKey{}, err
	}
	return escrow, nil
}

// Take settles an offer: the taker pays the receive leg to the maker and
// walks away with whatever the vault holds; vault and record close back to
// the maker.
func (p *Program) Take(env sdk.Env, maker solana.PublicKey, seed uint64) error {
	return p.rt.Atomic(func() error {
		ctx := contract.NewContext(p.rt, env)
		taker := ctx.Sender()

		addr, _, err := p.EscrowAddress(maker, seed)
		if err != nil {
			return err
		}
		var rec Escrow
		if err := ctx.Load(escrowKey(addr), &rec); err != nil {
			return fmt.Errorf("escrow %s: %w", addr, err)
		}

		if p.rt.Tokens.Balance(taker, rec.MintB) < rec.Receive {
			return fmt.Errorf("take offer %d: %w", seed, sdk.ErrInsufficientFunds)
		}

		if _, err := p.rt.Tokens.EnsureAccount(env, rec.Maker, rec.MintB, taker); err != nil {
			return err
		}
		if err := p.rt.Tokens.Transfer(env, rec.MintB, taker, rec.Maker, rec.Receive, nil); err != nil {
			return err
		}

		proof := p.proof(rec.Maker, rec.Seed, rec.Bump)
		held := p.rt.Tokens.Balance(addr, rec.MintA)
		if _, err := p.rt.Tokens.EnsureAccount(env, taker, rec.MintA, taker); err != nil {
			return err
		}
		if err := p.rt.Tokens.Transfer(env, rec.MintA, addr, taker, held, proof); err != nil {
			return err
		}
		if err := p.rt.Tokens.CloseAccount(env, rec.MintA, addr, rec.Maker, proof); err != nil {
			return err
		}
		if err := ctx.Close(escrowKey(addr), addr, rec.Maker); err != nil {
			return err
		}

		sdk.Log(fmt.Sprintf("et|e:%s|by:%s", addr, taker))
		return nil
	})
}

// Refund hands the deposit back to the maker and closes the offer. Only the
// maker can reach their own escrow address, so ownership needs no check
// beyond the derivation.
func (p *Program) Refund(env sdk.Env, seed uint64) error {
	return p.rt.Atomic(func() error {
		ctx := contract.NewContext(p.rt, env)
		maker := ctx.Sender()

		addr, _, err := p.EscrowAddress(maker, seed)
		if err != nil {
			return err
		}
		var rec Escrow
		if err := ctx.Load(escrowKey(addr), &rec); err != nil {
			return fmt.Errorf("escrow %s: %w", addr, err)
		}

		proof := p.proof(rec.Maker, rec.Seed, rec.Bump)
		held := p.rt.Tokens.Balance(addr, rec.MintA)
		if err := p.rt.Tokens.Transfer(env, rec.MintA, addr, rec.Maker, held, proof); err != nil {
			return err
		}
		if err := p.rt.Tokens.CloseAccount(env, rec.MintA, addr, rec.Maker, proof); err != nil {
			return err
		}
		if err := ctx.Close(escrowKey(addr), addr, rec.Maker); err != nil {
			return err
		}

		sdk.Log(fmt.Sprintf("er|e:%s|by:%s", addr, maker))
		return nil
	})
}
