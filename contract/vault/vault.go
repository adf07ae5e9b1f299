package vault

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/Shubbu03/Q3-25-Builder-Shubbu03/contract"
	"github.com/Shubbu03/Q3-25-Builder-Shubbu03/sdk"
)

var (
	seedState = []byte("state")
	seedVault = []byte("vault")
)

// kState stores serialized VaultState records.
const kState byte = 0x01

// VaultState keeps the two bumps; ownership is implicit in the state
// derivation, which hangs off the owner's key.
type VaultState struct {
	VaultBump uint8 `json:"vault_bump"`
	StateBump uint8 `json:"state_bump"`
}

// Program is a per-user native-currency vault: lamports parked under an
// address only the program can move from.
type Program struct {
	ID solana.PublicKey

	rt *sdk.Runtime
}

func New(id solana.PublicKey, rt *sdk.Runtime) *Program {
	return &Program{ID: id, rt: rt}
}

// StateAddress derives the vault-state record for an owner.
func (p *Program) StateAddress(owner solana.PublicKey) (solana.PublicKey, uint8, error) {
	return contract.Derive(p.ID, seedState, owner.Bytes())
}

// VaultAddress derives the lamport vault controlled by a state record.
func (p *Program) VaultAddress(state solana.PublicKey) (solana.PublicKey, uint8, error) {
	return contract.Derive(p.ID, seedVault, state.Bytes())
}

func stateKey(addr solana.PublicKey) string {
	var buf [33]byte
	buf[0] = kState
	copy(buf[1:], addr.Bytes())
	return string(buf[:])
}

// Initialize sets up the caller's vault.
func (p *Program) Initialize(env sdk.Env) (solana.PublicKey, error) {
	var vault solana.PublicKey
	err := p.rt.Atomic(func() error {
		ctx := contract.NewContext(p.rt, env)
		owner := ctx.Sender()

		state, stateBump, err := p.StateAddress(owner)
		if err != nil {
			return err
		}
		v, vaultBump, err := p.VaultAddress(state)
		if err != nil {
			return err
		}

		rec := VaultState{VaultBump: vaultBump, StateBump: stateBump}
		if err := ctx.Allocate(stateKey(state), state, owner, &rec); err != nil {
			return err
		}
		vault = v
		sdk.Log(fmt.Sprintf("vi|v:%s|by:%s", v, owner))
		return nil
	})
	if err != nil {
		return solana.PublicKey{}, err
	}
	return vault, nil
}

// Deposit moves lamports from the owner into their vault.
func (p *Program) Deposit(env sdk.Env, amount uint64) error {
	return p.rt.Atomic(func() error {
		ctx := contract.NewContext(p.rt, env)
		owner := ctx.Sender()

		state, _, err := p.StateAddress(owner)
		if err != nil {
			return err
		}
		var rec VaultState
		if err := ctx.Load(stateKey(state), &rec); err != nil {
			return fmt.Errorf("vault state for %s: %w", owner, err)
		}
		vault, _, err := p.VaultAddress(state)
		if err != nil {
			return err
		}
		if err := p.rt.System.Transfer(env, owner, vault, amount, nil); err != nil {
			return err
		}
		sdk.Log(fmt.Sprintf("vd|v:%s|am:%d", vault, amount))
		return nil
	})
}

// Withdraw moves lamports back out. The vault authorizes itself through its
// derivation, never through a signer.
func (p *Program) Withdraw(env sdk.Env, amount uint64) error {
	return p.rt.Atomic(func() error {
		ctx := contract.NewContext(p.rt, env)
		owner := ctx.Sender()

		state, _, err := p.StateAddress(owner)
		if err != nil {
			return err
		}
		var rec VaultState
		if err := ctx.Load(stateKey(state), &rec); err != nil {
			return fmt.Errorf("vault state for %s: %w", owner, err)
		}
		vault, _, err := p.VaultAddress(state)
		if err != nil {
			return err
		}
		proof := contract.Proof(p.ID, rec.VaultBump, seedVault, state.Bytes())
		if err := p.rt.System.Transfer(env, vault, owner, amount, proof); err != nil {
			return err
		}
		sdk.Log(fmt.Sprintf("vw|v:%s|am:%d", vault, amount))
		return nil
	})
}

// Close drains whatever the vault still holds back to the owner and destroys
// the state record, refunding its deposit.
func (p *Program) Close(env sdk.Env) error {
	return p.rt.Atomic(func() error {
		ctx := contract.NewContext(p.rt, env)
		owner := ctx.Sender()

		state, _, err := p.StateAddress(owner)
		if err != nil {
			return err
		}
		var rec VaultState
		if err := ctx.Load(stateKey(state), &rec); err != nil {
			return fmt.Errorf("vault state for %s: %w", owner, err)
		}
		vault, _, err := p.VaultAddress(state)
		if err != nil {
			return err
		}
		if err := p.rt.System.CloseAccount(vault, owner); err != nil {
			return err
		}
		if err := ctx.Close(stateKey(state), state, owner); err != nil {
			return err
		}
		sdk.Log(fmt.Sprintf("vc|v:%s|by:%s", vault, owner))
		return nil
	})
}
