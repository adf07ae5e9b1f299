package sdk

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// MemSystem is the in-memory lamport ledger.
type MemSystem struct {
	balances map[solana.PublicKey]uint64
}

func NewMemSystem() *MemSystem {
	return &MemSystem{balances: make(map[solana.PublicKey]uint64)}
}

// Airdrop funds a wallet out of thin air. Host-side only, for seeding tests
// and the demo.
func (m *MemSystem) Airdrop(addr solana.PublicKey, lamports uint64) {
	m.balances[addr] += lamports
}

func (m *MemSystem) Balance(addr solana.PublicKey) uint64 {
	return m.balances[addr]
}

func (m *MemSystem) Transfer(env Env, from, to solana.PublicKey, lamports uint64, proof *DerivedAuthority) error {
	if proof != nil {
		if !proof.Controls(from) {
			return fmt.Errorf("system transfer from %s: %w", from, ErrUnauthorized)
		}
	} else if !env.Signed(from) {
		return fmt.Errorf("system transfer from %s: %w", from, ErrUnauthorized)
	}
	if m.balances[from] < lamports {
		return fmt.Errorf("system transfer of %d from %s: %w", lamports, from, ErrInsufficientFunds)
	}
	m.balances[from] -= lamports
	m.balances[to] += lamports
	return nil
}

func (m *MemSystem) CreateAccount(env Env, addr, payer solana.PublicKey, lamports uint64) error {
	return m.Transfer(env, payer, addr, lamports, nil)
}

func (m *MemSystem) CloseAccount(addr, rentReceiver solana.PublicKey) error {
	m.balances[rentReceiver] += m.balances[addr]
	delete(m.balances, addr)
	return nil
}

func (m *MemSystem) Snapshot() any {
	cp := make(map[solana.PublicKey]uint64, len(m.balances))
	for k, v := range m.balances {
		cp[k] = v
	}
	return cp
}

func (m *MemSystem) Restore(snap any) {
	m.balances = snap.(map[solana.PublicKey]uint64)
}
