package sdk

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// Rent deposits for the fixed-size ledger accounts, in lamports.
const (
	tokenAccountRent = 2_039_280
	mintRent         = 1_461_600
)

type memMint struct {
	authority solana.PublicKey
	decimals  uint8
	supply    uint64
}

// MemTokens is the in-memory asset custody ledger. Accounts are keyed by
// (owner, mint) and addressed at the derived associated address, so a program
// never has to persist custody-account pointers.
type MemTokens struct {
	system *MemSystem
	mints  map[solana.PublicKey]*memMint
	accts  map[solana.PublicKey]*TokenAccount
}

func NewMemTokens(system *MemSystem) *MemTokens {
	return &MemTokens{
		system: system,
		mints:  make(map[solana.PublicKey]*memMint),
		accts:  make(map[solana.PublicKey]*TokenAccount),
	}
}

func (m *MemTokens) CreateMint(env Env, mint, authority solana.PublicKey, decimals uint8) error {
	if _, ok := m.mints[mint]; ok {
		return fmt.Errorf("mint %s: %w", mint, ErrAccountExists)
	}
	if err := m.system.CreateAccount(env, mint, env.Caller, mintRent); err != nil {
		return err
	}
	m.mints[mint] = &memMint{authority: authority, decimals: decimals}
	return nil
}

func (m *MemTokens) EnsureAccount(env Env, owner, mint, payer solana.PublicKey) (solana.PublicKey, error) {
	addr, _, err := solana.FindAssociatedTokenAddress(owner, mint)
	if err != nil {
		return solana.PublicKey{}, err
	}
	if _, ok := m.accts[addr]; ok {
		return addr, nil
	}
	if err := m.system.CreateAccount(env, addr, payer, tokenAccountRent); err != nil {
		return solana.PublicKey{}, err
	}
	m.accts[addr] = &TokenAccount{Address: addr, Mint: mint, Owner: owner}
	return addr, nil
}

func (m *MemTokens) Account(owner, mint solana.PublicKey) (*TokenAccount, error) {
	addr, _, err := solana.FindAssociatedTokenAddress(owner, mint)
	if err != nil {
		return nil, err
	}
	acct, ok := m.accts[addr]
	if !ok {
		return nil, fmt.Errorf("token account for owner %s mint %s: %w", owner, mint, ErrAccountNotFound)
	}
	cp := *acct
	return &cp, nil
}

func (m *MemTokens) Balance(owner, mint solana.PublicKey) uint64 {
	acct, err := m.Account(owner, mint)
	if err != nil {
		return 0
	}
	return acct.Amount
}

// spendAuthorized checks the three ways out of a custody account: the owner
// signed, an approved delegate signed with enough allowance, or a derivation
// proof resolves to the owner.
func spendAuthorized(env Env, acct *TokenAccount, amount uint64, proof *DerivedAuthority) bool {
	if proof != nil {
		return proof.Controls(acct.Owner)
	}
	if env.Signed(acct.Owner) {
		return true
	}
	if !acct.Delegate.IsZero() && env.Signed(acct.Delegate) && acct.DelegatedAmount >= amount {
		return true
	}
	return false
}

func (m *MemTokens) Transfer(env Env, mint, fromOwner, toOwner solana.PublicKey, amount uint64, proof *DerivedAuthority) error {
	fromAddr, _, err := solana.FindAssociatedTokenAddress(fromOwner, mint)
	if err != nil {
		return err
	}
	from, ok := m.accts[fromAddr]
	if !ok {
		return fmt.Errorf("token transfer from %s: %w", fromOwner, ErrAccountNotFound)
	}
	if from.Frozen {
		return fmt.Errorf("token transfer from %s: %w", fromOwner, ErrAccountFrozen)
	}
	if !spendAuthorized(env, from, amount, proof) {
		return fmt.Errorf("token transfer from %s: %w", fromOwner, ErrUnauthorized)
	}
	if from.Amount < amount {
		return fmt.Errorf("token transfer of %d from %s: %w", amount, fromOwner, ErrInsufficientFunds)
	}

	toAddr, _, err := solana.FindAssociatedTokenAddress(toOwner, mint)
	if err != nil {
		return err
	}
	to, ok := m.accts[toAddr]
	if !ok {
		return fmt.Errorf("token transfer to %s: %w", toOwner, ErrAccountNotFound)
	}
	if to.Frozen {
		return fmt.Errorf("token transfer to %s: %w", toOwner, ErrAccountFrozen)
	}

	from.Amount -= amount
	if proof == nil && !env.Signed(from.Owner) {
		from.DelegatedAmount -= amount
	}
	to.Amount += amount
	return nil
}

func (m *MemTokens) Approve(env Env, mint, owner, delegate solana.PublicKey, amount uint64) error {
	acct, err := m.mutableAccount(owner, mint)
	if err != nil {
		return err
	}
	if !env.Signed(owner) {
		return fmt.Errorf("approve on %s: %w", owner, ErrUnauthorized)
	}
	acct.Delegate = delegate
	acct.DelegatedAmount = amount
	return nil
}

func (m *MemTokens) Revoke(env Env, mint, owner solana.PublicKey) error {
	acct, err := m.mutableAccount(owner, mint)
	if err != nil {
		return err
	}
	if !env.Signed(owner) {
		return fmt.Errorf("revoke on %s: %w", owner, ErrUnauthorized)
	}
	acct.Delegate = solana.PublicKey{}
	acct.DelegatedAmount = 0
	return nil
}

func (m *MemTokens) Freeze(env Env, mint, owner solana.PublicKey, proof *DerivedAuthority) error {
	acct, err := m.mutableAccount(owner, mint)
	if err != nil {
		return err
	}
	if proof == nil || acct.Delegate.IsZero() || !proof.Controls(acct.Delegate) {
		return fmt.Errorf("freeze on %s: %w", owner, ErrUnauthorized)
	}
	acct.Frozen = true
	return nil
}

func (m *MemTokens) Thaw(env Env, mint, owner solana.PublicKey, proof *DerivedAuthority) error {
	acct, err := m.mutableAccount(owner, mint)
	if err != nil {
		return err
	}
	if proof == nil || acct.Delegate.IsZero() || !proof.Controls(acct.Delegate) {
		return fmt.Errorf("thaw on %s: %w", owner, ErrUnauthorized)
	}
	acct.Frozen = false
	return nil
}

func (m *MemTokens) MintTo(env Env, mint, toOwner solana.PublicKey, amount uint64, proof *DerivedAuthority) error {
	mi, ok := m.mints[mint]
	if !ok {
		return fmt.Errorf("mint %s: %w", mint, ErrAccountNotFound)
	}
	authorized := env.Signed(mi.authority) || (proof != nil && proof.Controls(mi.authority))
	if !authorized {
		return fmt.Errorf("mint to %s: %w", toOwner, ErrUnauthorized)
	}
	acct, err := m.mutableAccount(toOwner, mint)
	if err != nil {
		return err
	}
	mi.supply += amount
	acct.Amount += amount
	return nil
}

func (m *MemTokens) CloseAccount(env Env, mint, owner, rentReceiver solana.PublicKey, proof *DerivedAuthority) error {
	addr, _, err := solana.FindAssociatedTokenAddress(owner, mint)
	if err != nil {
		return err
	}
	acct, ok := m.accts[addr]
	if !ok {
		return fmt.Errorf("close of %s: %w", owner, ErrAccountNotFound)
	}
	if acct.Amount != 0 {
		return fmt.Errorf("close of %s: %w", owner, ErrNonZeroBalance)
	}
	authorized := env.Signed(owner) || (proof != nil && proof.Controls(owner))
	if !authorized {
		return fmt.Errorf("close of %s: %w", owner, ErrUnauthorized)
	}
	delete(m.accts, addr)
	return m.system.CloseAccount(addr, rentReceiver)
}

func (m *MemTokens) mutableAccount(owner, mint solana.PublicKey) (*TokenAccount, error) {
	addr, _, err := solana.FindAssociatedTokenAddress(owner, mint)
	if err != nil {
		return nil, err
	}
	acct, ok := m.accts[addr]
	if !ok {
		return nil, fmt.Errorf("token account for owner %s mint %s: %w", owner, mint, ErrAccountNotFound)
	}
	return acct, nil
}

func (m *MemTokens) Snapshot() any {
	mints := make(map[solana.PublicKey]*memMint, len(m.mints))
	for k, v := range m.mints {
		cp := *v
		mints[k] = &cp
	}
	accts := make(map[solana.PublicKey]*TokenAccount, len(m.accts))
	for k, v := range m.accts {
		cp := *v
		accts[k] = &cp
	}
	return []any{mints, accts}
}

func (m *MemTokens) Restore(snap any) {
	parts := snap.([]any)
	m.mints = parts[0].(map[solana.PublicKey]*memMint)
	m.accts = parts[1].(map[solana.PublicKey]*TokenAccount)
}
