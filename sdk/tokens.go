package sdk

import "github.com/gagliardetto/solana-go"

// TokenAccount is a custody slot for one (owner, mint) pair, mirroring an
// associated token account. Identity fields only change through the ledger.
type TokenAccount struct {
	Address         solana.PublicKey
	Mint            solana.PublicKey
	Owner           solana.PublicKey
	Amount          uint64
	Delegate        solana.PublicKey
	DelegatedAmount uint64
	Frozen          bool
}

// TokenLedger is the asset custody collaborator. Every mutation that spends
// from an account needs either the owner's signature in env, a delegate's
// signature within the approved amount, or a derivation proof that resolves
// to the owner (the escrow-vault case).
type TokenLedger interface {
	// CreateMint registers a mint whose authority alone may mint supply.
	// The authority is typically a derived address.
	CreateMint(env Env, mint, authority solana.PublicKey, decimals uint8) error

	// EnsureAccount creates the custody account for (owner, mint) if it does
	// not exist yet, rent paid by payer, and returns its address either way.
	EnsureAccount(env Env, owner, mint, payer solana.PublicKey) (solana.PublicKey, error)

	// Account returns the custody account for (owner, mint).
	Account(owner, mint solana.PublicKey) (*TokenAccount, error)

	// Balance is a convenience read; missing accounts read as zero.
	Balance(owner, mint solana.PublicKey) uint64

	Transfer(env Env, mint, fromOwner, toOwner solana.PublicKey, amount uint64, proof *DerivedAuthority) error

	// Approve lets delegate spend up to amount from (owner, mint).
	Approve(env Env, mint, owner, delegate solana.PublicKey, amount uint64) error
	Revoke(env Env, mint, owner solana.PublicKey) error

	// Freeze/Thaw lock an account in place. The proof must resolve to the
	// account's current delegate, which is how staking pins an asset in the
	// holder's own account.
	Freeze(env Env, mint, owner solana.PublicKey, proof *DerivedAuthority) error
	Thaw(env Env, mint, owner solana.PublicKey, proof *DerivedAuthority) error

	// MintTo creates amount units in (toOwner, mint); the proof must resolve
	// to the mint authority.
	MintTo(env Env, mint, toOwner solana.PublicKey, amount uint64, proof *DerivedAuthority) error

	// CloseAccount removes an emptied custody account and sends its rent
	// deposit to rentReceiver.
	CloseAccount(env Env, mint, owner, rentReceiver solana.PublicKey, proof *DerivedAuthority) error
}
