package sdk

import "github.com/gagliardetto/solana-go"

// SystemLedger is the native-currency collaborator. Amounts are lamports.
// Mutations are authorized either by a signature present in env or, when the
// paying account is program-controlled, by a derivation proof for it.
type SystemLedger interface {
	Balance(addr solana.PublicKey) uint64

	// Transfer moves lamports from -> to. proof may be nil for wallet-held
	// senders; then from must have signed the call.
	Transfer(env Env, from, to solana.PublicKey, lamports uint64, proof *DerivedAuthority) error

	// CreateAccount funds a fresh record account with its rent deposit,
	// paid by payer (who must have signed).
	CreateAccount(env Env, addr, payer solana.PublicKey, lamports uint64) error

	// CloseAccount drains whatever addr still holds to rentReceiver.
	CloseAccount(addr, rentReceiver solana.PublicKey) error
}
