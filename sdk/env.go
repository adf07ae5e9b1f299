package sdk

import "github.com/gagliardetto/solana-go"

// Env is the authenticated context of a single contract call, supplied by the
// host. The programs trust it completely: if a key shows up in Signers the
// host has already checked the signature.
type Env struct {
	Caller    solana.PublicKey
	Signers   []solana.PublicKey
	Slot      uint64
	Timestamp int64 // unix seconds
}

// NewEnv builds an env where the caller is the only signer, which covers
// almost every call in practice.
func NewEnv(caller solana.PublicKey, slot uint64, timestamp int64) Env {
	return Env{
		Caller:    caller,
		Signers:   []solana.PublicKey{caller},
		Slot:      slot,
		Timestamp: timestamp,
	}
}

// Signed reports whether key authorized this call.
func (e Env) Signed(key solana.PublicKey) bool {
	if e.Caller.Equals(key) {
		return true
	}
	for _, s := range e.Signers {
		if s.Equals(key) {
			return true
		}
	}
	return false
}
