package contract

import (
	"github.com/gagliardetto/solana-go"

	"github.com/Shubbu03/Q3-25-Builder-Shubbu03/sdk"
)

// Derive resolves the deterministic authority address for a seed tuple under
// programID. Same inputs always land on the same address; the bump is the
// retry counter that walked the derivation off the curve.
func Derive(programID solana.PublicKey, seeds ...[]byte) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress(seeds, programID)
}

// Proof packages a known derivation so a ledger can authorize actions as the
// derived address. Only code holding the right seed tuple can build one that
// resolves anywhere useful.
func Proof(programID solana.PublicKey, bump uint8, seeds ...[]byte) *sdk.DerivedAuthority {
	cp := make([][]byte, len(seeds))
	copy(cp, seeds)
	return &sdk.DerivedAuthority{ProgramID: programID, Seeds: cp, Bump: bump}
}

// U64LE encodes an id the way derivation seeds expect it.
func U64LE(x uint64) []byte {
	return []byte{
		byte(x),
		byte(x >> 8),
		byte(x >> 16),
		byte(x >> 24),
		byte(x >> 32),
		byte(x >> 40),
		byte(x >> 48),
		byte(x >> 56),
	}
}
