package sdk

import "github.com/gagliardetto/solana-go"

// DerivedAuthority is the proof half of a derived (keyless) address: the seed
// tuple plus the bump that made the derivation land off the ed25519 curve.
// A ledger accepts it in place of a signature when the re-derived address
// matches the account owner it is supposed to control. It carries no secret
// material, so it can always be rebuilt from the inputs.
type DerivedAuthority struct {
	ProgramID solana.PublicKey
	Seeds     [][]byte
	Bump      uint8
}

// Address re-derives the authority address from the proof contents.
func (d *DerivedAuthority) Address() (solana.PublicKey, error) {
	seeds := make([][]byte, 0, len(d.Seeds)+1)
	seeds = append(seeds, d.Seeds...)
	seeds = append(seeds, []byte{d.Bump})
	return solana.CreateProgramAddress(seeds, d.ProgramID)
}

// Controls reports whether the proof resolves to addr. A proof built from the
// wrong seeds, bump or program simply derives somewhere else, so there is
// nothing to forge.
func (d *DerivedAuthority) Controls(addr solana.PublicKey) bool {
	derived, err := d.Address()
	if err != nil {
		return false
	}
	return derived.Equals(addr)
}
