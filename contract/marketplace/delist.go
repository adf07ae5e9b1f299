package marketplace

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/Shubbu03/Q3-25-Builder-Shubbu03/contract"
	"github.com/Shubbu03/Q3-25-Builder-Shubbu03/sdk"
)

// Delist returns the escrowed asset to the maker and destroys the listing,
// refunding both rent deposits. Only the recorded maker may call it. The
// asset leg runs before anything is closed, so a failed transfer leaves the
// listing intact.
func (p *Program) Delist(env sdk.Env, market, mint solana.PublicKey) error {
	return p.rt.Atomic(func() error {
		ctx := contract.NewContext(p.rt, env)

		addr, _, err := p.ListingAddress(market, mint)
		if err != nil {
			return err
		}
		var rec Listing
		if err := ctx.Load(listingKey(addr), &rec); err != nil {
			return fmt.Errorf("listing %s: %w", addr, err)
		}
		if !rec.Maker.Equals(ctx.Sender()) {
			return fmt.Errorf("delist %s: %w", mint, ErrNotOwner)
		}

		// The vault signs for itself through the listing derivation.
		proof := p.listingProof(market, mint, rec.Bump)
		if _, err := p.rt.Tokens.EnsureAccount(env, rec.Maker, mint, rec.Maker); err != nil {
			return err
		}
		if err := p.rt.Tokens.Transfer(env, mint, addr, rec.Maker, 1, proof); err != nil {
			return err
		}
		if err := p.rt.Tokens.CloseAccount(env, mint, addr, rec.Maker, proof); err != nil {
			return err
		}
		if err := ctx.Close(listingKey(addr), addr, rec.Maker); err != nil {
			return err
		}

		emitDelisted(addr, mint, rec.Maker)
		return nil
	})
}
