package marketplace

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/Shubbu03/Q3-25-Builder-Shubbu03/contract"
	"github.com/Shubbu03/Q3-25-Builder-Shubbu03/sdk"
)

// List escrows the caller's asset and creates the listing record. Checks run
// in order with first failure winning: price, single-unit custody, verified
// provenance. Only then does anything move.
func (p *Program) List(env sdk.Env, market, mint, collection solana.PublicKey, price uint64) (solana.PublicKey, error) {
	var listing solana.PublicKey
	err := p.rt.Atomic(func() error {
		ctx := contract.NewContext(p.rt, env)
		maker := ctx.Sender()

		var cfg Marketplace
		if err := ctx.Load(marketplaceKey(market), &cfg); err != nil {
			return fmt.Errorf("marketplace %s: %w", market, err)
		}

		if price == 0 {
			return fmt.Errorf("list %s: %w", mint, ErrInvalidPrice)
		}
		if p.rt.Tokens.Balance(maker, mint) != 1 {
			return fmt.Errorf("list %s: maker does not hold the asset: %w", mint, sdk.ErrInsufficientFunds)
		}
		col, ok := p.rt.Metadata.Collection(mint)
		if !ok || !col.Verified || !col.Key.Equals(collection) {
			return fmt.Errorf("list %s: %w", mint, ErrCollectionNotVerified)
		}

		addr, bump, err := p.ListingAddress(market, mint)
		if err != nil {
			return err
		}
		rec := Listing{Maker: maker, Mint: mint, Price: price, Bump: bump}
		if err := ctx.Allocate(listingKey(addr), addr, maker, &rec); err != nil {
			return err
		}

		// The vault is owned by the listing derivation, not by any signer.
		if _, err := p.rt.Tokens.EnsureAccount(env, addr, mint, maker); err != nil {
			return err
		}
		if err := p.rt.Tokens.Transfer(env, mint, maker, addr, 1, nil); err != nil {
			return err
		}

		listing = addr
		emitListed(addr, mint, maker, price)
		return nil
	})
	if err != nil {
		return solana.PublicKey{}, err
	}
	return listing, nil
}
