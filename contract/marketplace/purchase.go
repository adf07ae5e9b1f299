package marketplace

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/Shubbu03/Q3-25-Builder-Shubbu03/contract"
	"github.com/Shubbu03/Q3-25-Builder-Shubbu03/sdk"
)

const feeDenominator = 10_000

// SplitFee computes the treasury fee and seller take for a price at a fee
// rate. fee + seller == price always; any overflow aborts instead of rounding
// value into or out of existence.
func SplitFee(price uint64, feeBps uint16) (fee, seller uint64, err error) {
	fee, err = contract.CheckedMul(price, uint64(feeBps))
	if err != nil {
		return 0, 0, err
	}
	fee, err = contract.CheckedDiv(fee, feeDenominator)
	if err != nil {
		return 0, 0, err
	}
	seller, err = contract.CheckedSub(price, fee)
	if err != nil {
		return 0, 0, err
	}
	return fee, seller, nil
}

// Purchase settles a listing: payment legs first (seller take, then fee when
// nonzero), then the asset leg out of the vault under the listing derivation,
// then vault close and listing destruction with both deposits refunded to the
// maker. The whole call is one atomic unit; payment-first just fails cheaper.
func (p *Program) Purchase(env sdk.Env, market, mint solana.PublicKey) error {
	return p.rt.Atomic(func() error {
		ctx := contract.NewContext(p.rt, env)
		buyer := ctx.Sender()

		var cfg Marketplace
		if err := ctx.Load(marketplaceKey(market), &cfg); err != nil {
			return fmt.Errorf("marketplace %s: %w", market, err)
		}

		addr, _, err := p.ListingAddress(market, mint)
		if err != nil {
			return err
		}
		var rec Listing
		if err := ctx.Load(listingKey(addr), &rec); err != nil {
			return fmt.Errorf("listing %s: %w", addr, err)
		}

		fee, seller, err := SplitFee(rec.Price, cfg.FeeBps)
		if err != nil {
			return err
		}

		if p.rt.System.Balance(buyer) < rec.Price {
			return fmt.Errorf("purchase %s: %w", mint, sdk.ErrInsufficientFunds)
		}

		treasury, _, err := p.TreasuryAddress(market)
		if err != nil {
			return err
		}

		if err := p.rt.System.Transfer(env, buyer, rec.Maker, seller, nil); err != nil {
			return err
		}
		if fee > 0 {
			if err := p.rt.System.Transfer(env, buyer, treasury, fee, nil); err != nil {
				return err
			}
		}

		proof := p.listingProof(market, mint, rec.Bump)
		if _, err := p.rt.Tokens.EnsureAccount(env, buyer, mint, buyer); err != nil {
			return err
		}
		if err := p.rt.Tokens.Transfer(env, mint, addr, buyer, 1, proof); err != nil {
			return err
		}

		// Rent refunds go to the maker, mirroring delist.
		if err := p.rt.Tokens.CloseAccount(env, mint, addr, rec.Maker, proof); err != nil {
			return err
		}
		if err := ctx.Close(listingKey(addr), addr, rec.Maker); err != nil {
			return err
		}

		emitPurchased(addr, mint, rec.Maker, buyer, rec.Price, fee)
		return nil
	})
}
