package marketplace

import (
	"github.com/gagliardetto/solana-go"

	"github.com/Shubbu03/Q3-25-Builder-Shubbu03/contract"
	"github.com/Shubbu03/Q3-25-Builder-Shubbu03/sdk"
)

// Program is the marketplace listing and settlement engine, bound to the
// runtime it executes against. It holds no state of its own; everything
// lives behind the runtime's collaborators.
type Program struct {
	ID solana.PublicKey

	rt *sdk.Runtime
}

func New(id solana.PublicKey, rt *sdk.Runtime) *Program {
	return &Program{ID: id, rt: rt}
}

// MarketplaceAddress derives the config record address for a marketplace name.
func (p *Program) MarketplaceAddress(name string) (solana.PublicKey, uint8, error) {
	return contract.Derive(p.ID, seedMarketplace, []byte(name))
}

// TreasuryAddress derives the fee sink for a marketplace.
func (p *Program) TreasuryAddress(market solana.PublicKey) (solana.PublicKey, uint8, error) {
	return contract.Derive(p.ID, seedTreasury, market.Bytes())
}

// RewardsMintAddress derives the rewards mint for a marketplace.
func (p *Program) RewardsMintAddress(market solana.PublicKey) (solana.PublicKey, uint8, error) {
	return contract.Derive(p.ID, seedRewards, market.Bytes())
}

// ListingAddress derives the listing record for (marketplace, asset). The
// same derivation owns the escrow vault, so holding these two seeds is what
// it means to control the listed asset.
func (p *Program) ListingAddress(market, mint solana.PublicKey) (solana.PublicKey, uint8, error) {
	return contract.Derive(p.ID, market.Bytes(), mint.Bytes())
}

// GetListing reads a live listing record, ErrRecordNotFound once settled.
func (p *Program) GetListing(market, mint solana.PublicKey) (*Listing, error) {
	addr, _, err := p.ListingAddress(market, mint)
	if err != nil {
		return nil, err
	}
	var rec Listing
	ctx := contract.NewContext(p.rt, sdk.Env{})
	if err := ctx.Load(listingKey(addr), &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// GetMarketplace reads a config record.
func (p *Program) GetMarketplace(market solana.PublicKey) (*Marketplace, error) {
	var rec Marketplace
	ctx := contract.NewContext(p.rt, sdk.Env{})
	if err := ctx.Load(marketplaceKey(market), &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// listingProof rebuilds the derived authority that controls a listing's
// escrow vault.
func (p *Program) listingProof(market, mint solana.PublicKey, bump uint8) *sdk.DerivedAuthority {
	return contract.Proof(p.ID, bump, market.Bytes(), mint.Bytes())
}
