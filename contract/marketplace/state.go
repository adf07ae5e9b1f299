package marketplace

import "github.com/gagliardetto/solana-go"

// Marketplace is the per-name config record. Immutable after initialize.
type Marketplace struct {
	Admin        solana.PublicKey `json:"admin"`
	Name         string           `json:"name"`
	FeeBps       uint16           `json:"fee_bps"`
	Bump         uint8            `json:"bump"`
	TreasuryBump uint8            `json:"treasury_bump"`
	RewardsBump  uint8            `json:"rewards_bump"`
}

// Listing pairs a maker, an asset and a price. It exists exactly while the
// escrow vault holds the asset; list creates it and exactly one of delist or
// purchase destroys it.
type Listing struct {
	Maker solana.PublicKey `json:"maker"`
	Mint  solana.PublicKey `json:"mint"` // unique per asset, no collection field needed
	Price uint64           `json:"price"`
	Bump  uint8            `json:"bump"`
}
