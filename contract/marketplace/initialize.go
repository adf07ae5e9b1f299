package marketplace

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/Shubbu03/Q3-25-Builder-Shubbu03/contract"
	"github.com/Shubbu03/Q3-25-Builder-Shubbu03/sdk"
)

const (
	// MaxFeeBps caps the marketplace fee at 10%.
	MaxFeeBps = 1000
	// MaxNameLen bounds the marketplace name seed.
	MaxNameLen = 32

	rewardsDecimals = 6
)

// Initialize creates a marketplace instance: the config record plus the
// derived treasury and rewards-mint addresses. The config address is derived
// from the name, so a second initialize with the same name fails on the
// existing record.
func (p *Program) Initialize(env sdk.Env, name string, feeBps uint16) (solana.PublicKey, error) {
	var market solana.PublicKey
	err := p.rt.Atomic(func() error {
		ctx := contract.NewContext(p.rt, env)

		if feeBps > MaxFeeBps {
			return fmt.Errorf("fee %d bps: %w", feeBps, ErrInvalidFee)
		}
		if name == "" || len(name) > MaxNameLen {
			return fmt.Errorf("name %q: %w", name, ErrInvalidName)
		}

		addr, bump, err := p.MarketplaceAddress(name)
		if err != nil {
			return err
		}
		_, treasuryBump, err := p.TreasuryAddress(addr)
		if err != nil {
			return err
		}
		rewardsMint, rewardsBump, err := p.RewardsMintAddress(addr)
		if err != nil {
			return err
		}

		cfg := Marketplace{
			Admin:        ctx.Sender(),
			Name:         name,
			FeeBps:       feeBps,
			Bump:         bump,
			TreasuryBump: treasuryBump,
			RewardsBump:  rewardsBump,
		}
		if err := ctx.Allocate(marketplaceKey(addr), addr, ctx.Sender(), &cfg); err != nil {
			return err
		}

		// Rewards mint lives under the marketplace's own authority.
		if err := p.rt.Tokens.CreateMint(env, rewardsMint, addr, rewardsDecimals); err != nil {
			return err
		}

		market = addr
		emitInitialized(addr, name, feeBps)
		return nil
	})
	if err != nil {
		return solana.PublicKey{}, err
	}
	return market, nil
}
