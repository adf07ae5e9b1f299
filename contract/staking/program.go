package staking

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/Shubbu03/Q3-25-Builder-Shubbu03/contract"
	"github.com/Shubbu03/Q3-25-Builder-Shubbu03/sdk"
)

const (
	rewardsDecimals = 6
	secondsPerDay   = 86_400
)

// Program stakes collection-verified assets by freezing them in place in the
// holder's custody and paying out points over time.
type Program struct {
	ID solana.PublicKey

	rt *sdk.Runtime
}

func New(id solana.PublicKey, rt *sdk.Runtime) *Program {
	return &Program{ID: id, rt: rt}
}

func (p *Program) ConfigAddress() (solana.PublicKey, uint8, error) {
	return contract.Derive(p.ID, seedConfig)
}

func (p *Program) RewardsMintAddress(config solana.PublicKey) (solana.PublicKey, uint8, error) {
	return contract.Derive(p.ID, seedRewards, config.Bytes())
}

func (p *Program) UserAddress(user solana.PublicKey) (solana.PublicKey, uint8, error) {
	return contract.Derive(p.ID, seedUser, user.Bytes())
}

func (p *Program) StakeAddress(mint, config solana.PublicKey) (solana.PublicKey, uint8, error) {
	return contract.Derive(p.ID, seedStake, mint.Bytes(), config.Bytes())
}

// InitializeConfig creates the program config and the rewards mint under the
// config's own authority.
func (p *Program) InitializeConfig(env sdk.Env, pointsPerStake, maxStake uint8, freezePeriod uint32) (solana.PublicKey, error) {
	var config solana.PublicKey
	err := p.rt.Atomic(func() error {
		ctx := contract.NewContext(p.rt, env)

		addr, bump, err := p.ConfigAddress()
		if err != nil {
			return err
		}
		rewardsMint, rewardsBump, err := p.RewardsMintAddress(addr)
		if err != nil {
			return err
		}

		cfg := StakeConfig{
			PointsPerStake: pointsPerStake,
			MaxStake:       maxStake,
			FreezePeriod:   freezePeriod,
			RewardsBump:    rewardsBump,
			Bump:           bump,
		}
		if err := ctx.Allocate(configKey(addr), addr, ctx.Sender(), &cfg); err != nil {
			return err
		}
		if err := p.rt.Tokens.CreateMint(env, rewardsMint, addr, rewardsDecimals); err != nil {
			return err
		}

		config = addr
		sdk.Log(fmt.Sprintf("sc|c:%s|pts:%d|max:%d|fp:%d", addr, pointsPerStake, maxStake, freezePeriod))
		return nil
	})
	if err != nil {
		return solana.PublicKey{}, err
	}
	return config, nil
}

// InitializeUser creates the caller's points ledger.
func (p *Program) InitializeUser(env sdk.Env) (solana.PublicKey, error) {
	var user solana.PublicKey
	err := p.rt.Atomic(func() error {
		ctx := contract.NewContext(p.rt, env)

		addr, bump, err := p.UserAddress(ctx.Sender())
		if err != nil {
			return err
		}
		rec := UserAccount{Bump: bump}
		if err := ctx.Allocate(userKey(addr), addr, ctx.Sender(), &rec); err != nil {
			return err
		}
		user = addr
		sdk.Log(fmt.Sprintf("su|u:%s|by:%s", addr, ctx.Sender()))
		return nil
	})
	if err != nil {
		return solana.PublicKey{}, err
	}
	return user, nil
}

// GetUser reads a staker's points ledger.
func (p *Program) GetUser(user solana.PublicKey) (*UserAccount, error) {
	addr, _, err := p.UserAddress(user)
	if err != nil {
		return nil, err
	}
	var rec UserAccount
	ctx := contract.NewContext(p.rt, sdk.Env{})
	if err := ctx.Load(userKey(addr), &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (p *Program) stakeProof(mint, config solana.PublicKey, bump uint8) *sdk.DerivedAuthority {
	return contract.Proof(p.ID, bump, seedStake, mint.Bytes(), config.Bytes())
}
