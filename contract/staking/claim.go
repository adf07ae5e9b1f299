package staking

import (
	"fmt"

	"github.com/Shubbu03/Q3-25-Builder-Shubbu03/contract"
	"github.com/Shubbu03/Q3-25-Builder-Shubbu03/sdk"
)

// ClaimRewards mints the caller's accrued points as reward tokens and zeroes
// the counter. The config derivation is the mint authority, so only this
// program can ever emit supply.
func (p *Program) ClaimRewards(env sdk.Env) error {
	return p.rt.Atomic(func() error {
		ctx := contract.NewContext(p.rt, env)
		user := ctx.Sender()

		config, _, err := p.ConfigAddress()
		if err != nil {
			return err
		}
		var cfg StakeConfig
		if err := ctx.Load(configKey(config), &cfg); err != nil {
			return fmt.Errorf("stake config: %w", err)
		}

		userAddr, _, err := p.UserAddress(user)
		if err != nil {
			return err
		}
		var acct UserAccount
		if err := ctx.Load(userKey(userAddr), &acct); err != nil {
			return fmt.Errorf("user account for %s: %w", user, err)
		}
		if acct.Points == 0 {
			return fmt.Errorf("claim by %s: %w", user, ErrNoRewardsToClaim)
		}

		rewardsMint, _, err := p.RewardsMintAddress(config)
		if err != nil {
			return err
		}
		if _, err := p.rt.Tokens.EnsureAccount(env, user, rewardsMint, user); err != nil {
			return err
		}
		proof := contract.Proof(p.ID, cfg.Bump, seedConfig)
		if err := p.rt.Tokens.MintTo(env, rewardsMint, user, uint64(acct.Points), proof); err != nil {
			return err
		}

		claimed := acct.Points
		acct.Points = 0
		if err := ctx.Store(userKey(userAddr), &acct); err != nil {
			return err
		}

		sdk.Log(fmt.Sprintf("sr|by:%s|pts:%d", user, claimed))
		return nil
	})
}
