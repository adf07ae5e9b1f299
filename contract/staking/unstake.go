package staking

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/Shubbu03/Q3-25-Builder-Shubbu03/contract"
	"github.com/Shubbu03/Q3-25-Builder-Shubbu03/sdk"
)

// Unstake thaws the asset once the freeze period elapsed, credits the points
// earned and destroys the stake record. Days staked beyond the freeze period
// keep earning.
func (p *Program) Unstake(env sdk.Env, mint solana.PublicKey) error {
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

		addr, _, err := p.StakeAddress(mint, config)
		if err != nil {
			return err
		}
		var rec StakeAccount
		if err := ctx.Load(stakeKey(addr), &rec); err != nil {
			return fmt.Errorf("stake account %s: %w", addr, err)
		}
		if !rec.Owner.Equals(user) {
			return fmt.Errorf("unstake %s: %w", mint, ErrNotOwner)
		}

		daysElapsed := uint32((env.Timestamp - rec.StakedAt) / secondsPerDay)
		if daysElapsed < cfg.FreezePeriod {
			return fmt.Errorf("unstake %s after %d days: %w", mint, daysElapsed, ErrTimeNotElapsed)
		}

		userAddr, _, err := p.UserAddress(user)
		if err != nil {
			return err
		}
		var acct UserAccount
		if err := ctx.Load(userKey(userAddr), &acct); err != nil {
			return fmt.Errorf("user account for %s: %w", user, err)
		}

		proof := p.stakeProof(mint, config, rec.Bump)
		if err := p.rt.Tokens.Thaw(env, mint, user, proof); err != nil {
			return err
		}
		if err := p.rt.Tokens.Revoke(env, mint, user); err != nil {
			return err
		}

		acct.Points += daysElapsed * uint32(cfg.PointsPerStake)
		acct.AmountStaked--
		if err := ctx.Store(userKey(userAddr), &acct); err != nil {
			return err
		}
		if err := ctx.Close(stakeKey(addr), addr, user); err != nil {
			return err
		}

		sdk.Log(fmt.Sprintf("sx|s:%s|nft:%s|days:%d", addr, mint, daysElapsed))
		return nil
	})
}
