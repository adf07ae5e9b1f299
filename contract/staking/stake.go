package staking

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/Shubbu03/Q3-25-Builder-Shubbu03/contract"
	"github.com/Shubbu03/Q3-25-Builder-Shubbu03/sdk"
)

// Stake pins the caller's asset: the stake record becomes delegate over the
// holder's custody account and immediately freezes it. The asset stays put;
// it just cannot move until unstake thaws it.
func (p *Program) Stake(env sdk.Env, mint, collection solana.PublicKey) (solana.PublicKey, error) {
	var stake solana.PublicKey
	err := p.rt.Atomic(func() error {
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
		if acct.AmountStaked >= cfg.MaxStake {
			return fmt.Errorf("stake %s: %w", mint, ErrMaxStaked)
		}

		col, ok := p.rt.Metadata.Collection(mint)
		if !ok || !col.Verified || !col.Key.Equals(collection) {
			return fmt.Errorf("stake %s: %w", mint, ErrCollectionNotVerified)
		}

		addr, bump, err := p.StakeAddress(mint, config)
		if err != nil {
			return err
		}
		rec := StakeAccount{Owner: user, Mint: mint, StakedAt: env.Timestamp, Bump: bump}
		if err := ctx.Allocate(stakeKey(addr), addr, user, &rec); err != nil {
			return err
		}

		if err := p.rt.Tokens.Approve(env, mint, user, addr, 1); err != nil {
			return err
		}
		proof := p.stakeProof(mint, config, bump)
		if err := p.rt.Tokens.Freeze(env, mint, user, proof); err != nil {
			return err
		}

		acct.AmountStaked++
		if err := ctx.Store(userKey(userAddr), &acct); err != nil {
			return err
		}

		stake = addr
		sdk.Log(fmt.Sprintf("ss|s:%s|nft:%s|by:%s", addr, mint, user))
		return nil
	})
	if err != nil {
		return solana.PublicKey{}, err
	}
	return stake, nil
}
