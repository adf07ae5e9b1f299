package staking

import "github.com/gagliardetto/solana-go"

// StakeConfig is the singleton program config.
type StakeConfig struct {
	PointsPerStake uint8  `json:"points_per_stake"`
	MaxStake       uint8  `json:"max_stake"`
	FreezePeriod   uint32 `json:"freeze_period"` // days the asset stays frozen
	RewardsBump    uint8  `json:"rewards_bump"`
	Bump           uint8  `json:"bump"`
}

// UserAccount accumulates a staker's points across stakes.
type UserAccount struct {
	Points       uint32 `json:"points"`
	AmountStaked uint8  `json:"amount_staked"`
	Bump         uint8  `json:"bump"`
}

// StakeAccount pins one staked asset. Its derivation doubles as the freeze
// delegate over the holder's token account, so the asset never leaves the
// holder's custody while staked - it just cannot move.
type StakeAccount struct {
	Owner    solana.PublicKey `json:"owner"`
	Mint     solana.PublicKey `json:"mint"`
	StakedAt int64            `json:"staked_at"`
	Bump     uint8            `json:"bump"`
}
