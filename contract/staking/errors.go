package staking

import "errors"

var (
	// ErrMaxStaked rejects staking past the configured per-user cap.
	ErrMaxStaked = errors.New("max stake limit reached")
	// ErrTimeNotElapsed rejects unstaking inside the freeze period.
	ErrTimeNotElapsed = errors.New("time not elapsed for unstaking")
	// ErrNoRewardsToClaim rejects a claim with zero accrued points.
	ErrNoRewardsToClaim = errors.New("no rewards to claim")
	// ErrCollectionNotVerified rejects assets without a verified collection.
	ErrCollectionNotVerified = errors.New("collection not verified")
	// ErrNotOwner rejects an unstake by anyone but the staker.
	ErrNotOwner = errors.New("not the owner of this stake")
)
