package staking

import "github.com/gagliardetto/solana-go"

var (
	seedConfig  = []byte("config")
	seedUser    = []byte("user")
	seedStake   = []byte("stake")
	seedRewards = []byte("rewards")
)

// Storage key prefixes.
const (
	// kConfig stores the StakeConfig singleton.
	kConfig byte = 0x01
	// kUser stores UserAccount records.
	kUser byte = 0x02
	// kStake stores StakeAccount records.
	kStake byte = 0x03
)

func configKey(addr solana.PublicKey) string {
	var buf [33]byte
	buf[0] = kConfig
	copy(buf[1:], addr.Bytes())
	return string(buf[:])
}

func userKey(addr solana.PublicKey) string {
	var buf [33]byte
	buf[0] = kUser
	copy(buf[1:], addr.Bytes())
	return string(buf[:])
}

func stakeKey(addr solana.PublicKey) string {
	var buf [33]byte
	buf[0] = kStake
	copy(buf[1:], addr.Bytes())
	return string(buf[:])
}
