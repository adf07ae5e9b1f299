package marketplace

import "github.com/gagliardetto/solana-go"

// Derivation seed tags keeping the marketplace's derived addresses apart.
var (
	seedMarketplace = []byte("marketplace")
	seedTreasury    = []byte("treasury")
	seedRewards     = []byte("rewards")
)

// Storage key prefixes.
const (
	// kMarketplace stores serialized Marketplace config records.
	kMarketplace byte = 0x01
	// kListing stores serialized Listing records.
	kListing byte = 0x02
)

// marketplaceKey builds the storage key for a config record by address.
func marketplaceKey(addr solana.PublicKey) string {
	var buf [33]byte
	buf[0] = kMarketplace
	copy(buf[1:], addr.Bytes())
	return string(buf[:])
}

// listingKey mirrors marketplaceKey under the listing prefix.
func listingKey(addr solana.PublicKey) string {
	var buf [33]byte
	buf[0] = kListing
	copy(buf[1:], addr.Bytes())
	return string(buf[:])
}
