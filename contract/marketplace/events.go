package marketplace

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/Shubbu03/Q3-25-Builder-Shubbu03/sdk"
)

// emitInitialized pings watchers that a marketplace instance opened shop.
func emitInitialized(market solana.PublicKey, name string, feeBps uint16) {
	sdk.Log(fmt.Sprintf(
		"mi|m:%s|n:%s|fee:%d",
		market, name, feeBps,
	))
}

// emitListed logs a fresh escrow so indexers track the vault without diffing
// full storage.
func emitListed(listing, mint, maker solana.PublicKey, price uint64) {
	sdk.Log(fmt.Sprintf(
		"ml|l:%s|nft:%s|by:%s|p:%d",
		listing, mint, maker, price,
	))
}

// emitDelisted mirrors the listing ping for the maker pulling out.
func emitDelisted(listing, mint, maker solana.PublicKey) {
	sdk.Log(fmt.Sprintf(
		"md|l:%s|nft:%s|by:%s",
		listing, mint, maker,
	))
}

// emitPurchased carries both legs so settlement can be replayed from logs.
func emitPurchased(listing, mint, maker, taker solana.PublicKey, price, fee uint64) {
	sdk.Log(fmt.Sprintf(
		"mp|l:%s|nft:%s|from:%s|to:%s|p:%d|fee:%d",
		listing, mint, maker, taker, price, fee,
	))
}
