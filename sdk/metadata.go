package sdk

import "github.com/gagliardetto/solana-go"

// Collection is an asset's provenance record: which collection it claims and
// whether that claim was verified by the collection authority.
type Collection struct {
	Key      solana.PublicKey
	Verified bool
}

// MetadataRegistry is the read-only provenance collaborator.
type MetadataRegistry interface {
	// Collection returns the provenance record for mint. ok is false when no
	// record exists at all.
	Collection(mint solana.PublicKey) (col Collection, ok bool)
}
