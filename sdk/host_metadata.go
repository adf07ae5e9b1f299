package sdk

import "github.com/gagliardetto/solana-go"

// MemMetadata is the in-memory provenance registry. The contract side only
// ever reads it; SetCollection exists for the host seeding assets.
type MemMetadata struct {
	collections map[solana.PublicKey]Collection
}

func NewMemMetadata() *MemMetadata {
	return &MemMetadata{collections: make(map[solana.PublicKey]Collection)}
}

// SetCollection records mint's collection membership. Host-side only.
func (m *MemMetadata) SetCollection(mint, collection solana.PublicKey, verified bool) {
	m.collections[mint] = Collection{Key: collection, Verified: verified}
}

func (m *MemMetadata) Collection(mint solana.PublicKey) (Collection, bool) {
	col, ok := m.collections[mint]
	return col, ok
}

func (m *MemMetadata) Snapshot() any {
	cp := make(map[solana.PublicKey]Collection, len(m.collections))
	for k, v := range m.collections {
		cp[k] = v
	}
	return cp
}

func (m *MemMetadata) Restore(snap any) {
	m.collections = snap.(map[solana.PublicKey]Collection)
}
