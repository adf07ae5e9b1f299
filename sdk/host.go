package sdk

// Host bundles the in-memory collaborators plus the handles tests and the
// demo binary need for seeding balances and provenance records.
type Host struct {
	*Runtime

	State    *MemState
	System   *MemSystem
	Tokens   *MemTokens
	Metadata *MemMetadata
}

// NewMemoryHost builds a fully in-memory host, the moral equivalent of the
// local test validator the original programs ran against.
func NewMemoryHost() *Host {
	state := NewMemState()
	system := NewMemSystem()
	tokens := NewMemTokens(system)
	metadata := NewMemMetadata()
	return &Host{
		Runtime:  NewRuntime(state, system, tokens, metadata),
		State:    state,
		System:   system,
		Tokens:   tokens,
		Metadata: metadata,
	}
}
