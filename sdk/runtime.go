package sdk

import "sync"

// Runtime bundles the collaborators a program executes against and supplies
// the transactional envelope: each call runs alone and either commits every
// effect or none of them. The programs themselves keep no locks and no
// mutable globals, so isolation is entirely the host's problem.
type Runtime struct {
	State    State
	System   SystemLedger
	Tokens   TokenLedger
	Metadata MetadataRegistry

	mu sync.Mutex
}

// NewRuntime wires explicit collaborators, e.g. adapters over a real ledger.
func NewRuntime(state State, system SystemLedger, tokens TokenLedger, metadata MetadataRegistry) *Runtime {
	return &Runtime{State: state, System: system, Tokens: tokens, Metadata: metadata}
}

// Atomic runs fn as one unit of work. Stores that can snapshot are captured
// first and restored when fn fails, so a failing sub-call discards every
// effect accumulated in the invocation.
func (r *Runtime) Atomic(fn func() error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	type taken struct {
		store Snapshotter
		snap  any
	}
	var snaps []taken
	for _, s := range []any{r.State, r.System, r.Tokens, r.Metadata} {
		if ss, ok := s.(Snapshotter); ok {
			snaps = append(snaps, taken{ss, ss.Snapshot()})
		}
	}

	if err := fn(); err != nil {
		for _, t := range snaps {
			t.store.Restore(t.snap)
		}
		return err
	}
	return nil
}
