package sdk

// State is the contract key-value storage boundary.
type State interface {
	Set(key, value string)
	Get(key string) *string
	Delete(key string)
}

// Snapshotter is implemented by hosts that can roll a store back to an
// earlier point. The runtime uses it to make every call all-or-nothing.
type Snapshotter interface {
	Snapshot() any
	Restore(snap any)
}
