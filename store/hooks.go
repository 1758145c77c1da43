package store

// Hooks are lightweight callbacks for high-signal events. The store calls them
// inline on the read/write path, so implementations must be cheap and
// non-blocking (wrap slow ones in hooks/async).
type Hooks interface {
	// An entry was deleted on read.
	// reason ∈ {"corrupt", "invalid_base2", "too_large", "value_decode"}
	SelfHeal(storageKey, reason string)

	// Provider returned ok=false on Set (backpressure/eviction).
	SetRejected(storageKey string)

	// Provider returned an error. op ∈ {"get", "set", "del"}
	ProviderError(op, storageKey string, err error)
}

// NopHooks is the default no-op.
type NopHooks struct{}

func (NopHooks) SelfHeal(string, string)             {}
func (NopHooks) SetRejected(string)                  {}
func (NopHooks) ProviderError(string, string, error) {}
