package cache

// ScopedKeyer wraps a Keyer with a prefix. The server scopes keys by catalog
// name so two catalogs that map the same kind to different classes never
// share a plan:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "catalog:expansion:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// PlanKey generates a prefixed plan key.
func (k *ScopedKeyer) PlanKey(behaviorsHash string, opts PlanKeyOpts) string {
	return k.prefix + k.inner.PlanKey(behaviorsHash, opts)
}
