package flexss

// Picker is the common contract every selection algorithm satisfies. A
// Picker is a single-owner mutable state machine: Pick, Register, and
// Unregister all require exclusive access, and callers serving requests
// concurrently must wrap a Picker in their own mutual-exclusion primitive.
//
// Pick is the only call that mutates picker-owned PRNG state; it is pure
// with respect to fleet membership, i.e. given identical fleet state,
// identical PRNG state, and an identical tenant, it returns identically.
type Picker interface {
	// Register upserts a backend's membership. A new id is inserted with
	// the given health; a known id has its health updated in place, with
	// its precomputed hash left untouched.
	Register(id BackendId, health Health)

	// Unregister removes a backend. It is a no-op if id is not present.
	Unregister(id BackendId)

	// Pick selects a backend for tenant, or reports false if no backend
	// is reachable by the algorithm's candidate set.
	Pick(tenant TenantId) (BackendId, bool)
}

// Builder constructs a fresh Picker. It exists so callers (the simulation
// harness, the CLI binaries) can be polymorphic over which algorithm they
// drive without switching on a string at every call site.
type Builder interface {
	Build() Picker
}

// BuilderFunc adapts a plain function to a Builder.
type BuilderFunc func() Picker

// Build implements Builder.
func (f BuilderFunc) Build() Picker { return f() }
