package flexss

// RoundRobin is tenant-agnostic rotating selection: every tenant shares the
// same cursor into the fleet. It is the baseline the other algorithms
// improve on; it demonstrates why tenant-agnostic selection is vulnerable
// to poison-pill tenants (a single bad tenant can down the whole fleet,
// see the poison-pill scenario in package sim) and has unlimited blast
// radius during rolling deploys.
type RoundRobin struct {
	backends []Backend
	index    map[BackendId]int
	idx      int
}

var _ Picker = (*RoundRobin)(nil)

// NewRoundRobin constructs a RoundRobin picker. k is accepted for
// uniformity with the other algorithms' constructors but ignored: shard
// size has no meaning for a tenant-agnostic picker.
func NewRoundRobin(k int) *RoundRobin {
	if k < 1 {
		panic(ErrInvalidShardSize)
	}
	return &RoundRobin{
		index: make(map[BackendId]int),
	}
}

// NewRoundRobinBuilder returns a Builder for RoundRobin.
func NewRoundRobinBuilder(k int) Builder {
	return BuilderFunc(func() Picker { return NewRoundRobin(k) })
}

func (r *RoundRobin) Register(id BackendId, health Health) {
	if pos, ok := r.index[id]; ok {
		r.backends[pos].Health = health
		return
	}

	r.index[id] = len(r.backends)
	r.backends = append(r.backends, Backend{Id: id, Health: health})
}

func (r *RoundRobin) Unregister(id BackendId) {
	pos, ok := r.index[id]
	if !ok {
		return
	}

	last := len(r.backends) - 1
	r.backends[pos] = r.backends[last]
	r.index[r.backends[pos].Id] = pos
	r.backends = r.backends[:last]
	delete(r.index, id)

	if r.idx > last {
		r.idx = 0
	}
}

// Pick advances the shared cursor before inspecting a candidate, so the
// very first Pick call returns the backend at index 1, not 0. This is
// intentional: it is preserved for determinism parity rather than
// "fixed", since changing it would silently change every recorded
// regression sequence.
func (r *RoundRobin) Pick(_ TenantId) (BackendId, bool) {
	n := len(r.backends)
	if n == 0 {
		return 0, false
	}

	for i := 0; i < n; i++ {
		r.idx = (r.idx + 1) % n
		b := r.backends[r.idx]
		if b.Health == Up {
			return b.Id, true
		}
	}

	return 0, false
}
