package flexss

import "math/rand"

// DefaultSeed is the compile-time PRNG seed used by every picker's
// picker-owned (non-tenant) random generator, documented as part of the
// contract so runs are reproducible across processes.
const DefaultSeed = 42

// NaiveShuffle shards each tenant to k backends by partially Fisher-Yates
// shuffling the fleet with a PRNG seeded from the tenant id, then picking
// uniformly among the first k positions with the picker-owned PRNG.
//
// It does not consult health when choosing inside the shard: if the
// chosen slot is Down, NaiveShuffle returns that Down id anyway, and
// relies on the caller to mark it via Register(id, Down) before the next
// pick. A poison-pill tenant can therefore only down backends within its
// own shard, never outside it — but if a tenant's whole shard ends up
// Draining (e.g. during a deploy), every pick returns a Draining backend. See
// DrainAwareShuffle for the fix.
type NaiveShuffle struct {
	set *backendSet
	k   int
	rng *rand.Rand
}

var _ Picker = (*NaiveShuffle)(nil)

// NewNaiveShuffle constructs a NaiveShuffle picker with shard size k >= 1.
func NewNaiveShuffle(k int) *NaiveShuffle {
	if k < 1 {
		panic(ErrInvalidShardSize)
	}
	return &NaiveShuffle{
		set: newBackendSet(),
		k:   k,
		rng: rand.New(rand.NewSource(DefaultSeed)),
	}
}

// NewNaiveShuffleBuilder returns a Builder for NaiveShuffle.
func NewNaiveShuffleBuilder(k int) Builder {
	return BuilderFunc(func() Picker { return NewNaiveShuffle(k) })
}

func (p *NaiveShuffle) Register(id BackendId, health Health) { p.set.upsert(id, health) }
func (p *NaiveShuffle) Unregister(id BackendId)              { p.set.remove(id) }

func (p *NaiveShuffle) Pick(tenant TenantId) (BackendId, bool) {
	seq := p.set.snapshot()
	n := len(seq)
	if n == 0 {
		return 0, false
	}

	shardSize := p.k
	if shardSize > n {
		shardSize = n
	}

	partialFisherYates(seq, shardSize, rand.New(rand.NewSource(int64(tenant))))

	idx := p.rng.Intn(shardSize)
	return seq[idx].Id, true
}

// partialFisherYates shuffles only the first k positions of seq in place,
// using the standard Fisher-Yates derivation restricted to a prefix: for
// each position i, swap it with a uniformly chosen position in [i, n).
func partialFisherYates(seq []Backend, k int, r *rand.Rand) {
	n := len(seq)
	for i := 0; i < k; i++ {
		j := i + r.Intn(n-i)
		seq[i], seq[j] = seq[j], seq[i]
	}
}
