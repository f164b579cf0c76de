package flexss

import "math/rand"

// BlockPicker deterministically partitions the (id-sorted) fleet into k
// contiguous blocks of bucket_size = n/k backends each. A tenant hashes to
// exactly one slot per block, giving it a k-slot shard with roughly
// uniform load when n is divisible by k. Trailing backends left over from
// n mod k != 0 fall outside every block and are unreachable: this is
// preserved as-is rather than "fixed", since it is unclear from observed
// behavior whether it is intended load shedding or an oversight.
//
// Blast radius under a rolling deploy is bounded to at most k buckets per
// tenant, but only as long as the deploy's stride happens to align with
// bucket boundaries.
type BlockPicker struct {
	set *backendSet
	k   int
	rng *rand.Rand
}

var _ Picker = (*BlockPicker)(nil)

// NewBlockPicker constructs a BlockPicker with shard size (block count) k
// >= 1.
func NewBlockPicker(k int) *BlockPicker {
	if k < 1 {
		panic(ErrInvalidShardSize)
	}
	return &BlockPicker{
		set: newBackendSet(),
		k:   k,
		rng: rand.New(rand.NewSource(DefaultSeed)),
	}
}

// NewBlockPickerBuilder returns a Builder for BlockPicker.
func NewBlockPickerBuilder(k int) Builder {
	return BuilderFunc(func() Picker { return NewBlockPicker(k) })
}

func (p *BlockPicker) Register(id BackendId, health Health) { p.set.upsert(id, health) }
func (p *BlockPicker) Unregister(id BackendId)              { p.set.remove(id) }

func (p *BlockPicker) Pick(tenant TenantId) (BackendId, bool) {
	seq := p.set.backends
	n := len(seq)
	bucketSize := n / p.k
	if bucketSize == 0 {
		return 0, false
	}

	b0 := p.rng.Intn(p.k)
	for i := 0; i < p.k; i++ {
		bucket := (b0 + i) % p.k

		local := rand.New(rand.NewSource(int64(tenant) ^ int64(bucket)))
		slot := local.Intn(bucketSize)

		candidate := seq[bucket*bucketSize+slot]
		if candidate.Health == Up {
			return candidate.Id, true
		}
	}

	return 0, false
}
