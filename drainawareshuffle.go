package flexss

import "math/rand"

// DrainAwareShuffle is NaiveShuffle made safe for rolling restarts: the
// candidate sequence excludes Draining backends before the partial
// shuffle, and the intra-shard pick additionally skips any non-Up
// candidate it encounters. The tradeoff is that every drain reshuffles
// shard composition, expanding each tenant's effective backend set over
// time and increasing blast radius — the explicit cost of surviving
// rolling restarts.
type DrainAwareShuffle struct {
	set *backendSet
	k   int
	rng *rand.Rand
}

var _ Picker = (*DrainAwareShuffle)(nil)

// NewDrainAwareShuffle constructs a DrainAwareShuffle picker with shard
// size k >= 1.
func NewDrainAwareShuffle(k int) *DrainAwareShuffle {
	if k < 1 {
		panic(ErrInvalidShardSize)
	}
	return &DrainAwareShuffle{
		set: newBackendSet(),
		k:   k,
		rng: rand.New(rand.NewSource(DefaultSeed)),
	}
}

// NewDrainAwareShuffleBuilder returns a Builder for DrainAwareShuffle.
func NewDrainAwareShuffleBuilder(k int) Builder {
	return BuilderFunc(func() Picker { return NewDrainAwareShuffle(k) })
}

func (p *DrainAwareShuffle) Register(id BackendId, health Health) { p.set.upsert(id, health) }
func (p *DrainAwareShuffle) Unregister(id BackendId)              { p.set.remove(id) }

func (p *DrainAwareShuffle) Pick(tenant TenantId) (BackendId, bool) {
	all := p.set.snapshot()
	candidates := make([]Backend, 0, len(all))
	for _, b := range all {
		if b.Health != Draining {
			candidates = append(candidates, b)
		}
	}

	n := len(candidates)
	if n == 0 {
		return 0, false
	}

	shardSize := p.k
	if shardSize > n {
		shardSize = n
	}

	partialFisherYates(candidates, shardSize, rand.New(rand.NewSource(int64(tenant))))
	shard := candidates[:shardSize]

	start := p.rng.Intn(shardSize)
	for i := 0; i < shardSize; i++ {
		b := shard[(start+i)%shardSize]
		if b.Health == Up {
			return b.Id, true
		}
	}

	return 0, false
}
