package flexss

import (
	"container/heap"
	"math/rand"

	"github.com/ryanpbrewster/flexss/internal/fleethash"
)

// RendezvousShuffle is the preferred picker: it achieves bounded blast
// radius under rolling deploys, survival of fleet recycling, poison-pill
// isolation, and acceptable load balance simultaneously. A tenant's shard
// is the k backends with the smallest Combine(hash(tenant), backend.Hash)
// score; picks choose uniformly among the Up members of that shard.
//
// Registering a backend as Draining removes it from the picker entirely,
// as if Unregister had been called — unlike every other picker, draining
// is a membership change here, not a health change. This is intentional:
// an entry whose score is computed but then disqualified would still
// shift the composition of the top-k set and defeat the bounded-blast-
// radius guarantee. Do not unify this with the other pickers' drain
// handling; doing so breaks the recycle blast-radius property.
type RendezvousShuffle struct {
	set     *backendSet
	k       int
	rng     *rand.Rand
	scratch scoredHeap
}

var _ Picker = (*RendezvousShuffle)(nil)

// NewRendezvousShuffle constructs a RendezvousShuffle picker with shard
// size k >= 1.
func NewRendezvousShuffle(k int) *RendezvousShuffle {
	if k < 1 {
		panic(ErrInvalidShardSize)
	}
	return &RendezvousShuffle{
		set:     newBackendSet(),
		k:       k,
		rng:     rand.New(rand.NewSource(DefaultSeed)),
		scratch: make(scoredHeap, 0, k),
	}
}

// NewRendezvousShuffleBuilder returns a Builder for RendezvousShuffle.
func NewRendezvousShuffleBuilder(k int) Builder {
	return BuilderFunc(func() Picker { return NewRendezvousShuffle(k) })
}

func (p *RendezvousShuffle) Register(id BackendId, health Health) {
	if health == Draining {
		p.set.remove(id)
		return
	}
	p.set.upsert(id, health)
}

func (p *RendezvousShuffle) Unregister(id BackendId) { p.set.remove(id) }

// Pick implements the streaming min-heap realization of the top-k
// selection described in the algorithm's design notes: a max-heap of at
// most k entries (keyed by score, ties broken toward the larger
// BackendId) is kept, and the current worst entry is replaced whenever a
// smaller-or-tied-but-larger-id candidate is seen. This is O(n log k),
// preferred over an O(n) partial-sort when k is much smaller than the
// fleet.
func (p *RendezvousShuffle) Pick(tenant TenantId) (BackendId, bool) {
	n := p.set.len()
	if n < p.k {
		panic(ErrFleetTooSmall)
	}

	th := stableHash.Hash64(uint64(tenant))

	p.scratch = p.scratch[:0]
	for _, b := range p.set.backends {
		cand := scoredBackend{backend: b, score: fleethash.Combine(th, b.Hash)}
		if len(p.scratch) < p.k {
			p.scratch = append(p.scratch, cand)
			if len(p.scratch) == p.k {
				heap.Init(&p.scratch)
			}
			continue
		}

		if cand.less(p.scratch[0]) {
			p.scratch[0] = cand
			heap.Fix(&p.scratch, 0)
		}
	}

	healthy := 0
	for _, c := range p.scratch {
		if c.backend.Health == Up {
			healthy++
		}
	}
	if healthy == 0 {
		return 0, false
	}

	target := p.rng.Intn(healthy)
	seen := 0
	for _, c := range p.scratch {
		if c.backend.Health != Up {
			continue
		}
		if seen == target {
			return c.backend.Id, true
		}
		seen++
	}

	// unreachable: target < healthy and the loop above visits exactly
	// healthy Up candidates.
	return 0, false
}

type scoredBackend struct {
	backend Backend
	score   uint64
}

// less reports whether a ranks before b in the smallest-k ordering:
// smaller score first, ties broken by the larger BackendId (so that of
// two tied candidates, the larger id is the one kept in the shard).
func (a scoredBackend) less(b scoredBackend) bool {
	if a.score != b.score {
		return a.score < b.score
	}
	return a.backend.Id > b.backend.Id
}

// scoredHeap is a max-heap over scoredBackend's less ordering, so its
// root (index 0) is always the worst (largest) of the current top-k
// candidates — the one to evict when a smaller-scored candidate arrives.
type scoredHeap []scoredBackend

func (h scoredHeap) Len() int { return len(h) }
func (h scoredHeap) Less(i, j int) bool {
	// i before j in a max-heap means i is "larger" under our ordering.
	return h[j].less(h[i])
}
func (h scoredHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *scoredHeap) Push(x any)   { *h = append(*h, x.(scoredBackend)) }
func (h *scoredHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
