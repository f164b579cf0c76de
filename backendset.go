package flexss

import (
	"sort"

	"github.com/ryanpbrewster/flexss/internal/fleethash"
)

// stableHash is the identifier hash every backendSet and the Rendezvous
// family score against. It defaults to the xxhash-backed Stable, but a
// caller (flexctl's --hash flag, namely) can swap it before registering
// any backend via SetHashFunc.
var stableHash fleethash.Func = fleethash.Stable{}

// SetHashFunc overrides the package-wide identifier hash used by every
// picker. It must be called, if at all, before any backend is registered
// with any picker: backend hashes are computed once at registration time
// and never recomputed, so switching hash functions mid-fleet would leave
// a mix of scores from two different functions.
func SetHashFunc(f fleethash.Func) {
	stableHash = f
}

// backendSet is the shared sorted-by-id backend storage used by every
// picker except RoundRobin (which keeps its own unsorted slice in
// registration order, except that Unregister moves the last backend into
// the freed slot). Keeping the set sorted means a picker's view of the fleet is
// determined purely by the multiset of currently-registered ids, never by
// the order register/unregister calls arrived in.
type backendSet struct {
	backends []Backend
	pos      map[BackendId]int
}

func newBackendSet() *backendSet {
	return &backendSet{pos: make(map[BackendId]int)}
}

// upsert inserts a new backend (hash computed once, here) or updates the
// health of a known one, leaving its hash untouched.
func (s *backendSet) upsert(id BackendId, health Health) {
	if i, ok := s.pos[id]; ok {
		s.backends[i].Health = health
		return
	}

	i := sort.Search(len(s.backends), func(i int) bool { return s.backends[i].Id >= id })
	s.backends = append(s.backends, Backend{})
	copy(s.backends[i+1:], s.backends[i:])
	s.backends[i] = Backend{Id: id, Health: health, Hash: stableHash.Hash64(uint64(id))}
	s.reindexFrom(i)
}

// remove deletes a backend, no-op if absent.
func (s *backendSet) remove(id BackendId) {
	i, ok := s.pos[id]
	if !ok {
		return
	}

	s.backends = append(s.backends[:i], s.backends[i+1:]...)
	delete(s.pos, id)
	s.reindexFrom(i)
}

func (s *backendSet) reindexFrom(i int) {
	for j := i; j < len(s.backends); j++ {
		s.pos[s.backends[j].Id] = j
	}
}

func (s *backendSet) len() int { return len(s.backends) }

// snapshot returns a copy of the sorted backend sequence, safe for a
// caller to shuffle or partition without disturbing the set's own order.
func (s *backendSet) snapshot() []Backend {
	out := make([]Backend, len(s.backends))
	copy(out, s.backends)
	return out
}
