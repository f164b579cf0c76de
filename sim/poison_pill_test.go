package sim

import (
	"testing"

	"github.com/ryanpbrewster/flexss"
	"github.com/stretchr/testify/assert"
)

// Poison-pill isolation: starting with all backends Up, issue up to
// 1000 picks for tenant 0, marking each returned backend Down. For the
// sharded pickers, some backends must survive (the tenant can only down
// its own shard). For RoundRobin and Rendezvous, the opposite holds: this
// drains the whole fleet, which is the documented failure mode.
func Test_PoisonPillIsolation_shardedSurvives(t *testing.T) {
	const k = 5
	const n = 30

	for name, b := range shardedBuilders(k) {
		t.Run(name, func(t *testing.T) {
			f := newFleet(b.Build())
			f.seed(n)
			poison(f, 1000)

			assert.Greater(t, f.upCount(), 0,
				"%s: expected poison-pill isolation to leave survivors", name)
		})
	}
}

func Test_PoisonPillIsolation_unshardedDrains(t *testing.T) {
	const k = 5
	const n = 30

	for name, b := range map[string]flexss.Builder{
		"RoundRobin": flexss.NewRoundRobinBuilder(k),
		"Rendezvous": flexss.NewRendezvousBuilder(k),
	} {
		t.Run(name, func(t *testing.T) {
			f := newFleet(b.Build())
			f.seed(n)
			poison(f, 1000)

			assert.Equal(t, 0, f.upCount(),
				"%s: this is the documented failure mode, the whole fleet should drain", name)
		})
	}
}

func poison(f *fleet, maxPicks int) {
	for i := 0; i < maxPicks; i++ {
		got, ok := f.pick(0)
		if !ok {
			return
		}
		f.register(got, flexss.Down)
	}
}
