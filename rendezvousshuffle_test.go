package flexss

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_RendezvousShuffle_panicsWhenFleetSmallerThanK(t *testing.T) {
	p := NewRendezvousShuffle(5)
	newFleetOf(p, 3)

	assert.Panics(t, func() { p.Pick(1) })
}

func Test_RendezvousShuffle_registerDrainingRemoves(t *testing.T) {
	p := NewRendezvousShuffle(3)
	newFleetOf(p, 10)

	p.Register(4, Draining)
	_, found := p.set.pos[4]
	assert.False(t, found, "Draining must remove the backend, not just mark it")
	assert.Equal(t, 9, p.set.len())
}

func Test_RendezvousShuffle_determinism(t *testing.T) {
	run := func() []BackendId {
		p := NewRendezvousShuffle(5)
		newFleetOf(p, 20)
		var seq []BackendId
		for i := 0; i < 50; i++ {
			got, _ := p.Pick(11)
			seq = append(seq, got)
		}
		return seq
	}

	assert.Equal(t, run(), run())
}

func Test_RendezvousShuffle_shardContainment(t *testing.T) {
	p := NewRendezvousShuffle(6)
	newFleetOf(p, 30)

	touched := map[BackendId]struct{}{}
	for i := 0; i < 500; i++ {
		got, ok := p.Pick(7)
		require.True(t, ok)
		touched[got] = struct{}{}
	}

	assert.LessOrEqual(t, len(touched), 6)
}

// Poison pill isolation: a tenant can only down backends within its
// own shard, so some backends must survive.
func Test_RendezvousShuffle_poisonPillIsolation(t *testing.T) {
	p := NewRendezvousShuffle(5)
	newFleetOf(p, 30)

	for i := 0; i < 1000; i++ {
		got, ok := p.Pick(0)
		if !ok {
			break
		}
		p.Register(got, Down)
	}

	upCount := 0
	for _, b := range p.set.backends {
		if b.Health == Up {
			upCount++
		}
	}
	assert.Greater(t, upCount, 0)
}

// Rolling restart: repeatedly draining thirds of the fleet and
// restoring them, no pick ever returns a non-Up backend, because Draining
// removes the backend outright rather than merely marking it.
func Test_RendezvousShuffle_rollingRestart(t *testing.T) {
	const n = 30
	p := NewRendezvousShuffle(6)
	newFleetOf(p, n)

	third := n / 3
	for round := 0; round < 3; round++ {
		for i := round * third; i < (round+1)*third; i++ {
			p.Register(BackendId(i), Draining)
		}

		for tenant := TenantId(0); tenant < 200; tenant++ {
			got, ok := p.Pick(tenant)
			if !ok {
				continue
			}
			b := p.set.backends[p.set.pos[got]]
			assert.Equal(t, Up, b.Health)
		}

		for i := round * third; i < (round+1)*third; i++ {
			p.Register(BackendId(i), Up)
		}
	}
}

// Recycle blast radius: RendezvousShuffle, k=6, 30
// backends initially; recycle one-by-one to fresh ids; tenant 0 touches
// at most 30 distinct backends over the full recycle.
func Test_RendezvousShuffle_recycleBlastRadius(t *testing.T) {
	const n = 30
	p := NewRendezvousShuffle(6)
	newFleetOf(p, n)

	touched := map[BackendId]struct{}{}
	for i := 0; i < n; i++ {
		got, ok := p.Pick(0)
		if ok {
			touched[got] = struct{}{}
		}

		fresh := BackendId(1000 + i)
		p.Register(fresh, Up)
		p.Unregister(BackendId(i))

		got, ok = p.Pick(0)
		if ok {
			touched[got] = struct{}{}
		}
	}

	assert.LessOrEqual(t, len(touched), n)
}

func Test_RendezvousShuffle_loadDistribution(t *testing.T) {
	const backends = 50
	const tenants = 100
	const picksPerTenant = 100

	p := NewRendezvousShuffle(10)
	newFleetOf(p, backends)

	tally := make(map[BackendId]int, backends)
	for tenant := TenantId(0); tenant < tenants; tenant++ {
		for i := 0; i < picksPerTenant; i++ {
			got, ok := p.Pick(tenant)
			require.True(t, ok)
			tally[got]++
		}
	}

	fairShare := float64(tenants*picksPerTenant) / float64(backends)
	for id := BackendId(0); id < backends; id++ {
		assert.GreaterOrEqual(t, float64(tally[id]), 0.2*fairShare,
			"backend %d got %d picks, fair share is %.1f", id, tally[id], fairShare)
	}
}
