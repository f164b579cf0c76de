package flexss

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Rendezvous_determinism(t *testing.T) {
	run := func() BackendId {
		p := NewRendezvous(1)
		newFleetOf(p, 20)
		got, ok := p.Pick(42)
		require.True(t, ok)
		return got
	}

	assert.Equal(t, run(), run())
}

func Test_Rendezvous_sameTenantStableBackend(t *testing.T) {
	p := NewRendezvous(1)
	newFleetOf(p, 20)

	first, ok := p.Pick(5)
	require.True(t, ok)

	for i := 0; i < 10; i++ {
		got, ok := p.Pick(5)
		require.True(t, ok)
		assert.Equal(t, first, got, "every tenant has exactly one reachable backend at any instant")
	}
}

// This is the documented failure mode: a poisoned backend drains all
// tenants that hash to it, unlike the sharded pickers.
func Test_Rendezvous_poisonPillDrainsFleet(t *testing.T) {
	p := NewRendezvous(1)
	newFleetOf(p, 10)

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
	assert.Equal(t, 0, upCount)
}

func Test_Rendezvous_emptyFleet(t *testing.T) {
	p := NewRendezvous(1)
	_, ok := p.Pick(1)
	assert.False(t, ok)
}

// Recycle blast radius: replacing the fleet one id at a time, a
// single tenant's touched set never exceeds the fleet size.
func Test_Rendezvous_recycleBlastRadius(t *testing.T) {
	p := NewRendezvous(1)
	newFleetOf(p, 30)

	touched := map[BackendId]struct{}{}
	for i := 0; i < 30; i++ {
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

	assert.LessOrEqual(t, len(touched), 30)
}
