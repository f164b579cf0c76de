package sim

import (
	"testing"

	"github.com/ryanpbrewster/flexss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Load distribution: with 50 backends, 100 tenants, 100 picks each,
// every backend receives >= 20% of the fair share T*picks/n.
func Test_LoadDistribution(t *testing.T) {
	const (
		backends      = 50
		tenants       = 100
		picksPerTenant = 100
		k             = 10
	)

	for name, b := range loadBalancedBuilders(k) {
		t.Run(name, func(t *testing.T) {
			f := newFleet(b.Build())
			f.seed(backends)

			tally := make(map[flexss.BackendId]int, backends)
			for tenant := flexss.TenantId(0); tenant < tenants; tenant++ {
				for i := 0; i < picksPerTenant; i++ {
					got, ok := f.pick(tenant)
					require.True(t, ok)
					tally[got]++
				}
			}

			fairShare := float64(tenants*picksPerTenant) / float64(backends)
			for id := flexss.BackendId(0); id < backends; id++ {
				assert.GreaterOrEqual(t, float64(tally[id]), 0.2*fairShare,
					"%s: backend %d got %d picks, fair share is %.1f", name, id, tally[id], fairShare)
			}
		})
	}
}
