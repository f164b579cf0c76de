package flexss

import (
	"testing"

	"github.com/ryanpbrewster/flexss/internal/fleethash"
	"github.com/stretchr/testify/assert"
)

func Test_SetHashFunc_changesBackendHash(t *testing.T) {
	defer SetHashFunc(fleethash.Stable{})

	SetHashFunc(fleethash.Stable{})
	set := newBackendSet()
	set.upsert(1, Up)
	stableScore := set.backends[0].Hash

	SetHashFunc(fleethash.NewMurmur3(0))
	set2 := newBackendSet()
	set2.upsert(1, Up)
	murmurScore := set2.backends[0].Hash

	assert.NotEqual(t, stableScore, murmurScore)
}
