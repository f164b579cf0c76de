package fleethash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Murmur3_Hash64_deterministic(t *testing.T) {
	h := NewMurmur3(0)
	assert.Equal(t, h.Hash64(42), h.Hash64(42))
	assert.NotEqual(t, h.Hash64(42), h.Hash64(43))
}

func Test_Murmur3_Hash64_seedChangesOutput(t *testing.T) {
	a := NewMurmur3(0)
	b := NewMurmur3(1)
	assert.NotEqual(t, a.Hash64(42), b.Hash64(42))
}

func Test_Murmur3_HashBytes_matchesHash64ForEncodedId(t *testing.T) {
	h := NewMurmur3(7)
	buf := [8]byte{9, 0, 0, 0, 0, 0, 0, 0}
	assert.Equal(t, h.HashBytes(buf[:]), h.Hash64(9))
}
