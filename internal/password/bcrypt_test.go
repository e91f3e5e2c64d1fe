package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasherRoundTrip(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)

	ok, err := h.Verify("correct horse", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify("wrong horse", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptHasherMalformedHash(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	ok, err := h.Verify("anything", "not-a-bcrypt-hash")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestNewBcryptHasherCost(t *testing.T) {
	tests := []struct {
		name string
		cost int
		want int
	}{
		{"zero takes default", 0, DefaultCost},
		{"below minimum clamps", 1, bcrypt.MinCost},
		{"above maximum clamps", 99, bcrypt.MaxCost},
		{"in range kept", 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewBcryptHasher(tt.cost)
			assert.Equal(t, tt.want, h.cost)
		})
	}
}

func TestDefaultCostApplied(t *testing.T) {
	if testing.Short() {
		t.Skip("hashing at the default cost is slow")
	}
	h := NewBcryptHasher(0)
	hash, err := h.Hash("some password")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, DefaultCost, cost)
}
