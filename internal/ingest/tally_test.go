package ingest

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/dao-indexer/internal/domain"
	"github.com/feral-file/dao-indexer/internal/store"
)

func TestAddVote(t *testing.T) {
	zero := store.Tally{For: big.NewInt(0), Against: big.NewInt(0)}

	apply, err := addVote(true, big.NewInt(40))
	require.NoError(t, err)
	next, err := apply(zero)
	require.NoError(t, err)
	assert.Equal(t, "40", next.For.String())
	assert.Equal(t, "0", next.Against.String())

	// The input tally is not mutated
	assert.Equal(t, "0", zero.For.String())

	apply, err = addVote(false, big.NewInt(15))
	require.NoError(t, err)
	next, err = apply(next)
	require.NoError(t, err)
	assert.Equal(t, "40", next.For.String())
	assert.Equal(t, "15", next.Against.String())
}

func TestAddVote_BeyondUint64(t *testing.T) {
	huge, ok := new(big.Int).SetString("115792089237316195423570985008687907853269984665640564039457584007913129639935", 10) // 2^256-1
	require.True(t, ok)

	tally := store.Tally{For: big.NewInt(0), Against: big.NewInt(0)}
	for i := 0; i < 3; i++ {
		apply, err := addVote(true, huge)
		require.NoError(t, err)
		tally, err = apply(tally)
		require.NoError(t, err)
	}

	want := new(big.Int).Mul(huge, big.NewInt(3))
	assert.Equal(t, want.String(), tally.For.String())
}

func TestAddVote_InvalidAmount(t *testing.T) {
	_, err := addVote(true, big.NewInt(-1))
	assert.ErrorIs(t, err, domain.ErrInvalidEvent)

	_, err = addVote(true, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidEvent)
}
