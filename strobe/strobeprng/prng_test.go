package strobeprng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dnsimmons/strobego/strobe"
)

func keyedStrobe(t *testing.T) strobe.Strobe {
	t.Helper()
	s := strobe.New([]byte("strobeprng test"), strobe.Sec128)
	s.KEY([]byte("a-sufficiently-long-test-key"), false)
	return s
}

func TestReadFillsNonZeroOutput(t *testing.T) {
	rng := New(keyedStrobe(t))

	out := make([]byte, 128)
	n, err := rng.Read(out)
	require.NoError(t, err)
	assert.Equal(t, 128, n)

	zero := make([]byte, 128)
	assert.NotEqual(t, zero, out)
}

func TestReadIsContinuousStream(t *testing.T) {
	rngOneShot := New(keyedStrobe(t))
	oneShot := make([]byte, 64)
	_, err := rngOneShot.Read(oneShot)
	require.NoError(t, err)

	rngSplit := New(keyedStrobe(t))
	part1 := make([]byte, 32)
	part2 := make([]byte, 32)
	_, err = rngSplit.Read(part1)
	require.NoError(t, err)
	_, err = rngSplit.Read(part2)
	require.NoError(t, err)

	assert.Equal(t, oneShot[:32], part1)
	assert.Equal(t, oneShot[32:], part2)
}

func TestIndependentReadersDoNotInterfere(t *testing.T) {
	seed := keyedStrobe(t)
	a := New(seed)
	b := New(seed)

	outA := make([]byte, 16)
	outB := make([]byte, 16)
	_, _ = a.Read(outA)
	_, _ = b.Read(outB)

	assert.Equal(t, outA, outB)
}

func TestReadEmptyBufferNoOp(t *testing.T) {
	rng := New(keyedStrobe(t))
	n, err := rng.Read(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
