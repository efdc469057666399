package vector_math

import (
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const propertyRuns = 200

// tolerance used for results that went through more than one rounding step
const eps = 1e-4

func newRng() *rand.Rand {
	return rand.New(rand.NewPCG(0x5eed, 0xcafe))
}

func rngFloat(r *rand.Rand) float32 {
	return r.Float32()*20 - 10
}

func nan() float32 {
	return float32(math.NaN())
}

func inf(sign int) float32 {
	return float32(math.Inf(sign))
}

// parseComponents reads back a "(a, b, ...)" string produced by String.
func parseComponents(t *testing.T, s string) []float32 {
	t.Helper()
	require.True(t, strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")"), "not parenthesised: %q", s)
	parts := strings.Split(s[1:len(s)-1], ", ")
	out := make([]float32, len(parts))
	for i, p := range parts {
		f, err := strconv.ParseFloat(p, 32)
		require.NoError(t, err, "component %d of %q", i, s)
		out[i] = float32(f)
	}
	return out
}

func requireAllZero(t *testing.T, w View) {
	t.Helper()
	for i := 0; i < w.Len(); i++ {
		c := w.At(i)
		require.False(t, math.IsNaN(float64(c)), "component %d is NaN", i)
		require.False(t, math.IsInf(float64(c), 0), "component %d is infinite", i)
		require.Zero(t, c, "component %d", i)
	}
}
