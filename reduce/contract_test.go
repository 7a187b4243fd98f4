package reduce_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/rkhs/reduce"
)

// contractReducers builds one of every reduction variant sized for n-row
// inputs, used by the cross-cutting contract tests below.
func contractReducers(t *testing.T, n int) map[string]reduce.Reducer {
	t.Helper()

	rep, err := reduce.NewRepeat(2)
	require.NoError(t, err)
	tv, err := reduce.NewTileView(3 * n)
	require.NoError(t, err)
	sp, err := reduce.FromBlockLengths([]int{n / 2, n - n/2}, true)
	require.NoError(t, err)
	lin, err := reduce.KmerLinear(2, n, false)
	require.NoError(t, err)
	chain, err := reduce.Chain(reduce.Sum{}, rep)
	require.NoError(t, err)

	return map[string]reduce.Reducer{
		"identity": reduce.Identity{},
		"noreduce": reduce.NoReduce{},
		"sum":      reduce.Sum{},
		"mean":     reduce.Mean{},
		"repeat":   rep,
		"tile":     tv,
		"sparse":   sp,
		"linear":   lin,
		"chain":    chain,
	}
}

// randomMatrix returns an n×c matrix with deterministic pseudo-random entries.
func randomMatrix(n, c int, seed uint64) *mat.Dense {
	rng := rand.New(rand.NewSource(int64(seed ^ 0x9e3779b9)))
	data := make([]float64, n*c)
	for i := range data {
		data[i] = rng.NormFloat64()
	}

	return mat.NewDense(n, c, data)
}

// TestLengthContract verifies that Apply produces exactly NewLen(n) rows for
// every reduction variant and several input widths.
func TestLengthContract(t *testing.T) {
	const n = 6
	for name, r := range contractReducers(t, n) {
		for _, c := range []int{1, 3, 5} {
			t.Run(fmt.Sprintf("%s/cols=%d", name, c), func(t *testing.T) {
				in := randomMatrix(n, c, uint64(c))

				out, err := r.Apply(in)
				require.NoError(t, err)

				wantRows, err := r.NewLen(n)
				require.NoError(t, err)

				gotRows, gotCols := out.Dims()
				require.Equal(t, wantRows, gotRows)
				require.Equal(t, c, gotCols)
			})
		}
	}
}

// TestLinMapContract verifies Apply(m) == LinMap(rows(m)) * m for every
// linearizable reduction variant.
func TestLinMapContract(t *testing.T) {
	const n = 6
	for name, r := range contractReducers(t, n) {
		lin, ok := r.(reduce.Linearizable)
		if !ok {
			continue
		}
		t.Run(name, func(t *testing.T) {
			if _, err := lin.LinMap(n); err != nil {
				t.Skipf("no linear form for n=%d: %v", n, err)
			}

			in := randomMatrix(n, 4, 7)

			direct, err := r.Apply(in)
			require.NoError(t, err)

			lm, err := lin.LinMap(n)
			require.NoError(t, err)
			var viaMap mat.Dense
			viaMap.Mul(lm, in)

			require.True(t, mat.EqualApprox(direct, &viaMap, 1e-10),
				"apply and linear map must agree")
		})
	}
}

// TestPurity verifies that Apply leaves its input untouched.
func TestPurity(t *testing.T) {
	const n = 6
	for name, r := range contractReducers(t, n) {
		t.Run(name, func(t *testing.T) {
			in := randomMatrix(n, 3, 11)
			snapshot := mat.DenseCopyOf(in)

			_, err := r.Apply(in)
			require.NoError(t, err)
			require.True(t, mat.Equal(snapshot, in), "apply must not mutate its input")
		})
	}
}
