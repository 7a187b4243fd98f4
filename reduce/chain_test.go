package reduce_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/rkhs/reduce"
)

func TestChain_Validation(t *testing.T) {
	_, err := reduce.Chain()
	require.ErrorIs(t, err, reduce.ErrEmptyChain)

	_, err = reduce.Chain(reduce.Sum{}, nil)
	require.ErrorIs(t, err, reduce.ErrNilReducer)
}

// TestChain_AppliesRightToLeft checks Chain(a, b).Apply(m) == a.Apply(b.Apply(m)).
func TestChain_AppliesRightToLeft(t *testing.T) {
	rep, err := reduce.NewRepeat(2)
	require.NoError(t, err)

	c, err := reduce.Chain(reduce.Sum{}, rep)
	require.NoError(t, err)

	in := mat.NewDense(2, 2, []float64{1, 2, 3, 4})

	chained, err := c.Apply(in)
	require.NoError(t, err)

	inner, err := rep.Apply(in)
	require.NoError(t, err)
	manual, err := reduce.Sum{}.Apply(inner)
	require.NoError(t, err)

	require.True(t, mat.EqualApprox(manual, chained, 1e-12))
	require.True(t, mat.EqualApprox(mat.NewDense(1, 2, []float64{8, 12}), chained, 1e-12))
}

func TestChain_NewLenThreadsLengths(t *testing.T) {
	rep, err := reduce.NewRepeat(3)
	require.NoError(t, err)
	tv, err := reduce.NewTileView(12)
	require.NoError(t, err)

	// 2 rows → repeat×3 → 6 rows → tile to 12.
	c, err := reduce.Chain(tv, rep)
	require.NoError(t, err)

	n, err := c.NewLen(2)
	require.NoError(t, err)
	require.Equal(t, 12, n)

	// Tile target not divisible by the intermediate length.
	_, err = c.NewLen(5)
	require.ErrorIs(t, err, reduce.ErrTileNotDivisible)
}

func TestChain_FlattensNestedChains(t *testing.T) {
	inner, err := reduce.Chain(reduce.Mean{}, reduce.Identity{})
	require.NoError(t, err)

	outer, err := reduce.Chain(reduce.Sum{}, inner)
	require.NoError(t, err)
	require.Len(t, outer.Reducers(), 3)
}

// TestChain_LinMapIsProductOfMemberMaps verifies the composed linear map.
func TestChain_LinMapIsProductOfMemberMaps(t *testing.T) {
	rep, err := reduce.NewRepeat(2)
	require.NoError(t, err)

	c, err := reduce.Compose(reduce.Sum{}, rep)
	require.NoError(t, err)

	in := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})

	lm, err := c.LinMap(2)
	require.NoError(t, err)

	var viaMap mat.Dense
	viaMap.Mul(lm, in)

	direct, err := c.Apply(in)
	require.NoError(t, err)
	require.True(t, mat.EqualApprox(direct, &viaMap, 1e-12))
}

func TestChain_LinMapRejectsOpaqueMembers(t *testing.T) {
	// NoReduce carries no linear-map form.
	c, err := reduce.Chain(reduce.Sum{}, reduce.NoReduce{})
	require.NoError(t, err)

	_, err = c.LinMap(4)
	require.ErrorIs(t, err, reduce.ErrNotLinearizable)
}
