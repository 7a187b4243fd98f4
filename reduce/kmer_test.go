package reduce_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/rkhs/reduce"
)

func TestKmer_Validation(t *testing.T) {
	cases := []struct {
		name          string
		k, seqLength  int
	}{
		{"k too small", 1, 4},
		{"zero k", 0, 4},
		{"seq too small", 2, 1},
		{"seq shorter than k", 5, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := reduce.KmerMatrix(tc.k, tc.seqLength, false)
			require.ErrorIs(t, err, reduce.ErrKmerParams)

			_, err = reduce.KmerIndices(tc.k, tc.seqLength)
			require.ErrorIs(t, err, reduce.ErrKmerParams)
		})
	}
}

// TestKmerMatrix_AveragedBand checks the canonical averaged 2-mer band over
// a length-4 sequence.
func TestKmerMatrix_AveragedBand(t *testing.T) {
	m, err := reduce.KmerMatrix(2, 4, true)
	require.NoError(t, err)

	want := mat.NewDense(3, 4, []float64{
		0.5, 0.5, 0, 0,
		0, 0.5, 0.5, 0,
		0, 0, 0.5, 0.5,
	})
	require.True(t, mat.EqualApprox(want, m, 1e-12))
}

func TestKmerIndices_SlidingWindows(t *testing.T) {
	idx, err := reduce.KmerIndices(3, 5)
	require.NoError(t, err)

	want := reduce.IndexBlock{
		{0, 1, 2},
		{1, 2, 3},
		{2, 3, 4},
	}
	require.Empty(t, cmp.Diff(want, idx))
}

// TestKmer_SparseMatchesLinear verifies that the sparse and linear forms of
// the same window parameters aggregate identically.
func TestKmer_SparseMatchesLinear(t *testing.T) {
	const k, seqLength = 2, 5

	lin, err := reduce.KmerLinear(k, seqLength, true)
	require.NoError(t, err)
	sp, err := reduce.KmerSparse(k, seqLength, true)
	require.NoError(t, err)

	in := mat.NewDense(seqLength, 2, []float64{
		1, 10,
		2, 20,
		3, 30,
		4, 40,
		5, 50,
	})

	fromLin, err := lin.Apply(in)
	require.NoError(t, err)
	fromSp, err := sp.Apply(in)
	require.NoError(t, err)

	require.True(t, mat.EqualApprox(fromLin, fromSp, 1e-12))
	require.True(t, mat.EqualApprox(mat.NewDense(4, 2, []float64{
		1.5, 15,
		2.5, 25,
		3.5, 35,
		4.5, 45,
	}), fromSp, 1e-12))
}
