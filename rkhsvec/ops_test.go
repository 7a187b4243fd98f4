package rkhsvec_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/rkhs/kernel"
	"github.com/katalvlaran/rkhs/reduce"
	"github.com/katalvlaran/rkhs/rkhsvec"
)

// DotSuite exercises the inner-product dispatch over fixed point sets.
type DotSuite struct {
	suite.Suite
	k      kernel.Kernel
	x, y   *mat.Dense
	v1, v2 *rkhsvec.Vec
	gram   *mat.Dense // raw cross-covariance between x and y
}

func (s *DotSuite) SetupTest() {
	k, err := kernel.NewRBF(1.5, 0.8)
	require.NoError(s.T(), err)
	s.k = k

	s.x = mat.NewDense(3, 1, []float64{0, 1, 2})
	s.y = mat.NewDense(2, 1, []float64{0.5, 1.5})

	s.v1, err = rkhsvec.NewVec(s.x, k)
	require.NoError(s.T(), err)
	s.v2, err = rkhsvec.NewVec(s.y, k)
	require.NoError(s.T(), err)

	s.gram, err = k.CrossCovariance(s.x, s.y)
	require.NoError(s.T(), err)
}

// TestIdentityReductionsYieldRawGram checks that with identity reductions
// the inner-product matrix IS the raw cross-covariance.
func (s *DotSuite) TestIdentityReductionsYieldRawGram() {
	out, err := rkhsvec.Dot(s.v1.T(), s.v2)
	require.NoError(s.T(), err)
	require.True(s.T(), mat.EqualApprox(s.gram, out, 1e-12))
}

// TestRowReductionAppliesToRows folds the row side with Mean.
func (s *DotSuite) TestRowReductionAppliesToRows() {
	folded, err := s.v1.Mean()
	require.NoError(s.T(), err)

	out, err := rkhsvec.Dot(folded.T(), s.v2)
	require.NoError(s.T(), err)

	want, err := reduce.Mean{}.Apply(s.gram)
	require.NoError(s.T(), err)
	require.True(s.T(), mat.EqualApprox(want, out, 1e-12))
}

// TestColumnReductionAppliesTransposed folds the column side with Sum.
func (s *DotSuite) TestColumnReductionAppliesTransposed() {
	folded, err := s.v2.Sum()
	require.NoError(s.T(), err)

	out, err := rkhsvec.Dot(s.v1.T(), folded)
	require.NoError(s.T(), err)

	summed, err := reduce.Sum{}.Apply(s.gram.T())
	require.NoError(s.T(), err)
	want := mat.DenseCopyOf(summed.T())
	require.True(s.T(), mat.EqualApprox(want, out, 1e-12))
}

// TestBothSidesFolded yields the 1×1 total of the Gram matrix.
func (s *DotSuite) TestBothSidesFolded() {
	r, err := s.v1.Sum()
	require.NoError(s.T(), err)
	c, err := s.v2.Sum()
	require.NoError(s.T(), err)

	out, err := rkhsvec.Dot(r.T(), c)
	require.NoError(s.T(), err)

	rows, cols := out.Dims()
	require.Equal(s.T(), 1, rows)
	require.Equal(s.T(), 1, cols)
	require.InDelta(s.T(), mat.Sum(s.gram), out.At(0, 0), 1e-12)
}

// TestOrientationErrors verifies col·col and row·row are rejected.
func (s *DotSuite) TestOrientationErrors() {
	_, err := rkhsvec.Dot(s.v1, s.v2)
	require.ErrorIs(s.T(), err, rkhsvec.ErrOrientation)

	_, err = rkhsvec.Dot(s.v1.T(), s.v2.T())
	require.ErrorIs(s.T(), err, rkhsvec.ErrOrientation)
}

// TestKernelMismatch verifies vectors of different RKHSs never interoperate.
func (s *DotSuite) TestKernelMismatch() {
	other, err := kernel.NewRBF(1.5, 2.0)
	require.NoError(s.T(), err)
	w, err := rkhsvec.NewVec(s.y, other)
	require.NoError(s.T(), err)

	_, err = rkhsvec.Dot(s.v1.T(), w)
	require.ErrorIs(s.T(), err, rkhsvec.ErrKernelMismatch)
}

func TestDotSuite(t *testing.T) {
	suite.Run(t, new(DotSuite))
}

func TestTensor_Validation(t *testing.T) {
	k := rbf(t)
	v1 := colVec(t, k, 0, 1, 2)
	v2 := colVec(t, k, 3, 4, 5)
	short := colVec(t, k, 1, 2)

	_, err := rkhsvec.Tensor(v1, v2)
	require.ErrorIs(t, err, rkhsvec.ErrOrientation, "column·column is not a tensor product")

	_, err = rkhsvec.Tensor(v1, short.T())
	require.ErrorIs(t, err, rkhsvec.ErrSizeMismatch)

	p, err := rkhsvec.Tensor(v1, v2.T())
	require.NoError(t, err)
	require.True(t, p.IsCombination())
	require.Equal(t, rkhsvec.OpMul, p.Op())
	require.Equal(t, 1, p.Size(), "tensor product carries a Sum reduction")
}

// TestTensorThenSumEqualsInnerProducts establishes the identity the design
// relies on: the inner product of two summed tensor-product vectors equals
// the total of the element-wise product of the member Gram matrices.
func TestTensorThenSumEqualsInnerProducts(t *testing.T) {
	k, err := kernel.NewRBF(1, 1)
	require.NoError(t, err)

	x := mat.NewDense(3, 1, []float64{0, 1, 2})
	y := mat.NewDense(3, 1, []float64{5, 4, 3})
	u := mat.NewDense(2, 1, []float64{0.5, 1.5})
	w := mat.NewDense(2, 1, []float64{4.5, 3.5})

	newVec := func(pts *mat.Dense) *rkhsvec.Vec {
		v, errNew := rkhsvec.NewVec(pts, k)
		require.NoError(t, errNew)

		return v
	}

	p, err := rkhsvec.Tensor(newVec(x), newVec(y).T())
	require.NoError(t, err)
	q, err := rkhsvec.Tensor(newVec(u), newVec(w).T())
	require.NoError(t, err)

	got, err := rkhsvec.Dot(p.T(), q)
	require.NoError(t, err)

	gxu, err := k.CrossCovariance(x, u)
	require.NoError(t, err)
	gyw, err := k.CrossCovariance(y, w)
	require.NoError(t, err)
	var prod mat.Dense
	prod.MulElem(gxu, gyw)

	require.InDelta(t, mat.Sum(&prod), got.At(0, 0), 1e-12)
}

// TestTensorAgainstPlainFails verifies tensor elements never silently dot
// with plain elements.
func TestTensorAgainstPlainFails(t *testing.T) {
	k := rbf(t)
	v1 := colVec(t, k, 0, 1)
	v2 := colVec(t, k, 2, 3)

	p, err := rkhsvec.Tensor(v1, v2.T())
	require.NoError(t, err)

	_, err = rkhsvec.Dot(p.T(), v1)
	require.ErrorIs(t, err, rkhsvec.ErrSpaceMismatch)
}
