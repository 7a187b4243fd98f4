package reduce

import "gonum.org/v1/gonum/mat"

var (
	_ Linearizable = Repeat{}
	_ Linearizable = TileView{}
)

// Repeat concatenates a fixed number of full copies of the input,
// back-to-back (not interleaved): output row i equals input row
// i mod rows(input).
type Repeat struct {
	times int
}

// NewRepeat builds a Repeat reduction.
// Returns ErrRepeatTimes unless times > 1.
func NewRepeat(times int) (Repeat, error) {
	if times <= 1 {
		return Repeat{}, ErrRepeatTimes
	}

	return Repeat{times: times}, nil
}

// Times returns the configured number of copies.
func (r Repeat) Times() int { return r.times }

// Apply returns times vertical copies of m.
//
// Complexity: O(times·rows·cols).
func (r Repeat) Apply(m mat.Matrix) (*mat.Dense, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}

	return tileDense(m, r.times)
}

// NewLen reports originalLen·times.
func (r Repeat) NewLen(originalLen int) (int, error) {
	if originalLen < 1 {
		return 0, ErrEmptyInput
	}

	return originalLen * r.times, nil
}

// LinMap returns the identity matrix tiled times vertically.
func (r Repeat) LinMap(inputLen int) (*mat.Dense, error) {
	eye, err := Identity{}.LinMap(inputLen)
	if err != nil {
		return nil, err
	}

	return tileDense(eye, r.times)
}

// TileView tiles the input up to a fixed target row count. It produces the
// same row layout as Repeat, but the repetition factor is derived from the
// input at application time: rows(input) must evenly divide the target.
//
// A no-copy view of the tiled result is available via View; Apply
// materializes it, and LinMap exposes the reduction as an explicit matrix.
type TileView struct {
	resultLen int
}

// NewTileView builds a TileView reduction targeting resultLen output rows.
// Returns ErrTileResultLen unless resultLen > 1.
func NewTileView(resultLen int) (TileView, error) {
	if resultLen < 2 {
		return TileView{}, ErrTileResultLen
	}

	return TileView{resultLen: resultLen}, nil
}

// ResultLen returns the configured target row count.
func (t TileView) ResultLen() int { return t.resultLen }

// View returns a lazy, no-copy tiled view of m with t.ResultLen() rows.
// The view aliases m; it stays valid as long as m is unchanged.
func (t TileView) View(m mat.Matrix) (mat.Matrix, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	r, _ := m.Dims()
	if r == 0 {
		return nil, ErrEmptyInput
	}
	if t.resultLen%r != 0 {
		return nil, ErrTileNotDivisible
	}

	return tiledView{src: m, rows: t.resultLen}, nil
}

// Apply materializes the tiled view of m.
//
// Complexity: O(resultLen·cols).
func (t TileView) Apply(m mat.Matrix) (*mat.Dense, error) {
	v, err := t.View(m)
	if err != nil {
		return nil, err
	}

	return mat.DenseCopyOf(v), nil
}

// NewLen reports the fixed target length, after checking divisibility.
func (t TileView) NewLen(originalLen int) (int, error) {
	if originalLen < 1 {
		return 0, ErrEmptyInput
	}
	if t.resultLen%originalLen != 0 {
		return 0, ErrTileNotDivisible
	}

	return t.resultLen, nil
}

// LinMap returns the inputLen-column identity tiled to resultLen rows.
func (t TileView) LinMap(inputLen int) (*mat.Dense, error) {
	eye, err := Identity{}.LinMap(inputLen)
	if err != nil {
		return nil, err
	}
	if t.resultLen%inputLen != 0 {
		return nil, ErrTileNotDivisible
	}

	return tileDense(eye, t.resultLen/inputLen)
}

// tiledView is a read-only mat.Matrix whose rows cycle through src.
type tiledView struct {
	src  mat.Matrix
	rows int
}

func (v tiledView) Dims() (int, int) {
	_, c := v.src.Dims()

	return v.rows, c
}

func (v tiledView) At(i, j int) float64 {
	r, _ := v.src.Dims()

	return v.src.At(i%r, j)
}

func (v tiledView) T() mat.Matrix { return mat.Transpose{Matrix: v} }

// tileDense concatenates reps full copies of m along the leading axis.
func tileDense(m mat.Matrix, reps int) (*mat.Dense, error) {
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return nil, ErrEmptyInput
	}

	out := mat.NewDense(r*reps, c, nil)
	row := make([]float64, c)
	for i := 0; i < r; i++ {
		mat.Row(row, i, m)
		for rep := 0; rep < reps; rep++ {
			out.SetRow(rep*r+i, row)
		}
	}

	return out, nil
}
