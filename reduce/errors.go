package reduce

import "errors"

var (
	// ErrNilMatrix indicates Apply received a nil input matrix.
	ErrNilMatrix = errors.New("reduce: input matrix must be non-nil")
	// ErrNilReducer indicates a nil Reducer where a concrete one is required.
	ErrNilReducer = errors.New("reduce: reducer must be non-nil")
	// ErrEmptyInput indicates an input collection with no elements.
	ErrEmptyInput = errors.New("reduce: input must contain at least one element")
	// ErrRepeatTimes indicates Repeat was built with times < 2.
	ErrRepeatTimes = errors.New("reduce: repeat times must be greater than 1")
	// ErrTileResultLen indicates TileView was built with resultLen < 2.
	ErrTileResultLen = errors.New("reduce: tile result length must be greater than 1")
	// ErrTileNotDivisible indicates the input row count does not evenly divide
	// the tile target length.
	ErrTileNotDivisible = errors.New("reduce: input rows must evenly divide tile result length")
	// ErrSparseNoIndices indicates a SparseReduce whose maximum index cannot be
	// inferred because every block is empty and no explicit maximum was given.
	ErrSparseNoIndices = errors.New("reduce: cannot infer max index from empty index blocks")
	// ErrRaggedBlock indicates an index block whose rows differ in width.
	ErrRaggedBlock = errors.New("reduce: index block rows must share one width")
	// ErrBadIndex indicates a negative row index inside an index block.
	ErrBadIndex = errors.New("reduce: row indices must be non-negative")
	// ErrShortInput indicates an input matrix with fewer rows than the
	// reduction's maximum referenced index requires.
	ErrShortInput = errors.New("reduce: input has fewer rows than the reduction references")
	// ErrShapeMismatch indicates an input length incompatible with the
	// reduction's stored matrix or index assumptions.
	ErrShapeMismatch = errors.New("reduce: input shape does not match reduction assumptions")
	// ErrNotLinearizable indicates a chain member without a linear-map form.
	ErrNotLinearizable = errors.New("reduce: reduction has no linear-map form")
	// ErrEmptyChain indicates a Chained built with no members.
	ErrEmptyChain = errors.New("reduce: chain must contain at least one reduction")
	// ErrKmerParams indicates an invalid k / sequence-length combination.
	ErrKmerParams = errors.New("reduce: k and seq length must be greater than 1 and seq length must be at least k")
)
