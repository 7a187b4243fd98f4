package params

// ConstantMean is a mean function pinned to a single trainable offset.
type ConstantMean struct {
	// Offset is the initial constant value.
	Offset float64
}

// InitParams exposes the trainable hyperparameters for initialisation.
func (m ConstantMean) InitParams() map[string]float64 {
	return map[string]float64{"constant": m.Offset}
}

// GaussianLikelihood is an observation model with homoscedastic noise.
type GaussianLikelihood struct {
	// Noise is the initial observation noise variance.
	Noise float64
}

// InitParams exposes the trainable hyperparameters for initialisation.
func (l GaussianLikelihood) InitParams() map[string]float64 {
	return map[string]float64{"obs_noise": l.Noise}
}

// BernoulliLikelihood is a parameter-free classification observation model.
// It still participates in initialisation so NonConjugate specs stay uniform.
type BernoulliLikelihood struct{}

// InitParams reports no trainable hyperparameters.
func (BernoulliLikelihood) InitParams() map[string]float64 {
	return map[string]float64{}
}
