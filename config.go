package qshor

// Config gathers the knobs of a trial run.
type Config struct {
	// Precision is the decimal precision used when extracting significant
	// amplitudes; values below 8 are clamped up.
	Precision int
	// Reveal attaches the sampled error label to the noise gate.
	Reveal bool
	// Correct appends the conditional correction and unencoding circuits
	// after syndrome extraction.
	Correct bool
	// Seed drives the injector's randomness; 0 means seed from the clock.
	Seed int64
	// Layout overrides the register layout; nil means DefaultLayout.
	Layout *Layout
}

func NewConfig() *Config {
	return &Config{
		Precision: 8,
		Reveal:    true,
	}
}
