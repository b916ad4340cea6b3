// Package asa - functional configuration.
//
// Follows the library's option policy: an Options struct with documented
// defaults, With* constructors that panic on nonsensical values (programmer
// error), and DefaultOptions as the single source of zero-value truth.
package asa

// Defaults - single source of truth for DefaultOptions.
const (
	// DefaultTemperatureRatioScale is Ingber's Temperature_Ratio_Scale;
	// m = -log(ratio scale) per dimension.
	DefaultTemperatureRatioScale = 1e-5

	// DefaultTemperatureAnnealScale is Ingber's Temperature_Anneal_Scale;
	// n = log(anneal scale) per dimension.
	DefaultTemperatureAnnealScale = 100.0

	// DefaultCostParameterScaleRatio scales the control parameter c into the
	// acceptance-temperature control parameter c_cost.
	DefaultCostParameterScaleRatio = 1.0

	// DefaultAccGenReannealRatio is the acceptance-ratio floor below which a
	// reannealing is triggered early.
	DefaultAccGenReannealRatio = 0.7

	// DefaultPartialsSamples is the number of probe points used to estimate
	// per-dimension sensitivities during reannealing.
	DefaultPartialsSamples = 2

	// DefaultBestRepeatMax stops the run after the best objective has been
	// re-accepted this many times.
	DefaultBestRepeatMax = 10

	// DefaultReannealAfterSteps forces a reannealing on this step cadence
	// even while the acceptance ratio stays healthy.
	DefaultReannealAfterSteps = 100

	// DefaultMaxGenAttempts bounds the rejection sampling loop; exhausting it
	// surfaces ErrDegenerateBounds instead of spinning forever.
	DefaultMaxGenAttempts = 10000

	// DefaultMaxSteps caps the Solve driver loop so a pathological objective
	// cannot spin forever. The step protocol itself has no step limit.
	DefaultMaxSteps = 1_000_000
)

// Panic messages for invalid option values (programmer error).
const (
	panicRatioScale     = "asa: WithTemperatureRatioScale: value must be in (0, 1)"
	panicAnnealScale    = "asa: WithTemperatureAnnealScale: value must be > 1"
	panicCostScale      = "asa: WithCostParameterScaleRatio: value must be > 0"
	panicAccGenRatio    = "asa: WithAccGenReannealRatio: value must be in (0, 1]"
	panicPartials       = "asa: WithPartialsSamples: value must be >= 1"
	panicBestRepeat     = "asa: WithBestRepeatMax: value must be >= 1"
	panicReannealSteps  = "asa: WithReannealAfterSteps: value must be >= 1"
	panicMaxGenAttempts = "asa: WithMaxGenAttempts: value must be >= 1"
	panicMaxSteps       = "asa: WithMaxSteps: value must be >= 1"
	panicNilUniform     = "asa: WithUniform: source must be non-nil"
)

// TraceFunc receives optional verbose diagnostics (state changes, reanneal
// decisions). It is never called when nil, keeping the hot path free of
// conditional I/O beyond a nil check.
type TraceFunc func(format string, args ...any)

// Options configures an Annealer. Construct with DefaultOptions and adjust
// via the With* functional options passed to New.
type Options struct {
	// Downhill selects minimization (true, default) or maximization (false).
	Downhill bool

	// TemperatureRatioScale, TemperatureAnnealScale and
	// CostParameterScaleRatio are Ingber's schedule constants; see the
	// Default* docs above.
	TemperatureRatioScale   float64
	TemperatureAnnealScale  float64
	CostParameterScaleRatio float64

	// AccGenReannealRatio triggers early reannealing when
	// accepted/(improved+worse) drops below it.
	AccGenReannealRatio float64

	// PartialsSamples is the probe-set size for sensitivity estimation.
	PartialsSamples int

	// BestRepeatMax is the stopping rule: consecutive re-acceptances of the
	// best objective before the run ends.
	BestRepeatMax int

	// ReannealAfterSteps forces a reannealing on this cadence.
	ReannealAfterSteps int

	// MaxGenAttempts bounds rejection sampling per candidate.
	MaxGenAttempts int

	// MaxSteps caps the Solve/SolvePortfolio driver loop. Ignored by the
	// raw step protocol.
	MaxSteps int

	// Seed selects the deterministic RNG stream; 0 maps to a fixed default
	// seed (same policy across the library).
	Seed int64

	// Uniform, when non-nil, replaces the seeded source entirely.
	Uniform Uniform

	// Trace, when non-nil, receives verbose diagnostics.
	Trace TraceFunc
}

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// DefaultOptions returns the documented defaults: minimization, Ingber's
// canonical schedule constants, reannealing every 100 steps or on a 0.7
// acceptance-ratio floor, stop after 10 best repeats.
func DefaultOptions() Options {
	return Options{
		Downhill:                true,
		TemperatureRatioScale:   DefaultTemperatureRatioScale,
		TemperatureAnnealScale:  DefaultTemperatureAnnealScale,
		CostParameterScaleRatio: DefaultCostParameterScaleRatio,
		AccGenReannealRatio:     DefaultAccGenReannealRatio,
		PartialsSamples:         DefaultPartialsSamples,
		BestRepeatMax:           DefaultBestRepeatMax,
		ReannealAfterSteps:      DefaultReannealAfterSteps,
		MaxGenAttempts:          DefaultMaxGenAttempts,
		MaxSteps:                DefaultMaxSteps,
	}
}

// WithDownhill selects minimization (true) or maximization (false).
func WithDownhill(downhill bool) Option {
	return func(o *Options) { o.Downhill = downhill }
}

// WithTemperatureRatioScale sets Ingber's Temperature_Ratio_Scale.
// Must lie in (0, 1): m = -log(scale) must be positive for cooling.
func WithTemperatureRatioScale(scale float64) Option {
	return func(o *Options) {
		if !(scale > 0 && scale < 1) {
			panic(panicRatioScale)
		}
		o.TemperatureRatioScale = scale
	}
}

// WithTemperatureAnnealScale sets Ingber's Temperature_Anneal_Scale.
// Must be > 1 so that n = log(scale) is positive.
func WithTemperatureAnnealScale(scale float64) Option {
	return func(o *Options) {
		if !(scale > 1) {
			panic(panicAnnealScale)
		}
		o.TemperatureAnnealScale = scale
	}
}

// WithCostParameterScaleRatio sets the c → c_cost scaling. Must be > 0.
func WithCostParameterScaleRatio(ratio float64) Option {
	return func(o *Options) {
		if !(ratio > 0) {
			panic(panicCostScale)
		}
		o.CostParameterScaleRatio = ratio
	}
}

// WithAccGenReannealRatio sets the acceptance-ratio floor in (0, 1].
func WithAccGenReannealRatio(ratio float64) Option {
	return func(o *Options) {
		if !(ratio > 0 && ratio <= 1) {
			panic(panicAccGenRatio)
		}
		o.AccGenReannealRatio = ratio
	}
}

// WithPartialsSamples sets the reannealing probe-set size (>= 1).
func WithPartialsSamples(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(panicPartials)
		}
		o.PartialsSamples = n
	}
}

// WithBestRepeatMax sets the stopping rule (>= 1).
func WithBestRepeatMax(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(panicBestRepeat)
		}
		o.BestRepeatMax = n
	}
}

// WithReannealAfterSteps sets the forced reannealing cadence (>= 1).
func WithReannealAfterSteps(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(panicReannealSteps)
		}
		o.ReannealAfterSteps = n
	}
}

// WithMaxGenAttempts bounds rejection sampling per candidate (>= 1).
func WithMaxGenAttempts(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(panicMaxGenAttempts)
		}
		o.MaxGenAttempts = n
	}
}

// WithMaxSteps caps the Solve driver loop (>= 1). When the cap is reached
// before the stopping rule fires, Solve returns the best point found so far.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(panicMaxSteps)
		}
		o.MaxSteps = n
	}
}

// WithSeed selects the deterministic RNG stream (0 ⇒ library default seed).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithUniform injects a custom uniform [0,1) source, replacing the seeded
// default. Intended for scripted determinism in tests. Must be non-nil.
func WithUniform(u Uniform) Option {
	return func(o *Options) {
		if u == nil {
			panic(panicNilUniform)
		}
		o.Uniform = u
	}
}

// WithTrace installs a diagnostics sink. A nil trace disables tracing (the
// default); use asa.WithTrace(t.Logf) in tests.
func WithTrace(trace TraceFunc) Option {
	return func(o *Options) { o.Trace = trace }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
