package ggcolor

// ConverterOption configures a Converter during creation.
//
// Example:
//
//	// Default: strategy chosen by the CPU probe, GOMAXPROCS image workers
//	cv := ggcolor.NewConverter()
//
//	// Pin the scalar path and limit image work to two goroutines
//	cv := ggcolor.NewConverter(
//	    ggcolor.WithStrategy(ggcolor.StrategyScalar),
//	    ggcolor.WithWorkers(2),
//	)
type ConverterOption func(*converterOptions)

type converterOptions struct {
	strategy Strategy
	workers  int
}

func defaultOptions() converterOptions {
	return converterOptions{
		strategy: StrategyAuto,
		workers:  0, // GOMAXPROCS
	}
}

// WithStrategy forces the execution strategy.
// StrategyAuto (the default) defers to the CPU probe.
func WithStrategy(s Strategy) ConverterOption {
	return func(o *converterOptions) {
		o.strategy = s
	}
}

// WithWorkers sets the number of goroutines used by the image methods.
// Zero or negative means GOMAXPROCS.
func WithWorkers(n int) ConverterOption {
	return func(o *converterOptions) {
		o.workers = n
	}
}
