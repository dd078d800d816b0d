package arraylist

import "go.uber.org/zap"

// DefaultGrowthStep is the number of slots LinearGrowth adds when given a
// non-positive step.
const DefaultGrowthStep = 10

// GrowthPolicy maps the current capacity of a full list to the capacity of
// its replacement backing store. Results not larger than the input are
// bumped to capacity+1.
type GrowthPolicy func(capacity int) int

// LinearGrowth adds step slots on every growth. If step <= 0,
// DefaultGrowthStep is used.
func LinearGrowth(step int) GrowthPolicy {
	if step <= 0 {
		step = DefaultGrowthStep
	}
	return func(capacity int) int {
		return capacity + step
	}
}

// DoublingGrowth doubles the capacity, starting from DefaultCapacity for an
// empty store.
func DoublingGrowth() GrowthPolicy {
	return func(capacity int) int {
		if capacity == 0 {
			return DefaultCapacity
		}
		return capacity * 2
	}
}

type options struct {
	capacity int
	growth   GrowthPolicy
	logger   *zap.Logger
}

// Option configures a List at construction.
type Option func(*options)

// WithCapacity sets the initial capacity. Negative values mean DefaultCapacity.
func WithCapacity(capacity int) Option {
	return func(o *options) {
		o.setCapacity(capacity)
	}
}

// WithGrowth replaces the default LinearGrowth(DefaultGrowthStep) policy.
// A nil policy is ignored.
func WithGrowth(policy GrowthPolicy) Option {
	return func(o *options) {
		if policy != nil {
			o.growth = policy
		}
	}
}

// WithLogger makes the list report growth events at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func (o *options) setCapacity(capacity int) {
	if capacity < 0 {
		capacity = DefaultCapacity
	}
	o.capacity = capacity
}

func buildOptions(opts []Option) options {
	o := options{
		capacity: DefaultCapacity,
		growth:   LinearGrowth(DefaultGrowthStep),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
