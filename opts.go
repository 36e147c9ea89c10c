package mathex

// An Option adjusts parsing or evaluation.
type Option interface {
	option(config) config
}

type (
	epsopt   float64
	depthopt int
)

// config holds the effective settings for one call.
type config struct {
	eps   float64
	depth int
}

func defaults() config {
	return config{eps: DefaultEpsilon, depth: DefaultMaxDepth}
}

func (c config) apply(opts []Option) config {
	for _, o := range opts {
		if o == nil {
			continue
		}
		c = o.option(c)
	}
	return c
}

// Epsilon sets the truth threshold: a result is true when its magnitude
// exceeds e. Parse ignores it.
func Epsilon(e float64) Option {
	return epsopt(e)
}

func (o epsopt) option(c config) config {
	c.eps = float64(o)
	return c
}

// MaxDepth sets the nesting depth above which parsing fails with a
// DepthError. Evaluation of an already parsed expression ignores it.
func MaxDepth(n int) Option {
	return depthopt(n)
}

func (o depthopt) option(c config) config {
	c.depth = int(o)
	return c
}
