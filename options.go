package calc

// Option is an option for evaluating expressions.
type Option interface {
	calcOption()
}

type (
	placesopt int
	strictopt struct{}
)

func (placesopt) calcOption() {}
func (strictopt) calcOption() {}

// Places sets the number of decimal places results are rounded to. A negative
// number disables rounding.
func Places(n int) Option {
	return placesopt(n)
}

// Strict disables whitespace repair. Any whitespace in an expression is then
// a syntax error.
func Strict() Option {
	return strictopt{}
}

// config holds the effective options for one evaluation.
type config struct {
	places int
	strict bool
}

// newConfig applies options in order over the defaults.
func newConfig(opts []Option) config {
	c := config{places: DefaultPlaces}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case placesopt:
			c.places = int(opt)
		case strictopt:
			c.strict = true
		default:
			panic("calc: unknown option type")
		}
	}
	return c
}
