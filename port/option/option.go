// Package option holds the functional options of the iterator combinators.
package option

// Option changes one setting of a Config.
type Option[Config any] interface {
	Configure(*Config)
}

// Func turns a plain function into an Option.
type Func[Config any] func(*Config)

func (fn Func[Config]) Configure(c *Config) { fn(c) }

// ToConfig starts from the zero Config and applies the options in order,
// so the last option wins. Nil options are skipped.
func ToConfig[Config any, Opt Option[Config]](opts []Opt) Config {
	var c Config
	for _, opt := range opts {
		if any(opt) == nil {
			continue
		}
		opt.Configure(&c)
	}
	return c
}
