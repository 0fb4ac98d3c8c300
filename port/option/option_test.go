package option_test

import (
	"testing"

	"github.com/szmathias/dscontainers/port/option"
	"go.llib.dev/testcase/assert"
)

type config struct {
	Name  string
	Count int
}

func TestToConfig(t *testing.T) {
	t.Run("options are applied in order", func(t *testing.T) {
		got := option.ToConfig[config]([]option.Option[config]{
			option.Func[config](func(c *config) { c.Name = "first" }),
			option.Func[config](func(c *config) { c.Name = "second"; c.Count++ }),
		})
		assert.Equal(t, config{Name: "second", Count: 1}, got)
	})
	t.Run("without options the zero config is returned", func(t *testing.T) {
		got := option.ToConfig[config, option.Option[config]](nil)
		assert.Equal(t, config{}, got)
	})
	t.Run("nil options are skipped", func(t *testing.T) {
		got := option.ToConfig[config]([]option.Option[config]{
			nil,
			option.Func[config](func(c *config) { c.Count += 2 }),
		})
		assert.Equal(t, 2, got.Count)
	})
}
