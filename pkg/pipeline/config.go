package pipeline

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/timeaxis/pkg/errors"
)

// Config is a batch of axes read from a TOML file:
//
//	[defaults]
//	timezone = "Europe/Berlin"
//	formats = ["svg"]
//
//	[[axis]]
//	name = "q1"
//	kind = "date"
//	begin = "2021-01-01"
//	end = "2021-03-31"
//
// Fields left unset in an [[axis]] table are taken from [defaults].
type Config struct {
	Defaults Options   `toml:"defaults"`
	Axes     []Options `toml:"axis"`
}

// LoadConfig reads and validates a config file. The returned options have
// defaults applied.
func LoadConfig(path string) ([]Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNotFound, err, "read config %s", path)
	}
	return ParseConfig(data)
}

// ParseConfig decodes TOML config data.
func ParseConfig(data []byte) ([]Options, error) {
	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown config key %q", undecoded[0].String())
	}
	if len(cfg.Axes) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "config defines no [[axis]] tables")
	}

	out := make([]Options, len(cfg.Axes))
	for i, axis := range cfg.Axes {
		o := cfg.Defaults.merge(axis)
		if o.Name == "" {
			o.Name = fmt.Sprintf("axis-%d", i+1)
		}
		if err := o.ValidateAndSetDefaults(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "axis %q", o.Name)
		}
		out[i] = o
	}
	return out, nil
}

// merge returns o with the zero fields filled from d.
func (d Options) merge(o Options) Options {
	if o.Kind == "" {
		o.Kind = d.Kind
	}
	if o.Begin == "" {
		o.Begin = d.Begin
	}
	if o.End == "" {
		o.End = d.End
	}
	if o.Timezone == "" {
		o.Timezone = d.Timezone
	}
	if o.MaxPoints == 0 {
		o.MaxPoints = d.MaxPoints
	}
	if o.Pixels == [2]int{} {
		o.Pixels = d.Pixels
	}
	if o.LabelFormat == "" {
		o.LabelFormat = d.LabelFormat
	}
	if len(o.Formats) == 0 {
		o.Formats = d.Formats
	}
	if o.Color == "" {
		o.Color = d.Color
	}
	if o.Height == 0 {
		o.Height = d.Height
	}
	if o.Columns == 0 {
		o.Columns = d.Columns
	}
	return o
}
