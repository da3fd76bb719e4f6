package cli

import (
	"github.com/jmylchreest/contrast/internal/colour"
	"github.com/spf13/pflag"
)

// levelValue is a pflag.Value accepting WCAG level names.
type levelValue struct {
	level colour.Level
	set   bool
}

var _ pflag.Value = (*levelValue)(nil)

func (v *levelValue) String() string {
	return string(v.level)
}

func (v *levelValue) Set(s string) error {
	l, err := colour.ParseLevel(s)
	if err != nil {
		return err
	}
	v.level = l
	v.set = true
	return nil
}

func (v *levelValue) Type() string {
	return "level"
}
