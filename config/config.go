// Package config is the command line configuration of the fixture generator. There are no
// environment variables and no configuration file, every setting is a flag.
package config

import (
	"slices"

	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"

	"writeints.mleku.dev/lol"
	"writeints.mleku.dev/width"
)

// Usage is the one line printed to stderr whenever the arguments are not usable. It is
// also the only response to -h and --help.
const Usage = "usage: write-ints [8|16|32|64]"

// ErrUsage wraps every argument error.
var ErrUsage = errors.New(Usage)

// Profiles are the accepted values of C.Profile.
var Profiles = []string{"", "cpu", "mem"}

// C is the configuration for a generator run.
type C struct {
	Width    string   `arg:"positional" placeholder:"WIDTH" help:"integer width to tabulate: 8, 16, 32 or 64"`
	Rest     []string `arg:"positional" help:"ignored"`
	Window   int64    `arg:"--window" default:"1024" help:"values per boundary window of the 32 and 64 bit tables"`
	BigInt   bool     `arg:"--bigint" help:"render keys and values as BigInt literals, [0x...n]: ...n"`
	Output   string   `arg:"-o,--output" help:"write the table to this file instead of stdout"`
	LogLevel string   `arg:"--log-level" default:"warn" help:"off, fatal, error, warn, info, debug or trace"`
	Profile  string   `arg:"--profile" help:"write a cpu or mem profile into the working directory"`
	W        width.W  `arg:"-"`
}

// New parses args, which exclude the program name. Only the first positional argument is
// the width, any after it are kept in Rest and otherwise ignored. Every error, including a
// request for help, wraps ErrUsage.
func New(args []string) (c *C, err error) {
	c = &C{}
	var p *arg.Parser
	if p, err = arg.NewParser(arg.Config{Program: "write-ints"}, c); err != nil {
		return
	}
	if err = p.Parse(args); err != nil {
		err = errors.Wrap(ErrUsage, err.Error())
		return
	}
	if c.Width == "" {
		err = errors.Wrap(ErrUsage, "missing width")
		return
	}
	if c.W, err = width.Parse(c.Width); err != nil {
		err = errors.Wrap(ErrUsage, err.Error())
		return
	}
	if !slices.Contains(lol.LevelNames, c.LogLevel) {
		err = errors.Wrapf(ErrUsage, "unknown log level %q", c.LogLevel)
		return
	}
	if !slices.Contains(Profiles, c.Profile) {
		err = errors.Wrapf(ErrUsage, "unknown profile %q", c.Profile)
		return
	}
	return
}
