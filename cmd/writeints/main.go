// Package main is write-ints, a generator of integer lists for testing byte conversion
// functions.
//
//	write-ints [--window N] [--bigint] [-o FILE] [8|16|32|64]
//
// The 8 and 16 bit tables list every value, the 32 and 64 bit tables list windows at the
// minimum, around zero and at the maximum.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/pkg/profile"

	"writeints.mleku.dev/chk"
	"writeints.mleku.dev/config"
	"writeints.mleku.dev/fixture"
	"writeints.mleku.dev/log"
	"writeints.mleku.dev/lol"
	"writeints.mleku.dev/sample"
)

func main() { os.Exit(run(os.Args[1:], os.Stdout, os.Stderr)) }

func usage(stderr io.Writer, err error) int {
	log.D.Ln(err)
	_, _ = fmt.Fprintln(stderr, config.Usage)
	return 1
}

// run generates one table and returns the process exit code. Nothing is written to stdout
// or the output file unless the arguments are valid.
func run(args []string, stdout, stderr io.Writer) (code int) {
	defer lol.SetWriter(lol.SetWriter(stderr))
	lol.SetLoggers(lol.Warn)
	c, err := config.New(args)
	if err != nil {
		return usage(stderr, err)
	}
	lol.SetLogLevel(c.LogLevel)
	log.T.S(c)
	if len(c.Rest) > 0 {
		log.D.F("ignoring arguments after the width: %q", c.Rest)
	}
	style := fixture.Plain
	if c.BigInt {
		style = fixture.BigInt
	}
	var tbl *fixture.Table
	if tbl, err = fixture.New(c.W, c.Window, style); err != nil {
		if errors.Is(err, sample.ErrInvalidWindow) {
			return usage(stderr, err)
		}
		log.E.F("%s", err)
		return 1
	}
	switch c.Profile {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet,
			profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet,
			profile.NoShutdownHook).Stop()
	}
	out, dest := stdout, "stdout"
	if c.Output != "" {
		var f *os.File
		if f, err = os.Create(c.Output); chk.E(err) {
			return 1
		}
		defer func() {
			if err := f.Close(); chk.E(err) {
				code = 1
			}
		}()
		out, dest = f, c.Output
	}
	log.I.F("writing %d bit %s table of %d entries to %s", c.W, style, tbl.Entries(), dest)
	var n int64
	if n, err = tbl.WriteTo(out); chk.E(err) {
		return 1
	}
	log.I.F("wrote %d bytes", n)
	return 0
}
