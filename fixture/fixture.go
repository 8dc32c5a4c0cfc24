// Package fixture renders integer tables as JavaScript modules exporting one
// object literal that maps hexadecimal keys to decimal values.
package fixture

import (
	"bufio"
	"io"

	"github.com/pkg/errors"

	"writeints.mleku.dev/ints"
	"writeints.mleku.dev/log"
	"writeints.mleku.dev/sample"
	"writeints.mleku.dev/width"
)

const (
	Header = "export default {\n"
	Footer = "};\n"
)

// Style selects how an entry line is rendered.
type Style int

const (
	// Plain renders `\t0xKEY: VALUE,` with the key zero padded to the width.
	Plain Style = iota
	// BigInt renders `\t[0xKEYn]: VALUEn,` with an unpadded key, so a
	// JavaScript consumer reads both sides as BigInt literals.
	BigInt
)

func (s Style) String() string {
	switch s {
	case Plain:
		return "plain"
	case BigInt:
		return "bigint"
	}
	return "unknown"
}

// AppendEntry appends a single table line for v to dst.
func AppendEntry(dst []byte, w width.W, v int64, style Style) (b []byte) {
	b = append(dst, '\t')
	switch style {
	case BigInt:
		b = append(b, '[')
		b = w.AppendKey(b, v, false)
		b = append(b, 'n', ']', ':', ' ')
		b = ints.New(v).Marshal(b)
		b = append(b, 'n', ',', '\n')
	default:
		b = w.AppendKey(b, v, true)
		b = append(b, ':', ' ')
		b = ints.New(v).Marshal(b)
		b = append(b, ',', '\n')
	}
	return
}

// Table is a complete fixture document for one width.
type Table struct {
	Width width.W
	Plan  sample.Plan
	Style Style
}

// New builds the table for a width with the default sampling plan for it.
func New(w width.W, window int64, style Style) (t *Table, err error) {
	var p sample.Plan
	if p, err = sample.For(w, window); err != nil {
		return
	}
	t = &Table{Width: w, Plan: p, Style: style}
	return
}

// Entries is the number of lines between the header and footer.
func (t *Table) Entries() uint64 { return t.Plan.Len() }

// WriteTo writes the whole document to out, buffering internally.
func (t *Table) WriteTo(out io.Writer) (n int64, err error) {
	bw := bufio.NewWriter(out)
	var written int
	if written, err = bw.WriteString(Header); err != nil {
		return n, errors.Wrap(err, "writing header")
	}
	n += int64(written)
	line := make([]byte, 0, 64)
	for i, span := range t.Plan {
		log.D.F("span %d of %d: %d to %d, %d values", i+1, len(t.Plan), span.Lo, span.Hi,
			span.Len())
		for v := range span.Values() {
			line = AppendEntry(line[:0], t.Width, v, t.Style)
			if written, err = bw.Write(line); err != nil {
				return n, errors.Wrapf(err, "writing entry %d", v)
			}
			n += int64(written)
		}
	}
	if written, err = bw.WriteString(Footer); err != nil {
		return n, errors.Wrap(err, "writing footer")
	}
	n += int64(written)
	if err = bw.Flush(); err != nil {
		return n, errors.Wrap(err, "flushing")
	}
	return
}
