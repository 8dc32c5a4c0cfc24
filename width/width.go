// Package width describes the signed integer widths a fixture table can be
// generated for, and the fixed-width two's complement hexadecimal keys of
// values at each width.
package width

import (
	"encoding/binary"
	"math"
	"strconv"

	"github.com/pkg/errors"

	"writeints.mleku.dev/hex"
)

// ErrInvalidWidth is returned for any width selector other than 8, 16, 32 and
// 64.
var ErrInvalidWidth = errors.New("invalid width")

// W is a signed integer width in bits.
type W uint8

const (
	W8  W = 8
	W16 W = 16
	W32 W = 32
	W64 W = 64
)

// All is every supported width in ascending order.
var All = []W{W8, W16, W32, W64}

// Parse accepts exactly the decimal strings "8", "16", "32" and "64".
func Parse(s string) (w W, err error) {
	switch s {
	case "8":
		w = W8
	case "16":
		w = W16
	case "32":
		w = W32
	case "64":
		w = W64
	default:
		err = errors.Wrapf(ErrInvalidWidth, "%q", s)
	}
	return
}

// Valid reports whether w is one of the supported widths.
func (w W) Valid() bool { return w == W8 || w == W16 || w == W32 || w == W64 }

// String is the decimal bit count, the form Parse accepts.
func (w W) String() string { return strconv.Itoa(int(w)) }

// Bits is the width in bits.
func (w W) Bits() int { return int(w) }

// Bytes is the width in bytes.
func (w W) Bytes() int { return int(w) / 8 }

// Digits is the number of hexadecimal digits in a padded key.
func (w W) Digits() int { return int(w) / 4 }

// Min is the smallest signed value at this width.
func (w W) Min() int64 { return math.MinInt64 >> (64 - w.Bits()) }

// Max is the largest signed value at this width.
func (w W) Max() int64 { return math.MaxInt64 >> (64 - w.Bits()) }

// Contains reports whether v is representable at this width.
func (w W) Contains(v int64) bool { return v >= w.Min() && v <= w.Max() }

// AppendKey appends the 0x prefixed upper case hexadecimal two's complement
// encoding of v truncated to the width. With pad the key always has Digits
// digits, otherwise leading zeroes are dropped down to a single digit.
func (w W) AppendKey(dst []byte, v int64, pad bool) (b []byte) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(v))
	b = append(dst, '0', 'x')
	l := len(b)
	b = hex.EncAppendUpper(b, buf[8-w.Bytes():])
	if pad {
		return
	}
	digits := b[l:]
	var i int
	for i < len(digits)-1 && digits[i] == '0' {
		i++
	}
	return append(b[:l], digits[i:]...)
}

// DecodeKey is the inverse of AppendKey: it reads a hexadecimal key, with or
// without the 0x prefix and padding, and sign extends it from the width.
func (w W) DecodeKey(key []byte) (v int64, err error) {
	if len(key) >= 2 && key[0] == '0' && (key[1] == 'x' || key[1] == 'X') {
		key = key[2:]
	}
	if len(key) == 0 || len(key) > w.Digits() {
		err = errors.Errorf("key %q does not fit %d bit width", key, w)
		return
	}
	padded := make([]byte, w.Digits())
	for i := range padded {
		padded[i] = '0'
	}
	copy(padded[w.Digits()-len(key):], key)
	var raw []byte
	if raw, err = hex.DecAppend(make([]byte, 0, 8), padded); err != nil {
		err = errors.Wrapf(err, "key %q", key)
		return
	}
	var u uint64
	for _, c := range raw {
		u = u<<8 | uint64(c)
	}
	shift := 64 - w.Bits()
	v = int64(u<<shift) >> shift
	return
}
