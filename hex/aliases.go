// Package hex is a set of shortcuts for hexadecimal encoding, with the append
// variants backed by the SIMD accelerated xhex codec.
package hex

import (
	"bytes"
	"encoding/hex"

	"github.com/templexxx/xhex"

	"writeints.mleku.dev/chk"
)

var Enc = hex.EncodeToString

type InvalidByteError = hex.InvalidByteError

// EncAppend appends the lower case hex of src to dst.
func EncAppend(dst, src []byte) (b []byte) {
	l := len(dst)
	dst = append(dst, make([]byte, len(src)*2)...)
	xhex.Encode(dst[l:], src)
	return dst
}

// EncAppendUpper appends the upper case hex of src to dst.
func EncAppendUpper(dst, src []byte) (b []byte) {
	l := len(dst)
	b = EncAppend(dst, src)
	upper := bytes.ToUpper(b[l:])
	copy(b[l:], upper)
	return
}

// DecAppend decodes src, which may be in either case, and appends the bytes to
// dst.
func DecAppend(dst, src []byte) (b []byte, err error) {
	if len(src)%2 != 0 {
		err = hex.ErrLength
		return
	}
	for i, c := range src {
		if !isHex(c) {
			err = InvalidByteError(src[i])
			return
		}
	}
	l := len(dst)
	b = append(dst, make([]byte, len(src)/2)...)
	if err = xhex.Decode(b[l:], bytes.ToLower(src)); chk.D(err) {
		return
	}
	return
}

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
