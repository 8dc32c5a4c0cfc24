package fixture

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"writeints.mleku.dev/ints"
	"writeints.mleku.dev/sample"
	"writeints.mleku.dev/width"
)

type entry struct {
	key   string
	value int64
}

// entries splits a rendered document into its key/value lines, checking the
// surrounding header and footer.
func entries(t *testing.T, doc string, style Style) (es []entry) {
	t.Helper()
	require.True(t, strings.HasPrefix(doc, Header))
	require.True(t, strings.HasSuffix(doc, Footer))
	body := strings.TrimSuffix(strings.TrimPrefix(doc, Header), Footer)
	lines := strings.SplitAfter(body, "\n")
	require.Equal(t, "", lines[len(lines)-1])
	for _, l := range lines[:len(lines)-1] {
		require.True(t, strings.HasPrefix(l, "\t"), l)
		key, val, ok := strings.Cut(strings.TrimPrefix(l, "\t"), ": ")
		require.True(t, ok, l)
		if style == BigInt {
			require.True(t, strings.HasPrefix(key, "[") && strings.HasSuffix(key, "n]"), l)
			key = strings.TrimSuffix(strings.TrimPrefix(key, "["), "n]")
			require.True(t, strings.HasSuffix(val, "n,\n"), l)
		} else {
			require.True(t, strings.HasSuffix(val, ",\n"), l)
		}
		n := ints.New(0)
		rem, err := n.Unmarshal([]byte(val))
		require.NoError(t, err)
		if style == BigInt {
			require.Equal(t, "n,\n", string(rem))
		} else {
			require.Equal(t, ",\n", string(rem))
		}
		es = append(es, entry{key, n.Int64()})
	}
	return
}

func render(t *testing.T, w width.W, style Style) string {
	t.Helper()
	tbl, err := New(w, sample.DefaultWindow, style)
	require.NoError(t, err)
	var buf bytes.Buffer
	n, err := tbl.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(buf.Len()), n)
	return buf.String()
}

func TestWidth8(t *testing.T) {
	doc := render(t, width.W8, Plain)
	require.True(t, strings.HasPrefix(doc, "export default {\n\t0x80: -128,\n\t0x81: -127,\n"))
	require.Contains(t, doc, "\t0xFF: -1,\n\t0x00: 0,\n\t0x01: 1,\n")
	require.True(t, strings.HasSuffix(doc, "\t0x7E: 126,\n\t0x7F: 127,\n};\n"))
	es := entries(t, doc, Plain)
	require.Len(t, es, 256)
	for i, e := range es {
		require.Equal(t, int64(i-128), e.value)
		require.Len(t, e.key, 4)
	}
}

func TestWidth16(t *testing.T) {
	es := entries(t, render(t, width.W16, Plain), Plain)
	require.Len(t, es, 65536)
	for i, e := range es {
		require.Equal(t, int64(i+math.MinInt16), e.value)
	}
	require.Equal(t, entry{"0x8000", math.MinInt16}, es[0])
	require.Equal(t, entry{"0xFFFF", -1}, es[32767])
	require.Equal(t, entry{"0x0000", 0}, es[32768])
	require.Equal(t, entry{"0x7FFF", math.MaxInt16}, es[65535])
}

func TestWidth32(t *testing.T) {
	es := entries(t, render(t, width.W32, Plain), Plain)
	require.Len(t, es, 4097)
	require.Equal(t, entry{"0x80000000", math.MinInt32}, es[0])
	require.Equal(t, int64(math.MinInt32+1023), es[1023].value)
	for i := range 2048 {
		require.Equal(t, int64(i-1024), es[1024+i].value)
	}
	require.Equal(t, entry{"0xFFFFFC00", -1024}, es[1024])
	for i := range 1024 {
		require.Equal(t, int64(math.MaxInt32-1024+i), es[3072+i].value)
	}
	require.Equal(t, entry{"0x7FFFFBFF", math.MaxInt32 - 1024}, es[3072])
	require.Equal(t, entry{"0x7FFFFFFF", math.MaxInt32}, es[4096])
}

func TestWidth64(t *testing.T) {
	es := entries(t, render(t, width.W64, Plain), Plain)
	require.Len(t, es, 4097)
	require.Equal(t, entry{"0x8000000000000000", math.MinInt64}, es[0])
	require.Equal(t, entry{"0xFFFFFFFFFFFFFC00", -1024}, es[1024])
	require.Equal(t, entry{"0x0000000000000000", 0}, es[2048])
	require.Equal(t, entry{"0x7FFFFFFFFFFFFFFE", math.MaxInt64 - 1}, es[4095])
	require.Equal(t, entry{"0x7FFFFFFFFFFFFFFF", math.MaxInt64}, es[4096])
}

func TestWidth64BigInt(t *testing.T) {
	doc := render(t, width.W64, BigInt)
	require.True(t, strings.HasPrefix(doc,
		"export default {\n\t[0x8000000000000000n]: -9223372036854775808n,\n"))
	require.Contains(t, doc, "\t[0xFFFFFFFFFFFFFFFFn]: -1n,\n\t[0x0n]: 0n,\n\t[0x1n]: 1n,\n")
	require.Contains(t, doc, "\t[0x3FFn]: 1023n,\n\t[0x7FFFFFFFFFFFFBFFn]: 9223372036854774783n,\n")
	require.True(t, strings.HasSuffix(doc, "\t[0x7FFFFFFFFFFFFFFFn]: 9223372036854775807n,\n};\n"))
	require.Len(t, entries(t, doc, BigInt), 4097)
}

func TestKeysDecodeToValues(t *testing.T) {
	for _, w := range width.All {
		for _, style := range []Style{Plain, BigInt} {
			for _, e := range entries(t, render(t, w, style), style) {
				v, err := w.DecodeKey([]byte(e.key))
				require.NoError(t, err)
				require.Equal(t, e.value, v, "width %d key %s", w, e.key)
				if style == Plain {
					require.Len(t, e.key, 2+w.Digits())
				}
			}
		}
	}
}

func TestDeterministic(t *testing.T) {
	for _, w := range width.All {
		require.Equal(t, render(t, w, Plain), render(t, w, Plain))
	}
}

func TestSmallWindow(t *testing.T) {
	tbl, err := New(width.W32, 2, Plain)
	require.NoError(t, err)
	require.Equal(t, uint64(9), tbl.Entries())
	var buf bytes.Buffer
	_, err = tbl.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, "export default {\n"+
		"\t0x80000000: -2147483648,\n"+
		"\t0x80000001: -2147483647,\n"+
		"\t0xFFFFFFFE: -2,\n"+
		"\t0xFFFFFFFF: -1,\n"+
		"\t0x00000000: 0,\n"+
		"\t0x00000001: 1,\n"+
		"\t0x7FFFFFFD: 2147483645,\n"+
		"\t0x7FFFFFFE: 2147483646,\n"+
		"\t0x7FFFFFFF: 2147483647,\n"+
		"};\n", buf.String())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteFailure(t *testing.T) {
	for _, w := range []width.W{width.W8, width.W16} {
		tbl, err := New(w, sample.DefaultWindow, Plain)
		require.NoError(t, err)
		_, err = tbl.WriteTo(failWriter{})
		require.ErrorContains(t, err, "disk full")
	}
}
