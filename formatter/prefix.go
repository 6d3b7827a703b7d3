package formatter

import (
	"strings"
	"time"

	"github.com/philipp01105/levellog/core"
)

// TimestampWidth is the length of an AppendTimestamp rendering.
const TimestampWidth = len("15:04:05:000")

// AppendTimestamp appends t as HH:MM:SS:mmm in local time fields,
// each zero-padded.
func AppendTimestamp(dst []byte, t time.Time) []byte {
	h, m, s := t.Clock()
	ms := t.Nanosecond() / int(time.Millisecond)
	dst = appendPadded(dst, h, 2)
	dst = append(dst, ':')
	dst = appendPadded(dst, m, 2)
	dst = append(dst, ':')
	dst = appendPadded(dst, s, 2)
	dst = append(dst, ':')
	return appendPadded(dst, ms, 3)
}

// Timestamp returns the AppendTimestamp rendering of t.
func Timestamp(t time.Time) string {
	return string(AppendTimestamp(make([]byte, 0, TimestampWidth), t))
}

// Prefix builds the record prefix: "[LEVEL] (name)", or
// "[LEVEL] HH:MM:SS:mmm (name)" when stamp is set.
func Prefix(level core.Level, name string, stamp bool, t time.Time) string {
	var b strings.Builder
	b.Grow(len(level.Name()) + len(name) + TimestampWidth + 6)
	b.WriteByte('[')
	b.WriteString(level.Name())
	b.WriteByte(']')
	b.WriteByte(' ')
	if stamp {
		var ts [TimestampWidth]byte
		b.Write(AppendTimestamp(ts[:0], t))
		b.WriteByte(' ')
	}
	b.WriteByte('(')
	b.WriteString(name)
	b.WriteByte(')')
	return b.String()
}

func appendPadded(dst []byte, v, width int) []byte {
	var digits [4]byte
	i := len(digits)
	for v >= 10 && i > 1 {
		i--
		digits[i] = byte('0' + v%10)
		v /= 10
	}
	i--
	digits[i] = byte('0' + v)
	for n := len(digits) - i; n < width; n++ {
		dst = append(dst, '0')
	}
	return append(dst, digits[i:]...)
}
