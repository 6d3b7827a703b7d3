package core

import (
	"fmt"
	"strconv"
	"time"
)

// AppendValue appends the text form of v to dst. Common scalar types
// are rendered with strconv to avoid going through fmt.
func AppendValue(dst []byte, v interface{}) []byte {
	switch x := v.(type) {
	case nil:
		return append(dst, "<nil>"...)
	case string:
		return append(dst, x...)
	case []byte:
		return append(dst, x...)
	case int:
		return strconv.AppendInt(dst, int64(x), 10)
	case int8:
		return strconv.AppendInt(dst, int64(x), 10)
	case int16:
		return strconv.AppendInt(dst, int64(x), 10)
	case int32:
		return strconv.AppendInt(dst, int64(x), 10)
	case int64:
		return strconv.AppendInt(dst, x, 10)
	case uint:
		return strconv.AppendUint(dst, uint64(x), 10)
	case uint8:
		return strconv.AppendUint(dst, uint64(x), 10)
	case uint16:
		return strconv.AppendUint(dst, uint64(x), 10)
	case uint32:
		return strconv.AppendUint(dst, uint64(x), 10)
	case uint64:
		return strconv.AppendUint(dst, x, 10)
	case float32:
		return strconv.AppendFloat(dst, float64(x), 'f', -1, 32)
	case float64:
		return strconv.AppendFloat(dst, x, 'f', -1, 64)
	case bool:
		return strconv.AppendBool(dst, x)
	case time.Time:
		return x.AppendFormat(dst, time.RFC3339)
	case time.Duration:
		return append(dst, x.String()...)
	case error:
		return append(dst, x.Error()...)
	case fmt.Stringer:
		return append(dst, x.String()...)
	default:
		return fmt.Appendf(dst, "%+v", x)
	}
}

// FormatValue returns the text form of v.
func FormatValue(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return string(AppendValue(nil, v))
}

// Sprint renders values separated by single spaces.
func Sprint(values ...interface{}) string {
	switch len(values) {
	case 0:
		return ""
	case 1:
		return FormatValue(values[0])
	}
	buf := make([]byte, 0, 16*len(values))
	for i, v := range values {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = AppendValue(buf, v)
	}
	return string(buf)
}
