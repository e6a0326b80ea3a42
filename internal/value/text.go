package value

import (
	"strconv"
	"strings"
)

// Text renders v for people. An Array prints one element per line; any
// other value prints on a single line. Object fields are written as
// "key: value" in canonical key order.
func Text(v Value) string {
	var b strings.Builder
	if arr, ok := v.(Array); ok {
		for _, elem := range arr {
			writeInline(&b, elem, true)
			b.WriteByte('\n')
		}
		return b.String()
	}
	writeInline(&b, v, true)
	b.WriteByte('\n')
	return b.String()
}

func writeInline(b *strings.Builder, v Value, top bool) {
	switch val := v.(type) {
	case nil, Null:
		b.WriteString("null")
	case String:
		b.WriteString(string(val))
	case Int:
		b.WriteString(strconv.FormatInt(int64(val), 10))
	case Float:
		b.WriteString(strconv.FormatFloat(float64(val), 'g', -1, 64))
	case Decimal:
		if val.D == nil {
			b.WriteString("null")
			return
		}
		b.WriteString(val.D.Text('f'))
	case Bool:
		b.WriteString(strconv.FormatBool(bool(val)))
	case Array:
		b.WriteByte('[')
		for i, elem := range val {
			if i > 0 {
				b.WriteString(", ")
			}
			writeInline(b, elem, false)
		}
		b.WriteByte(']')
	case Object:
		if !top {
			b.WriteByte('{')
		}
		for i, k := range val.SortedKeys() {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(k)
			b.WriteString(": ")
			writeInline(b, val[k], false)
		}
		if !top {
			b.WriteByte('}')
		}
	}
}
