package journal

import (
	"regexp"
	"strconv"
	"strings"
)

var tildeSuffix = regexp.MustCompile(`~(-?\d+)$`)

// ParseOffsets strips trailing ancestor operators from a date expression and
// returns the stripped expression, the accumulated offset, and whether any
// operator was present at all.
//
// Each trailing "^" adds one to the offset; a trailing "~N" (N a signed
// integer) adds N. The two forms may be mixed and repeat. A bare trailing
// "~" with no digits is not an operator and is left on the expression.
//
// The present flag matters even when the offset sums to zero: an explicit
// "~0" still demands the base resolve to an existing entry.
func ParseOffsets(expr string) (stripped string, offset int, present bool) {
	for {
		if strings.HasSuffix(expr, "^") {
			offset++
			present = true
			expr = strings.TrimSuffix(expr, "^")
			continue
		}

		if m := tildeSuffix.FindStringSubmatch(expr); m != nil {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				// Absurdly long digit runs overflow int; stop parsing
				// and let the remainder fail date parsing instead.
				return expr, offset, present
			}
			offset += n
			present = true
			expr = expr[:len(expr)-len(m[0])]
			continue
		}

		return expr, offset, present
	}
}
