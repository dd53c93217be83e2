package validate

import (
	"strconv"
	"strings"
)

// ID parses a positive integer identifier from a query or form value.
func ID(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
