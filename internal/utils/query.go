// Package utils holds small parsing helpers for query-string values. They do
// not depend on the catalog or on gin.
package utils

import (
	"strconv"
	"strings"
)

// AtoiDefault parses s as a base-10 int, returning def when s is empty or
// not a valid int. Surrounding spaces are not trimmed.
func AtoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}

// ParseBoolDefault accepts the strconv.ParseBool spellings plus yes/no and
// on/off, case-insensitively. Anything else yields def.
func ParseBoolDefault(s string, def bool) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "":
		return def
	case "yes", "on":
		return true
	case "no", "off":
		return false
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return def
}

// ClampInt bounds n to [lo, hi]. It assumes lo <= hi.
func ClampInt(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
