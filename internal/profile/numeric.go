package profile

import (
	"regexp"
	"strings"
	"sync"
)

// plainNumber matches a signed integer or decimal after whitespace trimming
var plainNumber = regexp.MustCompile(`^[+-]?[0-9]+(\.[0-9]+)?$`)

var (
	groupedMu      sync.Mutex
	groupedByDelim = make(map[string]*regexp.Regexp)
)

// groupedNumber returns the pattern for a thousands-grouped decimal using
// the given delimiter as the grouping separator, e.g. 1,234,567.89 for ",".
func groupedNumber(delimiter string) *regexp.Regexp {
	groupedMu.Lock()
	defer groupedMu.Unlock()

	if re, ok := groupedByDelim[delimiter]; ok {
		return re
	}

	d := regexp.QuoteMeta(delimiter)
	re := regexp.MustCompile(`^[+-]?[0-9]{1,3}(` + d + `[0-9]{3})+(\.[0-9]+)?$`)
	groupedByDelim[delimiter] = re
	return re
}

// IsNumeric reports whether a value looks like a number. Besides plain
// integers and decimals it accepts thousands-grouped decimals whose grouping
// separator is the field delimiter: a legitimately formatted large number can
// itself contain the delimiter and must not be mistaken for a corrupted
// field boundary.
func IsNumeric(value, delimiter string) bool {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return false
	}

	if plainNumber.MatchString(trimmed) {
		return true
	}

	return groupedNumber(delimiter).MatchString(trimmed)
}
