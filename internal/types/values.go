package types

import "strings"

// UnboundedSentinel is the literal the table uses for "no bound".
//
// Only this exact string is recognised, for the upper bound as well as the
// lower one. "888888" is therefore rendered as a real upper bound; tables in
// the wild use -888888 in both columns, and reports must stay comparable with
// the ones produced so far.
const UnboundedSentinel = "-888888"

// IsTrue reports whether a boundedness flag is set. The table is written by
// hand and by Fortran tooling, so both "TRUE" (any case) and ".true." appear.
// Anything else, including an empty field, is false.
func IsTrue(flag string) bool {
	flag = strings.TrimSpace(flag)
	return strings.EqualFold(flag, "TRUE") || flag == ".true."
}

// IsUnbounded reports whether a bound value means "no bound": empty, "none"
// in any case, or the sentinel.
func IsUnbounded(value string) bool {
	value = strings.TrimSpace(value)
	return value == "" || strings.EqualFold(value, "none") || value == UnboundedSentinel
}
