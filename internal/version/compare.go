package version

import (
	"strings"

	pep440 "github.com/aquasecurity/go-pep440-version"
)

// Relation is the outcome of comparing two version strings.
type Relation int

const (
	Less Relation = iota
	Equal
	Greater
)

// String returns the comparison symbol for the relation
func (r Relation) String() string {
	switch r {
	case Less:
		return "<"
	case Greater:
		return ">"
	default:
		return "="
	}
}

// numericPadWidth is the width all-digit segments are padded to in the
// lexical fallback, so "2" sorts before "10".
const numericPadWidth = 8

// Compare orders two raw version strings.
//
// Identical strings compare Equal without any parsing. Otherwise both
// sides are parsed as release versions (numeric epoch, release segments,
// pre/post/dev qualifiers, local labels) and ordered under that scheme's
// total order. When either side does not parse, comparison degrades to a
// normalized lexical order; that path never reports Equal, even for
// distinct strings whose normalized forms collide (a known asymmetry,
// kept on purpose). Compare is total: any pair of strings yields a
// Relation, it never fails.
func Compare(a, b string) Relation {
	if a == b {
		return Equal
	}

	va, errA := pep440.Parse(a)
	vb, errB := pep440.Parse(b)
	if errA == nil && errB == nil {
		switch {
		case va.LessThan(vb):
			return Less
		case va.GreaterThan(vb):
			return Greater
		default:
			return Equal
		}
	}

	return compareLoose(a, b)
}

// compareLoose orders two strings by their normalized forms. When the
// normalized forms tie, the result is Greater; distinct inputs therefore
// never come back Equal from this path.
func compareLoose(a, b string) Relation {
	if NormalizeLoose(a) < NormalizeLoose(b) {
		return Less
	}
	return Greater
}

// NormalizeLoose rewrites a version string for lexical comparison: the
// string is split on ".", all-digit segments are left-padded with zeros
// to at least 8 characters (leading zeros dropped first), and any other
// segment is lowercased.
func NormalizeLoose(s string) string {
	parts := strings.Split(s, ".")
	for i, p := range parts {
		if isDigits(p) {
			parts[i] = padNumeric(p)
		} else {
			parts[i] = strings.ToLower(p)
		}
	}
	return strings.Join(parts, ".")
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// padNumeric mirrors %08d formatting without converting to an integer,
// so segments longer than 19 digits cannot overflow.
func padNumeric(s string) string {
	s = strings.TrimLeft(s, "0")
	if s == "" {
		s = "0"
	}
	if len(s) >= numericPadWidth {
		return s
	}
	return strings.Repeat("0", numericPadWidth-len(s)) + s
}
