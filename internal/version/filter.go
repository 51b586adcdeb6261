package version

import "fmt"

// Filter selects which comparison outcomes a caller wants to keep.
type Filter int

const (
	FilterLess Filter = iota
	FilterGreater
	FilterEqual
	FilterGreaterOrEqual
	FilterLessOrEqual
	FilterNotEqual
)

// DefaultFilterToken is the relation used when the user does not pick one.
const DefaultFilterToken = "greater-than"

// String returns the long token for the filter
func (f Filter) String() string {
	switch f {
	case FilterLess:
		return "less-than"
	case FilterGreater:
		return "greater-than"
	case FilterEqual:
		return "equal"
	case FilterGreaterOrEqual:
		return "greater-or-equal"
	case FilterLessOrEqual:
		return "less-or-equal"
	case FilterNotEqual:
		return "not-equal"
	default:
		return "unknown"
	}
}

// Matches reports whether rel satisfies the filter.
func (f Filter) Matches(rel Relation) bool {
	switch f {
	case FilterLess:
		return rel == Less
	case FilterGreater:
		return rel == Greater
	case FilterEqual:
		return rel == Equal
	case FilterGreaterOrEqual:
		return rel == Greater || rel == Equal
	case FilterLessOrEqual:
		return rel == Less || rel == Equal
	case FilterNotEqual:
		return rel == Less || rel == Greater
	default:
		return false
	}
}

// ParseFilter maps a CLI token to a Filter. Short tokens follow the usual
// comparison mnemonics (lt, gt, eq, ge, le, ne); long tokens spell the
// relation out.
func ParseFilter(token string) (Filter, error) {
	switch token {
	case "lt", "less-than":
		return FilterLess, nil
	case "gt", "greater-than":
		return FilterGreater, nil
	case "eq", "equal":
		return FilterEqual, nil
	case "ge", "greater-or-equal":
		return FilterGreaterOrEqual, nil
	case "le", "less-or-equal":
		return FilterLessOrEqual, nil
	case "ne", "not-equal":
		return FilterNotEqual, nil
	default:
		return 0, fmt.Errorf("unknown comparison %q (want lt, gt, eq, ge, le or ne)", token)
	}
}
