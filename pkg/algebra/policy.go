package algebra

import (
	"fmt"
	"strings"
)

// DivisionPolicy decides what a division by (0, 0, 0) produces.
type DivisionPolicy int

const (
	// STD is the partial policy: dividing by zero fails with ErrDivisionByZero.
	STD DivisionPolicy = iota
	// DBZ is the total policy: dividing by zero yields the absorbing element P.
	DBZ
)

// String returns the lower-case policy name.
func (p DivisionPolicy) String() string {
	switch p {
	case STD:
		return "std"
	case DBZ:
		return "dbz"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParsePolicy accepts "std" or "dbz" in any case.
func ParsePolicy(s string) (DivisionPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "std":
		return STD, nil
	case "dbz":
		return DBZ, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}
