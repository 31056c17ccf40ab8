package querystring

import (
	"fmt"
	"strings"
)

func (s Standard) String() string {
	switch s {
	case RFC3986:
		return "rfc3986"
	case Legacy:
		return "legacy"
	default:
		return fmt.Sprintf("Standard(%d)", int(s))
	}
}

// ParseStandard parses "rfc3986" or "legacy" (case-insensitive).
func ParseStandard(s string) (Standard, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rfc3986":
		return RFC3986, nil
	case "legacy":
		return Legacy, nil
	}

	return 0, fmt.Errorf("unknown encoding standard %q (expected rfc3986|legacy)", s)
}

func (s SpaceEncoding) String() string {
	switch s {
	case Percent20:
		return "percent20"
	case Plus:
		return "plus"
	default:
		return fmt.Sprintf("SpaceEncoding(%d)", int(s))
	}
}

// ParseSpaceEncoding parses "percent20" or "plus" (case-insensitive).
func ParseSpaceEncoding(s string) (SpaceEncoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "percent20":
		return Percent20, nil
	case "plus":
		return Plus, nil
	}

	return 0, fmt.Errorf("unknown space encoding %q (expected percent20|plus)", s)
}
