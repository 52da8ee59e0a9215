package parser

import (
	"fmt"
	"strconv"
	"strings"
)

// OASVersion is the major.minor series of an OpenAPI 3.x document.
type OASVersion int

const (
	// Unknown represents a version outside the supported 3.x series
	Unknown OASVersion = iota
	// OASVersion30 is OpenAPI Specification 3.0.x
	OASVersion30
	// OASVersion31 is OpenAPI Specification 3.1.x
	OASVersion31
	// OASVersion32 is OpenAPI Specification 3.2.x
	OASVersion32
)

var versionToString = map[OASVersion]string{
	OASVersion30: "3.0",
	OASVersion31: "3.1",
	OASVersion32: "3.2",
}

func (v OASVersion) String() string {
	if s, ok := versionToString[v]; ok {
		return s
	}
	return "unknown"
}

// IsValid returns true if this is a supported version series
func (v OASVersion) IsValid() bool {
	_, ok := versionToString[v]
	return ok
}

// ParseVersion maps an "openapi" field value such as "3.0.3" or "3.1.0-rc1"
// to its version series, and reports false for anything outside 3.0, 3.1
// and 3.2.
func ParseVersion(s string) (OASVersion, bool) {
	major, minor, err := parseVersion(s)
	if err != nil || major != 3 {
		return Unknown, false
	}
	switch minor {
	case 0:
		return OASVersion30, true
	case 1:
		return OASVersion31, true
	case 2:
		return OASVersion32, true
	default:
		return Unknown, false
	}
}

// parseVersion parses "major.minor[.patch][-prerelease]".
func parseVersion(s string) (major, minor int, err error) {
	base, _, _ := strings.Cut(s, "-")
	parts := strings.Split(base, ".")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, 0, fmt.Errorf("invalid version format: %q", s)
	}
	nums := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return 0, 0, fmt.Errorf("invalid version segment %q in %q", part, s)
		}
		nums[i] = n
	}
	return nums[0], nums[1], nil
}
