package item

import (
	"fmt"
	"strings"
)

// Access represents an element access level
type Access int

const (
	AccessUnspecified Access = iota
	AccessPublic
	AccessProtected
	AccessInternal
	AccessProtectedInternal
	AccessPrivateProtected
	AccessPrivate
)

var accessNames = map[Access]string{
	AccessUnspecified:       "unspecified",
	AccessPublic:            "public",
	AccessProtected:         "protected",
	AccessInternal:          "internal",
	AccessProtectedInternal: "protected internal",
	AccessPrivateProtected:  "private protected",
	AccessPrivate:           "private",
}

// String returns access keyword(s)
func (a Access) String() string {
	if name, ok := accessNames[a]; ok {
		return name
	}
	return fmt.Sprintf("access(%d)", int(a))
}

// ParseAccess parses access keyword(s), i.e. "protected internal"
func ParseAccess(text string) (Access, error) {
	normalized := strings.Join(strings.Fields(strings.ToLower(text)), " ")
	switch normalized {
	case "internal protected":
		return AccessProtectedInternal, nil
	case "protected private":
		return AccessPrivateProtected, nil
	}
	for access, name := range accessNames {
		if name == normalized {
			return access, nil
		}
	}
	return AccessUnspecified, fmt.Errorf("unsupported access: %q", text)
}
