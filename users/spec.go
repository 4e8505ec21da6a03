package users

import (
	"strconv"
	"strings"
)

// Spec is a parsed user[:group[,group...]] argument. An empty User means
// "keep the caller's identity"; a nil Groups means no group-part was given.
type Spec struct {
	User   string
	Groups []string
}

// ParseSpec splits a user spec at the first colon only, so group names
// containing colons are not supported, matching passwd file syntax. A
// trailing colon with nothing after it is the same as no group-part.
func ParseSpec(raw string) Spec {
	user, group, _ := strings.Cut(raw, ":")
	spec := Spec{User: user}
	if group != "" {
		spec.Groups = strings.Split(group, ",")
	}
	return spec
}

// ParseID parses token as a numeric uid or gid. A token is numeric only if
// the entire string is decimal digits; anything else (including a trailing
// non-digit) must go through a name lookup instead.
func ParseID(token string) (int, bool) {
	id, err := strconv.ParseUint(token, 10, 32)
	if err != nil {
		return 0, false
	}
	return int(id), true
}
