package ir

import "strings"

// Path is an ordered sequence of mapping keys addressing a node in a
// document, e.g. ["commands", "build", "usage"].
type Path []string

// ParsePath splits a dotted path string. Empty input yields an empty
// path; dots inside keys are not supported by this addressing scheme.
func ParsePath(s string) Path {
	if s == "" {
		return nil
	}
	return Path(strings.Split(s, "."))
}

func (p Path) String() string {
	return strings.Join(p, ".")
}

func (p Path) Parent() Path {
	if len(p) == 0 {
		return nil
	}
	return p[:len(p)-1]
}

func (p Path) Last() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

func (p Path) Child(key string) Path {
	res := make(Path, len(p)+1)
	copy(res, p)
	res[len(p)] = key
	return res
}
