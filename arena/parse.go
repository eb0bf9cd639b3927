package arena

import (
	"strings"

	"github.com/joshuapare/pathkit/arena/tree"
)

// parseFirst inspects the first raw component of an input and returns the
// anchor it selects plus its own components. A component that is itself a
// full path string ("/home/user") is parsed whole, so anchoring survives
// round trips through Parts.
func (a *Allocator) parseFirst(s string) (kind tree.RootKind, drive string, comps []string) {
	if s == "" || s == "." {
		return tree.RootRelative, "", nil
	}

	// Drive prefix ("C:", "c:/users") before the absolute check, since a
	// separator may follow the colon.
	if len(s) >= 2 && s[1] == ':' {
		rest := strings.TrimLeft(s[2:], a.sep+`\`)
		// Folded here as well as in DriveRoot so "c:" and "C:" share a
		// memo entry, not just a node.
		return tree.RootDrive, strings.ToUpper(s[:1]), a.appendSplit(nil, rest)
	}

	if strings.HasPrefix(s, a.sep) {
		return tree.RootAbsolute, "", a.appendSplit(nil, s[len(a.sep):])
	}

	return tree.RootRelative, "", a.appendSplit(nil, s)
}

// appendSplit splits part on the separator (treating backslashes as
// separators as well) and appends the non-empty tokens to comps.
func (a *Allocator) appendSplit(comps []string, part string) []string {
	if part == "" {
		return comps
	}
	if strings.Contains(part, `\`) {
		part = strings.ReplaceAll(part, `\`, a.sep)
	}
	for _, tok := range strings.Split(part, a.sep) {
		if tok != "" {
			comps = append(comps, tok)
		}
	}
	return comps
}

// memoKey builds the cache key for a normalized anchor + component list.
// NUL separators keep distinct component lists from colliding.
func memoKey(kind tree.RootKind, drive string, comps []string) string {
	n := 2 + len(drive)
	for _, c := range comps {
		n += len(c) + 1
	}
	var b strings.Builder
	b.Grow(n)
	b.WriteByte(byte('0' + kind))
	b.WriteString(drive)
	for _, c := range comps {
		b.WriteByte(0)
		b.WriteString(c)
	}
	return b.String()
}
