package pathvalue

import "strings"

// Separator splits a path into segments.
const Separator = "."

// Split returns the segments of path.
func Split(path string) []string {
	return strings.Split(path, Separator)
}

// Set writes value into target at path, creating intermediate maps as needed.
func Set(target map[string]any, path string, value any) {
	segments := Split(path)
	current := target
	for _, seg := range segments[:len(segments)-1] {
		next, ok := current[seg].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[seg] = next
		}
		current = next
	}
	current[segments[len(segments)-1]] = value
}

// Get returns the value stored at path, and whether every segment existed.
func Get(target map[string]any, path string) (any, bool) {
	var current any = target
	for _, seg := range Split(path) {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[seg]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// Merge deep-merges src into dst and returns dst. Values from src win,
// except that two maps at the same key are merged recursively. Maps taken
// from src are copied so later writes to dst never reach the caller's data.
func Merge(dst, src map[string]any) map[string]any {
	if dst == nil {
		dst = make(map[string]any, len(src))
	}
	for key, value := range src {
		srcMap, srcIsMap := value.(map[string]any)
		if !srcIsMap {
			dst[key] = value
			continue
		}
		if dstMap, ok := dst[key].(map[string]any); ok {
			dst[key] = Merge(dstMap, srcMap)
			continue
		}
		dst[key] = Clone(srcMap)
	}
	return dst
}

// Clone returns a deep copy of the map structure of m. Leaf values are
// copied by assignment.
func Clone(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for key, value := range m {
		if nested, ok := value.(map[string]any); ok {
			out[key] = Clone(nested)
			continue
		}
		out[key] = value
	}
	return out
}
