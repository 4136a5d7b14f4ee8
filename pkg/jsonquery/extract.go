package jsonquery

import (
	"sort"
	"strings"
)

type segment struct {
	name       string
	descendant bool
}

// parsePath splits a path expression like "$.results.officers..officer"
// into segments. A segment introduced by "." matches a direct child key,
// one introduced by ".." matches the key at any depth below the current
// anchor. The leading "$" is optional.
func parsePath(path string) []segment {
	s := strings.TrimPrefix(path, "$")
	segments := make([]segment, 0, 4)
	for len(s) > 0 {
		descendant := false
		if strings.HasPrefix(s, "..") {
			descendant = true
			s = s[2:]
		} else if strings.HasPrefix(s, ".") {
			s = s[1:]
		}
		end := strings.Index(s, ".")
		var name string
		if end == -1 {
			name = s
			s = ""
		} else {
			name = s[:end]
			s = s[end:]
		}
		if name == "" {
			continue
		}
		segments = append(segments, segment{name: name, descendant: descendant})
	}
	return segments
}

// Extract evaluates a path expression against a parsed JSON value and
// returns every matching subtree. A missing path yields an empty slice,
// never an error; the result is safe to marshal as a JSON list.
func Extract(v interface{}, path string) []interface{} {
	matches := []interface{}{v}
	for _, seg := range parsePath(path) {
		next := make([]interface{}, 0, len(matches))
		for _, m := range matches {
			if seg.descendant {
				next = append(next, collectDescendants(m, seg.name)...)
			} else if child, ok := childValue(m, seg.name); ok {
				next = append(next, child)
			}
		}
		matches = next
		if len(matches) == 0 {
			break
		}
	}
	return matches
}

// First returns the first match of the path expression, or nil when the
// path is absent.
func First(v interface{}, path string) interface{} {
	matches := Extract(v, path)
	if len(matches) == 0 {
		return nil
	}
	return matches[0]
}

func childValue(v interface{}, name string) (interface{}, bool) {
	obj, ok := v.(map[string]interface{})
	if !ok {
		return nil, false
	}
	child, ok := obj[name]
	return child, ok
}

// collectDescendants gathers every value stored under name anywhere at
// or below v, depth-first. Array elements keep their index order; object
// keys are visited in sorted order so results are deterministic. A match
// on an object is emitted before any matches nested inside it.
func collectDescendants(v interface{}, name string) []interface{} {
	var out []interface{}
	switch node := v.(type) {
	case map[string]interface{}:
		if child, ok := node[name]; ok {
			out = append(out, child)
		}
		keys := make([]string, 0, len(node))
		for k := range node {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			out = append(out, collectDescendants(node[k], name)...)
		}
	case []interface{}:
		for _, child := range node {
			out = append(out, collectDescendants(child, name)...)
		}
	}
	return out
}
