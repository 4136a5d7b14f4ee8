package jsonquery

// StripKey removes every occurrence of key from every object in the tree
// rooted at v, however deeply nested. Objects are mutated in place and
// processed depth-first; arrays are walked element by element in index
// order. Values that are neither objects nor arrays pass through
// untouched, as does a nil root. Running it again over its own output
// changes nothing.
func StripKey(v interface{}, key string) interface{} {
	switch node := v.(type) {
	case map[string]interface{}:
		delete(node, key)
		for _, child := range node {
			StripKey(child, key)
		}
	case []interface{}:
		for _, child := range node {
			StripKey(child, key)
		}
	}
	return v
}
