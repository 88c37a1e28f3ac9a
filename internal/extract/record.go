package extract

// Record is one parsed trial registry document. It is an opaque JSON
// object tree and is never mutated; every accessor degrades to a zero
// value when a path segment is missing or has an unexpected type.
type Record map[string]any

// object walks a fixed path of nested keys and returns the object found
// there, or nil.
func (r Record) object(keys ...string) Record {
	cur := r
	for _, k := range keys {
		next, ok := cur[k].(map[string]any)
		if !ok {
			return nil
		}
		cur = next
	}
	return cur
}

// str returns the string at the given path, or "".
func (r Record) str(keys ...string) string {
	if len(keys) == 0 {
		return ""
	}
	parent := r.object(keys[:len(keys)-1]...)
	if parent == nil {
		return ""
	}
	s, _ := parent[keys[len(keys)-1]].(string)
	return s
}

// num returns the number at the given path. JSON numbers decode as float64.
func (r Record) num(keys ...string) (float64, bool) {
	if len(keys) == 0 {
		return 0, false
	}
	parent := r.object(keys[:len(keys)-1]...)
	if parent == nil {
		return 0, false
	}
	n, ok := parent[keys[len(keys)-1]].(float64)
	return n, ok
}

// list returns the array at the given path, or nil.
func (r Record) list(keys ...string) []any {
	if len(keys) == 0 {
		return nil
	}
	parent := r.object(keys[:len(keys)-1]...)
	if parent == nil {
		return nil
	}
	l, _ := parent[keys[len(keys)-1]].([]any)
	return l
}

// objects returns the array at the given path filtered to object elements.
func (r Record) objects(keys ...string) []Record {
	raw := r.list(keys...)
	if len(raw) == 0 {
		return nil
	}
	out := make([]Record, 0, len(raw))
	for _, e := range raw {
		if m, ok := e.(map[string]any); ok {
			out = append(out, Record(m))
		}
	}
	return out
}

// strings returns the array at the given path filtered to string elements.
func (r Record) strings(keys ...string) []string {
	raw := r.list(keys...)
	if len(raw) == 0 {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, e := range raw {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
