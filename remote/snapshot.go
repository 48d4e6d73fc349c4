package remote

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Snapshot is an immutable view of the tree found at a path.
// Interior nodes are map[string]any, leaves are string, bool or float64.
type Snapshot struct {
	path  string
	value any
}

func NewSnapshot(path string, value any) Snapshot {
	return Snapshot{path: strings.Trim(path, "/"), value: value}
}

func (s Snapshot) Path() string { return s.path }

// Key is the last segment of the path.
func (s Snapshot) Key() string {
	if i := strings.LastIndex(s.path, "/"); i >= 0 {
		return s.path[i+1:]
	}
	return s.path
}

func (s Snapshot) Exists() bool { return s.value != nil }

func (s Snapshot) Value() any { return s.value }

// Child walks down a relative path, which may contain several segments.
func (s Snapshot) Child(relative string) Snapshot {
	relative = strings.Trim(relative, "/")
	current := s.value
	for _, segment := range strings.Split(relative, "/") {
		node, ok := current.(map[string]any)
		if !ok {
			current = nil
			break
		}
		current = node[segment]
	}
	return Snapshot{path: childPath(s.path, relative), value: current}
}

// Children lists direct children in the store's natural order.
func (s Snapshot) Children() []Snapshot {
	node, ok := s.value.(map[string]any)
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(node))
	for k := range node {
		keys = append(keys, k)
	}
	SortKeys(keys)
	children := make([]Snapshot, 0, len(keys))
	for _, k := range keys {
		children = append(children, Snapshot{path: childPath(s.path, k), value: node[k]})
	}
	return children
}

func childPath(parent, child string) string {
	if parent == "" {
		return child
	}
	return parent + "/" + child
}

func (s Snapshot) String() (string, bool) {
	v, ok := s.value.(string)
	return v, ok
}

func (s Snapshot) Bool() (bool, bool) {
	v, ok := s.value.(bool)
	return v, ok
}

func (s Snapshot) Int64() (int64, bool) {
	switch v := s.value.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return int64(v), true
	case int64:
		return v, true
	case int:
		return int64(v), true
	}
	return 0, false
}

// SortKeys orders keys the way the store hands children back:
// integer keys first by numeric value, then the others lexicographically.
func SortKeys(keys []string) {
	sort.Slice(keys, func(i, j int) bool {
		a, aErr := strconv.ParseInt(keys[i], 10, 32)
		b, bErr := strconv.ParseInt(keys[j], 10, 32)
		switch {
		case aErr == nil && bErr == nil:
			return a < b
		case aErr == nil:
			return true
		case bErr == nil:
			return false
		default:
			return keys[i] < keys[j]
		}
	})
}
