package remote

import (
	"fmt"
	"lost-found/errors"
	"strconv"
	"strings"

	"google.golang.org/protobuf/types/known/structpb"
)

// flatten turns a JSON-like value into its leaves, keyed by path.
// Lists become children "0", "1", ... and empty containers produce no leaf,
// so writing them is the same as deleting.
func flatten(path string, value any, leaves map[string]*structpb.Value) error {
	switch v := value.(type) {
	case nil:
		return nil
	case map[string]any:
		for key, child := range v {
			if key == "" || strings.ContainsAny(key, forbiddenChars+"/") {
				return fmt.Errorf("%w: bad key %q under %q", errors.ErrInvalidPath, key, path)
			}
			if err := flatten(path+"/"+key, child, leaves); err != nil {
				return err
			}
		}
		return nil
	case []any:
		for i, child := range v {
			if err := flatten(path+"/"+strconv.Itoa(i), child, leaves); err != nil {
				return err
			}
		}
		return nil
	case []string:
		for i, child := range v {
			leaves[path+"/"+strconv.Itoa(i)] = structpb.NewStringValue(child)
		}
		return nil
	case map[string]string:
		for key, child := range v {
			if key == "" || strings.ContainsAny(key, forbiddenChars+"/") {
				return fmt.Errorf("%w: bad key %q under %q", errors.ErrInvalidPath, key, path)
			}
			leaves[path+"/"+key] = structpb.NewStringValue(child)
		}
		return nil
	case []byte:
		return fmt.Errorf("unsupported value type %T at %q", value, path)
	}
	leaf, err := structpb.NewValue(value)
	if err != nil {
		return fmt.Errorf("unsupported value at %q: %w", path, err)
	}
	if _, isList := leaf.GetKind().(*structpb.Value_ListValue); isList {
		return fmt.Errorf("unsupported value type %T at %q", value, path)
	}
	if _, isStruct := leaf.GetKind().(*structpb.Value_StructValue); isStruct {
		return fmt.Errorf("unsupported value type %T at %q", value, path)
	}
	leaves[path] = leaf
	return nil
}

// Normalize gives a written value the exact shape a later read will return.
func Normalize(value any) (any, error) {
	leaves := make(map[string]*structpb.Value)
	if err := flatten("", value, leaves); err != nil {
		return nil, err
	}
	root := make(map[string]any)
	var scalar any
	for key, leaf := range leaves {
		if key == "" {
			scalar = leaf.AsInterface()
			continue
		}
		insert(root, strings.Split(strings.TrimPrefix(key, "/"), "/"), leaf.AsInterface())
	}
	if scalar != nil {
		return scalar, nil
	}
	if len(root) == 0 {
		return nil, nil
	}
	return root, nil
}

// insert places a leaf value inside a nested map, creating interior nodes as needed.
func insert(root map[string]any, segments []string, value any) {
	node := root
	for _, segment := range segments[:len(segments)-1] {
		next, ok := node[segment].(map[string]any)
		if !ok {
			next = make(map[string]any)
			node[segment] = next
		}
		node = next
	}
	node[segments[len(segments)-1]] = value
}
