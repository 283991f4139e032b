package interrogate

import (
	"reflect"
	"sort"
)

// Change is one top-level key whose values differ between two details.
// A key absent on one side appears with a nil value.
type Change struct {
	Key   string `json:"key"`
	Left  any    `json:"left"`
	Right any    `json:"right"`
}

// Diff compares the top-level keys of two detail maps and returns the
// keys whose values differ, sorted by key name.
func Diff(left, right map[string]any) []Change {
	keys := make(map[string]struct{}, len(left)+len(right))
	for k := range left {
		keys[k] = struct{}{}
	}
	for k := range right {
		keys[k] = struct{}{}
	}

	var changes []Change
	for k := range keys {
		lv, rv := left[k], right[k]
		if !reflect.DeepEqual(lv, rv) {
			changes = append(changes, Change{Key: k, Left: lv, Right: rv})
		}
	}
	sort.Slice(changes, func(i, j int) bool { return changes[i].Key < changes[j].Key })
	return changes
}
