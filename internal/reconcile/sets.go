// Package reconcile computes the writes needed to turn a stored collection into
// a desired one. It performs no I/O.
package reconcile

// Diff describes how a current set differs from a desired set.
type Diff[T comparable] struct {
	// Add holds desired members missing from current, in desired order.
	Add []T
	// Remove holds current members missing from desired, in current order.
	Remove []T
	// Keep holds members present in both.
	Keep []T
	// Desired is the deduplicated desired set.
	Desired []T
}

// Unchanged reports whether applying the diff would write nothing.
func (d Diff[T]) Unchanged() bool {
	return len(d.Add) == 0 && len(d.Remove) == 0
}

// Sets compares current against desired, treating both as sets.
func Sets[T comparable](current, desired []T) Diff[T] {
	want := Unique(desired)
	have := make(map[T]struct{}, len(current))
	for _, v := range current {
		have[v] = struct{}{}
	}
	wantSet := make(map[T]struct{}, len(want))
	for _, v := range want {
		wantSet[v] = struct{}{}
	}

	d := Diff[T]{Desired: want}
	for _, v := range want {
		if _, ok := have[v]; ok {
			d.Keep = append(d.Keep, v)
		} else {
			d.Add = append(d.Add, v)
		}
	}
	for _, v := range Unique(current) {
		if _, ok := wantSet[v]; !ok {
			d.Remove = append(d.Remove, v)
		}
	}
	return d
}

// Unique drops repeated values, keeping first occurrences in order.
func Unique[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, v := range items {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Missing returns the members of want that are absent from have.
func Missing[T comparable](want, have []T) []T {
	present := make(map[T]struct{}, len(have))
	for _, v := range have {
		present[v] = struct{}{}
	}
	var out []T
	for _, v := range Unique(want) {
		if _, ok := present[v]; !ok {
			out = append(out, v)
		}
	}
	return out
}
