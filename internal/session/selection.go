package session

import "github.com/patik/inquirer-grouped-checkbox/internal/choice"

// identity names an item independently of any view: the owning group key plus
// the caller-supplied value.
type identity[T comparable] struct {
	group string
	value T
}

// visibleSet collects the identities present in the view. Scoped mutations
// take this snapshot up front so a whole operation sees one consistent notion
// of visibility.
func visibleSet[T comparable](v View[T]) map[identity[T]]struct{} {
	set := make(map[identity[T]]struct{}, len(v.Items))
	for _, it := range v.Items {
		if it.Kind == choice.KindChoice {
			set[identity[T]{group: it.Group, value: it.Choice.Value}] = struct{}{}
		}
	}
	return set
}

// eligible returns the canonical indices that a scoped operation may mutate:
// enabled choices inside the visibility set, optionally restricted to one
// group. An empty group key spans every group.
func eligible[T comparable](canonical []choice.Item[T], visible map[identity[T]]struct{}, group string) []int {
	idxs := make([]int, 0, len(visible))
	for i, it := range canonical {
		if it.Kind != choice.KindChoice || it.Choice.Disabled {
			continue
		}
		if group != "" && it.Group != group {
			continue
		}
		if _, ok := visible[identity[T]{group: it.Group, value: it.Choice.Value}]; !ok {
			continue
		}
		idxs = append(idxs, i)
	}
	return idxs
}

// toggleOne flips the checked flag of the single canonical item matching id,
// provided it is enabled and visible. Everything else passes through
// unchanged.
func toggleOne[T comparable](canonical []choice.Item[T], visible map[identity[T]]struct{}, id identity[T]) []choice.Item[T] {
	if _, ok := visible[id]; !ok {
		return canonical
	}
	for i, it := range canonical {
		if it.Kind != choice.KindChoice || it.Choice.Disabled {
			continue
		}
		if it.Group == id.group && it.Choice.Value == id.value {
			out := choice.CloneItems(canonical)
			out[i].Choice.Checked = !out[i].Choice.Checked
			return out
		}
	}
	return canonical
}

// toggleAll applies uniform-target semantics over the eligible items: when
// every one of them is already checked they all become unchecked, otherwise
// they all become checked. With no eligible items the sequence is returned
// untouched.
func toggleAll[T comparable](canonical []choice.Item[T], visible map[identity[T]]struct{}, group string) []choice.Item[T] {
	idxs := eligible(canonical, visible, group)
	if len(idxs) == 0 {
		return canonical
	}
	target := false
	for _, i := range idxs {
		if !canonical[i].Choice.Checked {
			target = true
			break
		}
	}
	out := choice.CloneItems(canonical)
	for _, i := range idxs {
		out[i].Choice.Checked = target
	}
	return out
}

// invert flips each eligible item independently.
func invert[T comparable](canonical []choice.Item[T], visible map[identity[T]]struct{}, group string) []choice.Item[T] {
	idxs := eligible(canonical, visible, group)
	if len(idxs) == 0 {
		return canonical
	}
	out := choice.CloneItems(canonical)
	for _, i := range idxs {
		out[i].Choice.Checked = !out[i].Choice.Checked
	}
	return out
}
