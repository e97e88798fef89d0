package session

import "github.com/patik/inquirer-grouped-checkbox/internal/choice"

// isStop reports whether the entry is a valid cursor position. Group headers
// and enabled choices are stops; separators and disabled choices are not.
func isStop[T comparable](it choice.Item[T]) bool {
	switch it.Kind {
	case choice.KindHeader:
		return true
	case choice.KindChoice:
		return !it.Choice.Disabled
	}
	return false
}

// nextIndex scans from current in the given direction, wrapping past either
// end, until it finds a valid stop. Every index is visited at most once; when
// no stop exists the original index is returned unchanged.
func nextIndex[T comparable](items []choice.Item[T], current, dir int) int {
	n := len(items)
	if n == 0 || dir == 0 {
		return current
	}
	idx := current
	for range items {
		idx += dir
		if idx < 0 {
			idx = n - 1
		} else if idx >= n {
			idx = 0
		}
		if isStop(items[idx]) {
			return idx
		}
	}
	return current
}

// firstSelectable returns the first valid stop scanning forward from the top,
// or -1 when the sequence has none.
func firstSelectable[T comparable](items []choice.Item[T]) int {
	return nextIndex(items, -1, 1)
}

// lastSelectable returns the last valid stop scanning backward from the end,
// or -1 when the sequence has none.
func lastSelectable[T comparable](items []choice.Item[T]) int {
	if idx := nextIndex(items, len(items), -1); idx < len(items) {
		return idx
	}
	return -1
}

// pageIndex advances up to count valid stops in the given direction without
// wrapping past either end, settling on the last stop reached.
func pageIndex[T comparable](items []choice.Item[T], current, dir, count int) int {
	idx := current
	for i := 0; i < count; i++ {
		next := nextIndex(items, idx, dir)
		if next == idx {
			break
		}
		if dir > 0 && next < idx {
			break
		}
		if dir < 0 && next > idx {
			break
		}
		idx = next
	}
	return idx
}

// groupAt returns the index of the group whose bounds contain idx, or -1.
func groupAt[T comparable](groups []choice.Bounds[T], idx int) int {
	for i, g := range groups {
		if g.Contains(idx) {
			return i
		}
	}
	return -1
}

// jumpGroup returns the header index of the next or previous group relative
// to the group containing current, wrapping cyclically. With fewer than two
// groups in view the move is a no-op and current is returned.
func jumpGroup[T comparable](groups []choice.Bounds[T], current, dir int) int {
	if len(groups) < 2 {
		return current
	}
	at := groupAt(groups, current)
	if at < 0 {
		return groups[0].Start
	}
	at = (at + dir + len(groups)) % len(groups)
	return groups[at].Start
}
