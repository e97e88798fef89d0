package session

import "github.com/patik/inquirer-grouped-checkbox/internal/choice"

// Results maps every declared group key to the values of its checked choices
// in input order. Groups with no selections map to an empty slice, never to a
// missing key.
type Results[T comparable] map[string][]T

// buildResults reduces the canonical sequence into the per-group output
// mapping. The bounds table supplies the declared keys; the canonical
// sequence supplies order and selection state.
func buildResults[T comparable](canonical []choice.Item[T], groups []choice.Bounds[T]) Results[T] {
	out := make(Results[T], len(groups))
	for _, g := range groups {
		out[g.Key] = []T{}
	}
	for _, it := range canonical {
		if it.Kind != choice.KindChoice || !it.Choice.Checked {
			continue
		}
		out[it.Group] = append(out[it.Group], it.Choice.Value)
	}
	return out
}

// Stats counts selected versus selectable choices; disabled entries are
// excluded from both figures.
type Stats struct {
	Selected int
	Total    int
}

func statsOf[T comparable](canonical []choice.Item[T], group string) Stats {
	var s Stats
	for _, it := range canonical {
		if it.Kind != choice.KindChoice || it.Choice.Disabled {
			continue
		}
		if group != "" && it.Group != group {
			continue
		}
		s.Total++
		if it.Choice.Checked {
			s.Selected++
		}
	}
	return s
}
