package session

import (
	"strings"

	"github.com/patik/inquirer-grouped-checkbox/internal/choice"
)

// View is a read-derived projection of the canonical sequence under a query.
// It owns no selection state; Items mirror the canonical checked flags as of
// the moment the view was computed, and Groups carry bounds recomputed for
// this view's indices.
type View[T comparable] struct {
	Items  []choice.Item[T]
	Groups []choice.Bounds[T]
}

// Empty reports whether nothing matches the active query.
func (v View[T]) Empty() bool {
	return len(v.Items) == 0
}

// project derives the filtered view for the given query. Matching is
// case-insensitive substring on the resolved display name; an empty query
// matches everything. Choices are pulled from the live canonical sequence so
// the view always reflects the latest selection state, never a previously
// computed bounds table. Groups with no matching choices are omitted
// entirely; separators survive only while no query is active.
func project[T comparable](canonical []choice.Item[T], groups []choice.Bounds[T], query string) View[T] {
	q := strings.ToLower(query)
	items := make([]choice.Item[T], 0, len(canonical))
	bounds := make([]choice.Bounds[T], 0, len(groups))

	for _, g := range groups {
		matched := make([]choice.Item[T], 0, g.End-g.Start+1)
		members := make([]choice.Normalized[T], 0, len(g.Members))
		for _, it := range canonical {
			if it.Group != g.Key {
				continue
			}
			switch it.Kind {
			case choice.KindChoice:
				if q == "" || strings.Contains(strings.ToLower(it.Choice.Name), q) {
					matched = append(matched, it)
					members = append(members, it.Choice)
				}
			case choice.KindSeparator:
				if q == "" {
					matched = append(matched, it)
				}
			}
		}
		if len(members) == 0 {
			continue
		}
		start := len(items)
		items = append(items, choice.Item[T]{
			Kind:   choice.KindHeader,
			Group:  g.Key,
			Header: choice.Header{Key: g.Key, Label: g.Label, Icon: g.Icon},
		})
		items = append(items, matched...)
		bounds = append(bounds, choice.Bounds[T]{
			Key:     g.Key,
			Label:   g.Label,
			Icon:    g.Icon,
			Start:   start,
			End:     len(items) - 1,
			Members: members,
		})
	}
	return View[T]{Items: items, Groups: bounds}
}
