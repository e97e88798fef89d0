package choice

import "fmt"

// Flatten converts ordered groups into the canonical flat sequence and its
// group bounds table. For each group it emits one header entry followed by the
// group's choices in input order. Display names default to the stringified
// value, short labels to the display name, and the checked flag to the
// caller-supplied pre-check. Duplicate group keys are a configuration error.
func Flatten[T comparable](groups []Group[T]) ([]Item[T], []Bounds[T], error) {
	seen := make(map[string]struct{}, len(groups))
	items := make([]Item[T], 0, flatLen(groups))
	bounds := make([]Bounds[T], 0, len(groups))

	for gi, g := range groups {
		if _, dup := seen[g.Key]; dup {
			return nil, nil, fmt.Errorf("duplicate group key %q", g.Key)
		}
		seen[g.Key] = struct{}{}

		header := Header{Key: g.Key, Label: g.Label, Icon: g.Icon}
		start := len(items)
		items = append(items, Item[T]{Kind: KindHeader, Group: g.Key, Header: header})

		members := make([]Normalized[T], 0, len(g.Choices))
		for ci, c := range g.Choices {
			if c.Separator {
				items = append(items, Item[T]{Kind: KindSeparator, Group: g.Key})
				continue
			}
			n := normalize(c, g.Key, gi, ci)
			members = append(members, n)
			items = append(items, Item[T]{Kind: KindChoice, Group: g.Key, Choice: n})
		}
		bounds = append(bounds, Bounds[T]{
			Key:     g.Key,
			Label:   g.Label,
			Icon:    g.Icon,
			Start:   start,
			End:     len(items) - 1,
			Members: members,
		})
	}
	return items, bounds, nil
}

func normalize[T comparable](c Choice[T], key string, groupIndex, index int) Normalized[T] {
	name := c.Name
	if name == "" {
		name = fmt.Sprint(c.Value)
	}
	short := c.Short
	if short == "" {
		short = name
	}
	return Normalized[T]{
		Value:       c.Value,
		Name:        name,
		Description: c.Description,
		Short:       short,
		Disabled:    c.Disabled || c.Reason != "",
		Reason:      c.Reason,
		Checked:     c.Checked,
		GroupKey:    key,
		GroupIndex:  groupIndex,
		Index:       index,
	}
}

func flatLen[T comparable](groups []Group[T]) int {
	n := len(groups)
	for _, g := range groups {
		n += len(g.Choices)
	}
	return n
}

// CloneItems produces a shallow copy of the provided flat sequence.
func CloneItems[T comparable](items []Item[T]) []Item[T] {
	dup := make([]Item[T], len(items))
	copy(dup, items)
	return dup
}
