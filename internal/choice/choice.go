package choice

// Choice is a single selectable entry supplied by the caller. Only Value is
// required; display fields fall back to sensible defaults during flattening.
type Choice[T comparable] struct {
	Value       T
	Name        string
	Description string
	Short       string
	Disabled    bool
	// Reason optionally explains why the entry cannot be selected. A
	// non-empty reason implies Disabled.
	Reason  string
	Checked bool
	// Separator marks a purely visual divider. Separator entries are never
	// selectable and never appear in results.
	Separator bool
}

// Group is an ordered, labelled collection of choices. Keys must be unique
// across all groups handed to Flatten.
type Group[T comparable] struct {
	Key     string
	Label   string
	Icon    string
	Choices []Choice[T]
}

// Kind discriminates the entries of a flat navigable sequence.
type Kind int

const (
	KindHeader Kind = iota
	KindChoice
	KindSeparator
)

// Header is the synthetic entry that opens a group in the flat sequence. It
// is navigable but carries no selection state of its own.
type Header struct {
	Key   string
	Label string
	Icon  string
}

// Normalized is a choice with resolved display fields, positional metadata,
// and the authoritative checked flag.
type Normalized[T comparable] struct {
	Value       T
	Name        string
	Description string
	Short       string
	Disabled    bool
	Reason      string
	Checked     bool
	GroupKey    string
	GroupIndex  int
	Index       int
}

// Item is one entry of a flat sequence. Kind selects which of the embedded
// payloads is meaningful: Header for KindHeader, Choice for KindChoice, and
// neither for KindSeparator. Group is set for every kind.
type Item[T comparable] struct {
	Kind   Kind
	Group  string
	Header Header
	Choice Normalized[T]
}

// Bounds describes one group as it appears in a particular flat view. Start
// is the index of the group header and End the index of its last member, both
// relative to the view the bounds were computed for. Members lists the
// group's choices in that same view, separators excluded.
type Bounds[T comparable] struct {
	Key     string
	Label   string
	Icon    string
	Start   int
	End     int
	Members []Normalized[T]
}

// Contains reports whether the view index idx falls inside the group.
func (b Bounds[T]) Contains(idx int) bool {
	return idx >= b.Start && idx <= b.End
}
