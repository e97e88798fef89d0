package session

import (
	"unicode"
	"unicode/utf8"

	"github.com/patik/inquirer-grouped-checkbox/internal/choice"
)

// Status tracks where a session sits in its lifecycle.
type Status int

const (
	StatusIdle Status = iota
	StatusValidating
	StatusDone
)

// RequiredMessage is the inline error shown when submission needs at least
// one selection and none is present.
const RequiredMessage = "Select at least one option."

// Options configures session behaviour.
type Options struct {
	// Required refuses submission until at least one choice is checked.
	Required bool
	// Searchable enables the live text query.
	Searchable bool
}

// Session owns all mutable prompt state: the canonical sequence, the active
// query, the derived view, the cursor, and the lifecycle status. It is not
// safe for concurrent use; one session serves one prompt run.
type Session[T comparable] struct {
	canonical []choice.Item[T]
	bounds    []choice.Bounds[T]
	view      View[T]
	query     string
	cursor    int
	status    Status
	errMsg    string
	opts      Options
}

// New flattens the input groups and seeds the session with an empty query
// and the cursor on the first selectable entry.
func New[T comparable](groups []choice.Group[T], opts Options) (*Session[T], error) {
	canonical, bounds, err := choice.Flatten(groups)
	if err != nil {
		return nil, err
	}
	s := &Session[T]{canonical: canonical, bounds: bounds, opts: opts}
	s.reproject()
	s.cursor = firstSelectable(s.view.Items)
	return s, nil
}

// Event is one abstract input the session reacts to.
type Event interface{ isEvent() }

type (
	MoveUp          struct{}
	MoveDown        struct{}
	ToggleCurrent   struct{}
	GroupToggleAll  struct{}
	GroupInvert     struct{}
	GlobalToggleAll struct{}
	GlobalInvert    struct{}
	NextGroup       struct{}
	PrevGroup       struct{}
	Home            struct{}
	End             struct{}
	PageUp          struct{ Count int }
	PageDown        struct{ Count int }
	AppendQuery     struct{ Rune rune }
	DeleteQueryRune struct{}
	ClearQuery      struct{}
	Submit          struct{}
)

func (MoveUp) isEvent()          {}
func (MoveDown) isEvent()        {}
func (ToggleCurrent) isEvent()   {}
func (GroupToggleAll) isEvent()  {}
func (GroupInvert) isEvent()     {}
func (GlobalToggleAll) isEvent() {}
func (GlobalInvert) isEvent()    {}
func (NextGroup) isEvent()       {}
func (PrevGroup) isEvent()       {}
func (Home) isEvent()            {}
func (End) isEvent()             {}
func (PageUp) isEvent()          {}
func (PageDown) isEvent()        {}
func (AppendQuery) isEvent()     {}
func (DeleteQueryRune) isEvent() {}
func (ClearQuery) isEvent()      {}
func (Submit) isEvent()          {}

// Apply routes one event through the session. Events arriving while a
// validation is pending, or after the session is done, are discarded.
func (s *Session[T]) Apply(ev Event) {
	if s.status != StatusIdle {
		return
	}
	if _, submitting := ev.(Submit); !submitting {
		s.errMsg = ""
	}
	switch ev := ev.(type) {
	case MoveUp:
		s.Move(-1)
	case MoveDown:
		s.Move(1)
	case ToggleCurrent:
		s.ToggleAtCursor()
	case GroupToggleAll:
		s.ToggleGroup()
	case GroupInvert:
		s.InvertGroup()
	case GlobalToggleAll:
		s.ToggleAll()
	case GlobalInvert:
		s.InvertAll()
	case NextGroup:
		s.JumpGroup(1)
	case PrevGroup:
		s.JumpGroup(-1)
	case Home:
		s.MoveHome()
	case End:
		s.MoveEnd()
	case PageUp:
		s.MovePage(-1, ev.Count)
	case PageDown:
		s.MovePage(1, ev.Count)
	case AppendQuery:
		s.AppendQueryRune(ev.Rune)
	case DeleteQueryRune:
		s.DeleteLastQueryRune()
	case ClearQuery:
		s.ResetQuery()
	case Submit:
		s.StartSubmit()
	}
}

// Move advances the cursor one valid stop in the given direction.
func (s *Session[T]) Move(dir int) {
	if s.view.Empty() || s.cursor < 0 {
		return
	}
	s.cursor = nextIndex(s.view.Items, s.cursor, dir)
}

// MoveHome places the cursor on the first valid stop of the view.
func (s *Session[T]) MoveHome() {
	if !s.view.Empty() {
		s.cursor = firstSelectable(s.view.Items)
	}
}

// MoveEnd places the cursor on the last valid stop of the view.
func (s *Session[T]) MoveEnd() {
	if !s.view.Empty() {
		s.cursor = lastSelectable(s.view.Items)
	}
}

// MovePage advances up to count valid stops without wrapping past the edges.
func (s *Session[T]) MovePage(dir, count int) {
	if s.view.Empty() || s.cursor < 0 || count <= 0 {
		return
	}
	s.cursor = pageIndex(s.view.Items, s.cursor, dir, count)
}

// JumpGroup moves the cursor to the header of the next or previous group in
// the current view, cyclically.
func (s *Session[T]) JumpGroup(dir int) {
	if s.view.Empty() || s.cursor < 0 {
		return
	}
	s.cursor = jumpGroup(s.view.Groups, s.cursor, dir)
}

// ToggleAtCursor flips the choice under the cursor. On a group header it
// performs that group's scoped toggle-all instead.
func (s *Session[T]) ToggleAtCursor() {
	it, ok := s.current()
	if !ok {
		return
	}
	switch it.Kind {
	case choice.KindHeader:
		s.mutate(func(vis map[identity[T]]struct{}) []choice.Item[T] {
			return toggleAll(s.canonical, vis, it.Group)
		})
	case choice.KindChoice:
		id := identity[T]{group: it.Group, value: it.Choice.Value}
		s.mutate(func(vis map[identity[T]]struct{}) []choice.Item[T] {
			return toggleOne(s.canonical, vis, id)
		})
	}
}

// ToggleGroup applies uniform-target toggle-all to the group containing the
// cursor.
func (s *Session[T]) ToggleGroup() {
	if g, ok := s.currentGroup(); ok {
		s.mutate(func(vis map[identity[T]]struct{}) []choice.Item[T] {
			return toggleAll(s.canonical, vis, g.Key)
		})
	}
}

// InvertGroup flips each visible enabled member of the cursor's group.
func (s *Session[T]) InvertGroup() {
	if g, ok := s.currentGroup(); ok {
		s.mutate(func(vis map[identity[T]]struct{}) []choice.Item[T] {
			return invert(s.canonical, vis, g.Key)
		})
	}
}

// ToggleAll applies uniform-target toggle-all across every visible group.
func (s *Session[T]) ToggleAll() {
	s.mutate(func(vis map[identity[T]]struct{}) []choice.Item[T] {
		return toggleAll(s.canonical, vis, "")
	})
}

// InvertAll flips every visible enabled choice independently.
func (s *Session[T]) InvertAll() {
	s.mutate(func(vis map[identity[T]]struct{}) []choice.Item[T] {
		return invert(s.canonical, vis, "")
	})
}

func (s *Session[T]) mutate(op func(map[identity[T]]struct{}) []choice.Item[T]) {
	s.canonical = op(visibleSet(s.view))
	s.reproject()
	s.clampCursor()
}

// AppendQueryRune extends the query by one rune. Only letters, digits,
// whitespace, and `- _ . /` are accepted; anything else is ignored.
func (s *Session[T]) AppendQueryRune(r rune) {
	if !s.opts.Searchable || !queryRuneAllowed(r) {
		return
	}
	s.setQuery(s.query + string(r))
}

// DeleteLastQueryRune removes the final query rune, if any.
func (s *Session[T]) DeleteLastQueryRune() {
	if s.query == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(s.query)
	s.setQuery(s.query[:len(s.query)-size])
}

// ResetQuery clears the query entirely.
func (s *Session[T]) ResetQuery() bool {
	if s.query == "" {
		return false
	}
	s.setQuery("")
	return true
}

func (s *Session[T]) setQuery(q string) {
	s.query = q
	s.reproject()
	s.cursor = firstSelectable(s.view.Items)
}

// StartSubmit begins submission. A required-selection violation leaves the
// session idle with an inline error; otherwise the session blocks in
// StatusValidating until FinishValidation is called.
func (s *Session[T]) StartSubmit() {
	if s.opts.Required && statsOf(s.canonical, "").Selected == 0 {
		s.errMsg = RequiredMessage
		return
	}
	s.errMsg = ""
	s.status = StatusValidating
}

// FinishValidation settles a pending submission. A nil error completes the
// session; otherwise the message is surfaced inline and input resumes.
func (s *Session[T]) FinishValidation(err error) {
	if s.status != StatusValidating {
		return
	}
	if err != nil {
		s.errMsg = err.Error()
		s.status = StatusIdle
		return
	}
	s.status = StatusDone
}

// Results reduces the canonical selection state to the final mapping.
func (s *Session[T]) Results() Results[T] {
	return buildResults(s.canonical, s.bounds)
}

// View returns the current filtered projection.
func (s *Session[T]) View() View[T] { return s.view }

// Query returns the live query string.
func (s *Session[T]) Query() string { return s.query }

// Cursor returns the current cursor index within the view, or -1 when the
// view has no valid stop.
func (s *Session[T]) Cursor() int { return s.cursor }

// Status reports the session lifecycle state.
func (s *Session[T]) Status() Status { return s.status }

// Err returns the inline error message, empty when none.
func (s *Session[T]) Err() string { return s.errMsg }

// Searchable reports whether the live query is enabled.
func (s *Session[T]) Searchable() bool { return s.opts.Searchable }

// GroupStats counts selected/selectable choices for one group, disabled
// entries excluded.
func (s *Session[T]) GroupStats(key string) Stats {
	return statsOf(s.canonical, key)
}

// OverallStats counts selected/selectable choices across all groups.
func (s *Session[T]) OverallStats() Stats {
	return statsOf(s.canonical, "")
}

func (s *Session[T]) current() (choice.Item[T], bool) {
	if s.cursor < 0 || s.cursor >= len(s.view.Items) {
		var zero choice.Item[T]
		return zero, false
	}
	return s.view.Items[s.cursor], true
}

func (s *Session[T]) currentGroup() (choice.Bounds[T], bool) {
	if s.cursor >= 0 {
		if i := groupAt(s.view.Groups, s.cursor); i >= 0 {
			return s.view.Groups[i], true
		}
	}
	var zero choice.Bounds[T]
	return zero, false
}

func (s *Session[T]) reproject() {
	s.view = project(s.canonical, s.bounds, s.query)
}

// clampCursor keeps the cursor on a valid stop after the view is recomputed.
// Toggling never changes which items match, so in practice this only guards
// the degenerate empty-view case.
func (s *Session[T]) clampCursor() {
	if s.view.Empty() {
		s.cursor = -1
		return
	}
	if s.cursor < 0 || s.cursor >= len(s.view.Items) || !isStop(s.view.Items[s.cursor]) {
		s.cursor = firstSelectable(s.view.Items)
	}
}

func queryRuneAllowed(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
		return true
	}
	switch r {
	case '-', '_', '.', '/':
		return true
	}
	return false
}
