package session

import (
	"testing"

	"github.com/patik/inquirer-grouped-checkbox/internal/choice"
)

func TestMoveSkipsDisabledAndSeparators(t *testing.T) {
	groups := []choice.Group[string]{
		{Key: "g", Label: "G", Choices: []choice.Choice[string]{
			{Value: "one"},
			{Value: "two", Disabled: true},
			{Separator: true},
			{Value: "three"},
		}},
	}
	s := mustSession(t, groups, Options{})

	if s.Cursor() != 0 {
		t.Fatalf("expected cursor on header, got %d", s.Cursor())
	}
	s.Apply(MoveDown{})
	if s.Cursor() != 1 {
		t.Fatalf("expected cursor on 'one', got %d", s.Cursor())
	}
	s.Apply(MoveDown{})
	if s.Cursor() != 4 {
		t.Fatalf("expected disabled and separator skipped, got %d", s.Cursor())
	}
	s.Apply(MoveDown{})
	if s.Cursor() != 0 {
		t.Fatalf("expected wrap to header, got %d", s.Cursor())
	}
	s.Apply(MoveUp{})
	if s.Cursor() != 4 {
		t.Fatalf("expected wrap backwards to 'three', got %d", s.Cursor())
	}
}

func TestMoveAllDisabledKeepsCursor(t *testing.T) {
	items := []choice.Item[string]{
		{Kind: choice.KindSeparator, Group: "g"},
		{Kind: choice.KindChoice, Group: "g", Choice: choice.Normalized[string]{Value: "x", Disabled: true}},
	}
	if got := nextIndex(items, 0, 1); got != 0 {
		t.Fatalf("expected cursor unchanged with no valid stop, got %d", got)
	}
	if got := nextIndex(items, 1, -1); got != 1 {
		t.Fatalf("expected cursor unchanged scanning backwards, got %d", got)
	}
}

func TestFirstSelectable(t *testing.T) {
	items := []choice.Item[string]{
		{Kind: choice.KindSeparator, Group: "g"},
		{Kind: choice.KindChoice, Group: "g", Choice: choice.Normalized[string]{Value: "x", Disabled: true}},
		{Kind: choice.KindChoice, Group: "g", Choice: choice.Normalized[string]{Value: "y"}},
	}
	if got := firstSelectable(items); got != 2 {
		t.Fatalf("expected first selectable at 2, got %d", got)
	}
	if got := firstSelectable([]choice.Item[string]{}); got != -1 {
		t.Fatalf("expected -1 for empty sequence, got %d", got)
	}
}

func TestHomeAndEndLandOnValidStops(t *testing.T) {
	groups := []choice.Group[string]{
		{Key: "g", Label: "G", Choices: []choice.Choice[string]{
			{Value: "one"},
			{Value: "two"},
			{Value: "three", Disabled: true},
		}},
	}
	s := mustSession(t, groups, Options{})

	s.Apply(End{})
	if s.Cursor() != 2 {
		t.Fatalf("expected end to skip the trailing disabled item, got %d", s.Cursor())
	}
	s.Apply(Home{})
	if s.Cursor() != 0 {
		t.Fatalf("expected home on the header, got %d", s.Cursor())
	}
}

func TestPageMovementClampsAtEdges(t *testing.T) {
	choices := make([]choice.Choice[string], 0, 8)
	for _, v := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		choices = append(choices, choice.Choice[string]{Value: v})
	}
	s := mustSession(t, []choice.Group[string]{{Key: "g", Label: "G", Choices: choices}}, Options{})

	s.Apply(PageDown{Count: 5})
	if s.Cursor() != 5 {
		t.Fatalf("expected cursor 5 after one page, got %d", s.Cursor())
	}
	s.Apply(PageDown{Count: 5})
	if s.Cursor() != 8 {
		t.Fatalf("expected page down to clamp at the last item, got %d", s.Cursor())
	}
	s.Apply(PageUp{Count: 100})
	if s.Cursor() != 0 {
		t.Fatalf("expected page up to clamp at the header, got %d", s.Cursor())
	}
}

func TestJumpGroupCyclical(t *testing.T) {
	s := mustSession(t, produceGroups(), Options{})

	s.Apply(NextGroup{})
	if s.Cursor() != 3 {
		t.Fatalf("expected vegetables header at 3, got %d", s.Cursor())
	}
	s.Apply(NextGroup{})
	if s.Cursor() != 0 {
		t.Fatalf("expected wrap back to fruits header, got %d", s.Cursor())
	}
	s.Apply(PrevGroup{})
	if s.Cursor() != 3 {
		t.Fatalf("expected previous to wrap to vegetables, got %d", s.Cursor())
	}

	// Jumping from inside a group starts from that group.
	s.Apply(MoveDown{}) // carrot
	s.Apply(PrevGroup{})
	if s.Cursor() != 0 {
		t.Fatalf("expected fruits header, got %d", s.Cursor())
	}
}

func TestJumpGroupSingleGroupIsNoOp(t *testing.T) {
	groups := []choice.Group[string]{
		{Key: "only", Label: "Only", Choices: []choice.Choice[string]{{Value: "a"}}},
	}
	s := mustSession(t, groups, Options{})
	s.Apply(MoveDown{})
	before := s.Cursor()
	s.Apply(NextGroup{})
	if s.Cursor() != before {
		t.Fatalf("expected no-op with a single group, got %d", s.Cursor())
	}
}

func TestJumpGroupRespectsFilteredView(t *testing.T) {
	s := mustSession(t, produceGroups(), Options{Searchable: true})
	for _, r := range "broc" {
		s.Apply(AppendQuery{Rune: r})
	}
	// Only vegetables remain; a group jump has nowhere to go.
	before := s.Cursor()
	s.Apply(NextGroup{})
	if s.Cursor() != before {
		t.Fatalf("expected no-op when one group matches, got %d", s.Cursor())
	}
}
