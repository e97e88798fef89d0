package session

import (
	"testing"

	"github.com/patik/inquirer-grouped-checkbox/internal/choice"
)

func produceGroups() []choice.Group[string] {
	return []choice.Group[string]{
		{Key: "fruits", Label: "Fruits", Choices: []choice.Choice[string]{
			{Value: "apple"},
			{Value: "banana"},
		}},
		{Key: "vegetables", Label: "Vegetables", Choices: []choice.Choice[string]{
			{Value: "carrot"},
			{Value: "broccoli"},
		}},
	}
}

func mustSession(t *testing.T, groups []choice.Group[string], opts Options) *Session[string] {
	t.Helper()
	s, err := New(groups, opts)
	if err != nil {
		t.Fatalf("unexpected error building session: %v", err)
	}
	return s
}

func TestProjectSubstringMatchRecomputesBounds(t *testing.T) {
	s := mustSession(t, produceGroups(), Options{Searchable: true})
	for _, r := range "a" {
		s.Apply(AppendQuery{Rune: r})
	}

	v := s.View()
	if len(v.Items) != 5 {
		t.Fatalf("expected 2 headers + 3 matches, got %d items", len(v.Items))
	}
	names := make([]string, 0, 3)
	for _, it := range v.Items {
		if it.Kind == choice.KindChoice {
			names = append(names, it.Choice.Name)
		}
	}
	want := []string{"apple", "banana", "carrot"}
	for i, n := range want {
		if names[i] != n {
			t.Fatalf("expected match %q at %d, got %v", n, i, names)
		}
	}
	if len(v.Groups) != 2 {
		t.Fatalf("expected both groups present, got %d", len(v.Groups))
	}
	if v.Groups[0].Start != 0 || v.Groups[0].End != 2 {
		t.Fatalf("unexpected fruits bounds %d..%d", v.Groups[0].Start, v.Groups[0].End)
	}
	if v.Groups[1].Start != 3 || v.Groups[1].End != 4 {
		t.Fatalf("unexpected vegetables bounds %d..%d", v.Groups[1].Start, v.Groups[1].End)
	}
	if len(v.Groups[1].Members) != 1 || v.Groups[1].Members[0].Value != "carrot" {
		t.Fatalf("expected only carrot for vegetables, got %#v", v.Groups[1].Members)
	}
}

func TestProjectOmitsGroupsWithoutMatches(t *testing.T) {
	s := mustSession(t, produceGroups(), Options{Searchable: true})
	for _, r := range "broc" {
		s.Apply(AppendQuery{Rune: r})
	}
	v := s.View()
	if len(v.Groups) != 1 || v.Groups[0].Key != "vegetables" {
		t.Fatalf("expected only vegetables to survive, got %#v", v.Groups)
	}
	if len(v.Items) != 2 {
		t.Fatalf("expected header + broccoli, got %d items", len(v.Items))
	}
}

func TestProjectNoMatchesYieldsEmptyView(t *testing.T) {
	s := mustSession(t, produceGroups(), Options{Searchable: true})
	for _, r := range "zzz" {
		s.Apply(AppendQuery{Rune: r})
	}
	v := s.View()
	if !v.Empty() || len(v.Groups) != 0 {
		t.Fatalf("expected empty view, got %d items %d groups", len(v.Items), len(v.Groups))
	}
	if s.Cursor() != -1 {
		t.Fatalf("expected cursor -1 on empty view, got %d", s.Cursor())
	}

	// Navigation and toggles are no-ops until the query changes.
	s.Apply(MoveDown{})
	s.Apply(ToggleCurrent{})
	s.Apply(GlobalToggleAll{})
	if got := s.Results(); len(got["fruits"])+len(got["vegetables"]) != 0 {
		t.Fatalf("expected no selections from no-match state, got %#v", got)
	}
}

func TestProjectIsCaseInsensitive(t *testing.T) {
	s := mustSession(t, produceGroups(), Options{Searchable: true})
	for _, r := range "BRoC" {
		s.Apply(AppendQuery{Rune: r})
	}
	v := s.View()
	if len(v.Groups) != 1 || v.Groups[0].Members[0].Value != "broccoli" {
		t.Fatalf("expected case-insensitive match on broccoli, got %#v", v.Groups)
	}
}

func TestProjectReflectsLiveSelectionState(t *testing.T) {
	s := mustSession(t, produceGroups(), Options{Searchable: true})
	s.Apply(MoveDown{}) // apple
	s.Apply(ToggleCurrent{})

	for _, r := range "apple" {
		s.Apply(AppendQuery{Rune: r})
	}
	v := s.View()
	if len(v.Groups) != 1 || !v.Groups[0].Members[0].Checked {
		t.Fatalf("expected filtered view to show apple checked, got %#v", v.Groups)
	}
}

func TestClearingQueryNeverDropsSelections(t *testing.T) {
	s := mustSession(t, produceGroups(), Options{Searchable: true})
	s.Apply(MoveDown{}) // apple
	s.Apply(ToggleCurrent{})

	// Hide apple entirely, then come back.
	for _, r := range "broc" {
		s.Apply(AppendQuery{Rune: r})
	}
	s.Apply(ClearQuery{})

	v := s.View()
	if !v.Groups[0].Members[0].Checked {
		t.Fatal("expected apple to remain checked after filter round-trip")
	}
	if got := s.Results()["fruits"]; len(got) != 1 || got[0] != "apple" {
		t.Fatalf("expected fruits=[apple], got %#v", got)
	}
	if s.Cursor() != 0 {
		t.Fatalf("expected cursor on first selectable entry after clear, got %d", s.Cursor())
	}
}

func TestQueryRuneWhitelist(t *testing.T) {
	s := mustSession(t, produceGroups(), Options{Searchable: true})
	for _, r := range []rune{'a', '-', '_', '.', '/', '7', '!', '@', '\x1b'} {
		s.Apply(AppendQuery{Rune: r})
	}
	if s.Query() != "a-_./7" {
		t.Fatalf("expected rejected runes to be dropped, got %q", s.Query())
	}
}

func TestQueryIgnoredWhenSearchDisabled(t *testing.T) {
	s := mustSession(t, produceGroups(), Options{})
	s.Apply(AppendQuery{Rune: 'a'})
	if s.Query() != "" {
		t.Fatalf("expected query to stay empty with search disabled, got %q", s.Query())
	}
}

func TestDeleteQueryRune(t *testing.T) {
	s := mustSession(t, produceGroups(), Options{Searchable: true})
	for _, r := range "br" {
		s.Apply(AppendQuery{Rune: r})
	}
	s.Apply(DeleteQueryRune{})
	if s.Query() != "b" {
		t.Fatalf("expected %q, got %q", "b", s.Query())
	}
	s.Apply(DeleteQueryRune{})
	s.Apply(DeleteQueryRune{})
	if s.Query() != "" {
		t.Fatalf("expected empty query, got %q", s.Query())
	}
	if s.View().Empty() {
		t.Fatal("expected full view after deleting the query")
	}
}

func TestProjectKeepsSeparatorsOnlyWithoutQuery(t *testing.T) {
	groups := []choice.Group[string]{
		{Key: "g", Label: "G", Choices: []choice.Choice[string]{
			{Value: "alpha"},
			{Separator: true},
			{Value: "beta"},
		}},
	}
	s := mustSession(t, groups, Options{Searchable: true})
	if len(s.View().Items) != 4 {
		t.Fatalf("expected separator visible without query, got %d items", len(s.View().Items))
	}
	s.Apply(AppendQuery{Rune: 'a'})
	for _, it := range s.View().Items {
		if it.Kind == choice.KindSeparator {
			t.Fatal("expected separators hidden while filtering")
		}
	}
}
